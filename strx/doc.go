// File: doc.go
// Title: Package Documentation for strx
// Description: Package strx provides the byte-oriented text core of
//              textcore, pairing the non-owning View with the owning,
//              growable Buffer and the search, slice, split, join, and
//              conversion operations built on them.
// Author: msto63
// Version: v0.2.1
// Created: 2026-07-21
// Modified: 2026-08-20
//
// Change History:
// - 2026-07-21 v0.1.0: Initial implementation with View and Buffer
// - 2026-08-18 v0.2.0: Backward scans, counting, and split/join documented
// - 2026-08-20 v0.2.1: Move semantics and validation helpers documented

// Package strx provides byte-oriented text views and buffers for textcore.
//
// Package: strx
// Title: Text Views and Buffers for the textcore Substrate
// Description: This package implements the two central text types of the
//              library. View is a non-owning, immutable window over bytes;
//              Buffer owns growable, zero-terminated storage and carries
//              the mutating operations. All operations are total: bad
//              indices clamp, failed searches return InvalidIndex, and no
//              operation panics on hostile input.
// Author: msto63
// Version: v0.2.1
// Created: 2026-07-21
// Modified: 2026-08-20
//
// Overview
//
// The strx package treats text as raw bytes. Indices, lengths, and search
// results are byte offsets, never rune counts; multi-byte characters are
// the business of the utf8x package. This keeps every operation O(1) or
// O(n) in bytes with no decoding cost on the hot paths.
//
// Key capabilities include:
//   - Non-owning views with equality, hashing, and prefix/suffix checks
//   - Forward and backward substring search with a start offset
//   - Character-set scans (IndexAny, IndexNotAny and their reverses)
//   - Overlapping occurrence counting and clamped substring extraction
//   - Splitting on delimiters and chunking into fixed-size runs
//   - An owning Buffer with geometric growth and a zero terminator
//   - Insert, erase, replace, case mapping, and trimming in place
//   - C-style numeric conversion of textual prefixes
//   - Join over views or plain strings with an optional start offset
//
// Architecture
//
// The package is organized into functional groups:
//
//   - View: non-owning read operations (view.go)
//   - Buffer: owning storage and mutation (buffer.go)
//   - Conversion: numeric prefix parsing (convert.go)
//   - Validation: rich-error pre-flight checks (validate.go)
//
// A View borrows memory it does not own. Views returned by Buffer.View,
// Buffer.Split, or Buffer.Bytes stay valid only until the buffer is next
// mutated or grows; capturing one across a mutation is a caller bug. The
// Buffer keeps a single terminator byte after the content so its storage
// can be handed to bounded writers without an extra copy.
//
// Usage Examples
//
// Views over existing bytes:
//
//	v := strx.OfString("hello, world")
//	v.Len()                  // 12
//	v.Contains("world")      // true
//	v.Index("l", 3)          // 3
//	v.LastIndex("l")         // 10
//	v.Hash()                 // FNV-1a of the content
//
//	// Clamped substring extraction never faults
//	v.Substr(7, 100).String()  // "world"
//	v.Substr(-3, 5).String()   // "hello"
//
// Buffers for building and editing:
//
//	b := strx.NewString("  report.CPP \r\n")
//	b.Trim().Lowercase()
//	b.EndsWith(".cpp")       // true
//
//	b.Assign("status=")
//	b.Appendf("%d", 200)
//	b.String()               // "status=200"
//
//	n := b.Replace("0", "00")
//	// b is "status=20000", n is 2
//
// Splitting and joining:
//
//	fields := strx.OfString("a,b,").Split(",")
//	// three views: "a", "b", ""
//
//	joined := strx.Join(fields, ";", 0)
//	// "a;b;"
//
// Numeric conversion:
//
//	strx.OfString("  42 items").Int()   // 42
//	strx.OfString("3.5e2K").Float64()   // 350
//	strx.OfString("none").Int()         // 0
//
// Failure Semantics
//
// Operations on View and Buffer never return errors. Searches that find
// nothing return InvalidIndex, out-of-range reads return the zero byte,
// and range mutations report success as a bool while leaving the buffer
// untouched on failure. Callers that want standardized error values for
// user-facing surfaces use ValidateIndex, ValidateRange, and
// ValidatePattern, which produce errors from the core/errors catalog.
//
// Performance Considerations
//
// Substring search is a direct byte comparison loop. For the short needles
// and haystacks this library is built for it beats the setup cost of the
// more elaborate algorithms; callers searching megabytes with long
// patterns should reach for the standard library instead.
//
// Buffer growth enlarges capacity by two thirds and pads short appends
// with a few spare bytes, so building a string byte-by-byte amortizes to
// O(n). Grow can be called up front when the final size is known.
//
// Thread Safety
//
// Views are immutable values and safe to share. A Buffer is not
// synchronized; concurrent mutation requires external locking, and a
// Buffer has exactly one owner at a time (transfer with Move).
//
// See Also
//
//   - Package fmtx: formatted writing into strings and bounded buffers
//   - Package scratch: fixed-slot formatting pool built on this package
//   - Package utf8x: UTF-8 decoding and case mapping over views
//   - Package core/errors: standardized error values for validation
//
package strx

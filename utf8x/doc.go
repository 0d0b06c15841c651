// File: doc.go
// Title: Package Documentation for utf8x
// Description: Package utf8x implements the multi-byte sequence codec and
//              the table-driven uppercase mapping used by the text
//              substrate for encoding-aware case folding.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-05
// Modified: 2026-08-05
//
// Change History:
// - 2026-08-05 v0.1.0: Initial package documentation

// Package utf8x provides a multi-byte sequence codec and uppercase folding
// for the textcore library.
//
// Overview
//
// The codec recognizes six sequence length classes, from single-byte ASCII
// up to the historical 6-byte forms that predate the RFC 3629 cutoff.
// Keeping the long classes means data written under the older rules still
// decodes and round-trips without loss. Overlong encodings are rejected:
// every class carries a minimum rune value, and a decoded value below it
// has a shorter canonical form and fails with (0, -1).
//
// Case folding is table driven. A sorted table of source/target rune pairs
// covers Latin, Greek, Cyrillic, Armenian, and fullwidth ranges; ToUpper
// resolves a single rune by binary search and leaves unmapped runes
// unchanged. UpperView and UpperString fold whole texts by decoding,
// mapping, and re-encoding sequence by sequence, which stays correct even
// when a mapping changes the encoded length.
//
// Usage
//
//	r, size := utf8x.DecodeRune([]byte("\xc3\xa9")) // 0xE9, 2
//
//	var buf [utf8x.MaxSeqLen]byte
//	n := utf8x.EncodeRune(buf[:], r) // writes 0xC3 0xA9, returns 2
//
//	utf8x.UpperString("fünf") // "FÜNF"
//
// Failure Semantics
//
// DecodeRune reports malformed input through a negative length only; the
// rune result is zero in that case but a zero rune with length 1 is the
// legitimate decode of a NUL byte. EncodeRune and RuneLen return -1 for
// runes no class covers; EncodeRune also returns -1 when the destination
// is too short, writing nothing.
//
// Relation to unicode/utf8
//
// The standard codec caps sequences at 4 bytes and replaces malformed
// input with U+FFFD. This package keeps the wider class table and makes
// malformed input an explicit failure instead, because the substrate
// treats text as byte content whose errors the caller decides about.
package utf8x

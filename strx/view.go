// File: view.go
// Title: Non-Owning String View
// Description: Implements View, a non-owning reference to a contiguous byte
//              range, together with the read-only string algorithms of the
//              text substrate: search, counting, slicing, splitting, and
//              FNV-1a hashing. Views never own or mutate the bytes they
//              reference.
// Author: msto63
// Version: v0.2.0
// Created: 2026-07-21
// Modified: 2026-08-18
//
// Change History:
// - 2026-07-21 v0.1.0: Initial implementation of the read-only algorithms
// - 2026-08-02 v0.1.1: LastIndex compares data[i+j], covers offset zero
// - 2026-08-18 v0.2.0: Added Chunk and the set-membership backward scans

package strx

// InvalidIndex is returned by all search operations when no match exists.
// It is the Go rendition of a max-unsigned failure sentinel.
const InvalidIndex = -1

// fnvBasis and fnvPrime are the 32-bit FNV-1a parameters.
const (
	fnvBasis uint32 = 0x811c9dc5
	fnvPrime uint32 = 0x01000193
)

// View is a non-owning reference to a contiguous byte range. The zero View
// is a valid empty view; every algorithm on it returns "not found" or empty
// results rather than faulting. Validity of a non-zero View is bounded by
// the lifetime of whatever produced it: a Buffer (until its next mutation),
// a byte slice, or another View.
type View struct {
	data []byte
}

// Of returns a View borrowing b. The view stays valid only as long as the
// caller keeps b alive and unmodified.
func Of(b []byte) View {
	return View{data: b}
}

// OfString returns a View over a private copy of s. The copy is made once
// at construction; the resulting view owns no further obligations.
func OfString(s string) View {
	if len(s) == 0 {
		return View{}
	}
	return View{data: []byte(s)}
}

// Len returns the number of bytes the view references.
func (v View) Len() int {
	return len(v.data)
}

// IsEmpty reports whether the view references no bytes.
func (v View) IsEmpty() bool {
	return len(v.data) == 0
}

// At returns the byte at index i, or 0 when i is out of range.
func (v View) At(i int) byte {
	if i < 0 || i >= len(v.data) {
		return 0
	}
	return v.data[i]
}

// Bytes returns the underlying byte range without copying. Callers must not
// mutate the result.
func (v View) Bytes() []byte {
	return v.data
}

// String returns the view content as a Go string.
func (v View) String() string {
	return string(v.data)
}

// Chars returns the view content as a Go string. It implements the
// fmtx.CharSource interface so views can be passed to formatting verbs
// directly.
func (v View) Chars() string {
	return string(v.data)
}

// Equal reports byte-exact equality with another view.
func (v View) Equal(o View) bool {
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// EqualString reports byte-exact equality with s.
func (v View) EqualString(s string) bool {
	if len(v.data) != len(s) {
		return false
	}
	for i := range v.data {
		if v.data[i] != s[i] {
			return false
		}
	}
	return true
}

// Hash returns the 32-bit FNV-1a hash of the view content, stopping at the
// first zero byte or the view end, whichever comes first. Stopping at the
// terminator keeps hashes of terminator-bounded and length-bounded views of
// the same text identical.
func (v View) Hash() uint32 {
	hash := fnvBasis
	for _, b := range v.data {
		if b == 0 {
			break
		}
		hash ^= uint32(b)
		hash *= fnvPrime
	}
	return hash
}

// StartsWith reports whether the view begins with prefix.
func (v View) StartsWith(prefix string) bool {
	if len(prefix) > len(v.data) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if v.data[i] != prefix[i] {
			return false
		}
	}
	return true
}

// EndsWith reports whether the view ends with suffix.
func (v View) EndsWith(suffix string) bool {
	if len(suffix) > len(v.data) {
		return false
	}
	off := len(v.data) - len(suffix)
	for i := 0; i < len(suffix); i++ {
		if v.data[off+i] != suffix[i] {
			return false
		}
	}
	return true
}

// Contains reports whether sub occurs anywhere in the view.
func (v View) Contains(sub string) bool {
	return v.Index(sub, 0) != InvalidIndex
}

// IndexByte returns the offset of the first occurrence of c at or after
// start, or InvalidIndex.
func (v View) IndexByte(c byte, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(v.data); i++ {
		if v.data[i] == c {
			return i
		}
	}
	return InvalidIndex
}

// Index returns the offset of the first occurrence of pattern at or after
// start, or InvalidIndex. The search is a brute-force byte comparison at
// every candidate offset, which is quadratic in the worst case and entirely
// adequate for the path, chat, and config sized text this library targets.
// An empty pattern matches only at offset zero.
func (v View) Index(pattern string, start int) int {
	if start < 0 {
		start = 0
	}
	n := len(pattern)
	if n == 0 {
		if start == 0 {
			return 0
		}
		return InvalidIndex
	}
	for i := start; i+n <= len(v.data); i++ {
		j := 0
		for j < n && v.data[i+j] == pattern[j] {
			j++
		}
		if j == n {
			return i
		}
	}
	return InvalidIndex
}

// LastIndexByte returns the offset of the last occurrence of c, or
// InvalidIndex.
func (v View) LastIndexByte(c byte) int {
	for i := len(v.data) - 1; i >= 0; i-- {
		if v.data[i] == c {
			return i
		}
	}
	return InvalidIndex
}

// LastIndex returns the offset of the last occurrence of pattern, or
// InvalidIndex. Every trailing position is probed with a full byte
// comparison, including offset zero.
func (v View) LastIndex(pattern string) int {
	n := len(pattern)
	if n == 0 || n > len(v.data) {
		return InvalidIndex
	}
	for i := len(v.data) - n; i >= 0; i-- {
		j := 0
		for j < n && v.data[i+j] == pattern[j] {
			j++
		}
		if j == n {
			return i
		}
	}
	return InvalidIndex
}

// IndexAny returns the offset of the first byte at or after start that is a
// member of set, or InvalidIndex.
func (v View) IndexAny(set string, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(v.data); i++ {
		if byteInSet(v.data[i], set) {
			return i
		}
	}
	return InvalidIndex
}

// IndexNotAny returns the offset of the first byte at or after start that
// is not a member of set, or InvalidIndex.
func (v View) IndexNotAny(set string, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(v.data); i++ {
		if !byteInSet(v.data[i], set) {
			return i
		}
	}
	return InvalidIndex
}

// LastIndexAny returns the offset of the last byte that is a member of set,
// or InvalidIndex.
func (v View) LastIndexAny(set string) int {
	for i := len(v.data) - 1; i >= 0; i-- {
		if byteInSet(v.data[i], set) {
			return i
		}
	}
	return InvalidIndex
}

// LastIndexNotAny returns the offset of the last byte that is not a member
// of set, or InvalidIndex.
func (v View) LastIndexNotAny(set string) int {
	for i := len(v.data) - 1; i >= 0; i-- {
		if !byteInSet(v.data[i], set) {
			return i
		}
	}
	return InvalidIndex
}

// CountByte returns the number of occurrences of c.
func (v View) CountByte(c byte) int {
	count := 0
	for _, b := range v.data {
		if b == c {
			count++
		}
	}
	return count
}

// Count returns the number of starting positions where pattern matches.
// Overlapping matches are counted, because every position is probed
// independently: Count of "aa" in "aaa" is 2. An empty pattern counts as
// zero occurrences.
func (v View) Count(pattern string) int {
	n := len(pattern)
	if n == 0 {
		return 0
	}
	count := 0
	for i := 0; i+n <= len(v.data); i++ {
		j := 0
		for j < n && v.data[i+j] == pattern[j] {
			j++
		}
		if j == n {
			count++
		}
	}
	return count
}

// Substr returns a sub-view of count bytes starting at start. start is
// clamped to [0, Len()] and count to the remaining length; a negative count
// takes everything up to the end. Substr never faults on out-of-range
// input.
func (v View) Substr(start, count int) View {
	if start < 0 {
		start = 0
	}
	if start > len(v.data) {
		start = len(v.data)
	}
	remaining := len(v.data) - start
	if count < 0 || count > remaining {
		count = remaining
	}
	if count == 0 {
		return View{}
	}
	return View{data: v.data[start : start+count]}
}

// Split splits the view on every non-overlapping occurrence of delim and
// returns the sub-views in order. The trailing segment is always included,
// so splitting "a,b," on "," yields ["a" "b" ""]. An empty delimiter cannot
// advance and yields the whole view as a single segment.
func (v View) Split(delim string) []View {
	if len(delim) == 0 {
		return []View{v}
	}
	var parts []View
	start := 0
	for {
		i := v.Index(delim, start)
		if i == InvalidIndex {
			parts = append(parts, v.Substr(start, -1))
			return parts
		}
		parts = append(parts, v.Substr(start, i-start))
		start = i + len(delim)
	}
}

// Chunk slices the view into sub-views of at most maxLen bytes each, in
// order, the last chunk possibly shorter. A non-positive maxLen or an empty
// view yields nil.
func (v View) Chunk(maxLen int) []View {
	if maxLen <= 0 || len(v.data) == 0 {
		return nil
	}
	chunks := make([]View, 0, (len(v.data)+maxLen-1)/maxLen)
	for start := 0; start < len(v.data); start += maxLen {
		chunks = append(chunks, v.Substr(start, maxLen))
	}
	return chunks
}

// byteInSet reports whether c occurs in set.
func byteInSet(c byte, set string) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == c {
			return true
		}
	}
	return false
}

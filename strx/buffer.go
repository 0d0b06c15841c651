// File: buffer.go
// Title: Owning Growable String Buffer
// Description: Implements Buffer, the owning counterpart of View. A Buffer
//              keeps its content in heap storage that grows geometrically,
//              is always zero-terminated at the logical length, and supports
//              the mutating half of the text substrate: assign, append,
//              insert, erase, replace, case mapping, trimming, and joining.
// Author: msto63
// Version: v0.2.1
// Created: 2026-07-21
// Modified: 2026-08-20
//
// Change History:
// - 2026-07-21 v0.1.0: Initial implementation with growth and append paths
// - 2026-07-30 v0.2.0: Insert/Erase/Replace with bool/count result contracts
// - 2026-08-20 v0.2.1: Move resets the source to the canonical empty state

package strx

import (
	"github.com/msto63/textcore/fmtx"
)

// DefaultTrimSet is the character set removed by Trim, TrimLeft, and
// TrimRight when no explicit set is given.
const DefaultTrimSet = "\r\n\t "

// Buffer owns a growable, zero-terminated byte sequence. Invariants:
// len(data) is the capacity; data[length] == 0 whenever capacity > 0; a nil
// data slice with length 0 is the canonical empty state carrying no heap
// allocation. A Buffer has exactly one logical owner at a time; transfer
// ownership with Move.
type Buffer struct {
	data   []byte
	length int
}

// New returns an empty Buffer in the canonical unallocated state.
func New() *Buffer {
	return &Buffer{}
}

// NewCapacity returns an empty Buffer with storage for at least capacity
// content bytes already allocated.
func NewCapacity(capacity int) *Buffer {
	b := &Buffer{}
	if capacity > 0 {
		b.Grow(capacity)
	}
	return b
}

// NewString returns a Buffer holding a copy of s.
func NewString(s string) *Buffer {
	b := &Buffer{}
	b.Append(s)
	return b
}

// NewView returns a Buffer holding a copy of the bytes v references.
func NewView(v View) *Buffer {
	b := &Buffer{}
	b.AppendView(v)
	return b
}

// Len returns the logical content length in bytes.
func (b *Buffer) Len() int {
	return b.length
}

// IsEmpty reports whether the buffer holds no content.
func (b *Buffer) IsEmpty() bool {
	return b.length == 0
}

// Capacity returns the allocated storage size in bytes. The capacity is
// always strictly greater than the length once any allocation has happened,
// because the terminator byte lives at data[length].
func (b *Buffer) Capacity() int {
	return len(b.data)
}

// At returns the content byte at index i, or 0 when i is out of range.
func (b *Buffer) At(i int) byte {
	if i < 0 || i >= b.length {
		return 0
	}
	return b.data[i]
}

// SetAt overwrites the content byte at index i. It reports whether i was in
// range; out-of-range writes leave the buffer unmodified.
func (b *Buffer) SetAt(i int, c byte) bool {
	if i < 0 || i >= b.length {
		return false
	}
	b.data[i] = c
	return true
}

// Bytes returns the content bytes without copying. The slice stays valid
// until the buffer is next mutated or grows.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.length]
}

// String returns the content as a Go string.
func (b *Buffer) String() string {
	return string(b.data[:b.length])
}

// Chars returns the content as a Go string, implementing fmtx.CharSource.
func (b *Buffer) Chars() string {
	return string(b.data[:b.length])
}

// View returns a non-owning view of the content. The view stays valid until
// the buffer is next mutated or grows.
func (b *Buffer) View() View {
	return View{data: b.data[:b.length]}
}

// growFactor computes the capacity target for appending n bytes. It starts
// from the current capacity (or max(12, n+1) for a fresh buffer), enlarges
// by two thirds until the content fits, then pads the result so short
// appends leave headroom for a few more.
func (b *Buffer) growFactor(n int) int {
	capacity := len(b.data)
	if capacity == 0 {
		capacity = 12
		if n+1 > capacity {
			capacity = n + 1
		}
	}
	for b.length+n > capacity {
		capacity += capacity * 2 / 3
	}
	if n < 4 {
		return capacity + 8
	}
	return capacity + n
}

// Grow ensures storage for n more content bytes plus the terminator. It is
// the sole allocation point of the buffer. No-op when the capacity already
// satisfies length+n < capacity; otherwise the content is preserved
// byte-for-byte in the replacement storage.
func (b *Buffer) Grow(n int) {
	if n < 0 {
		return
	}
	if b.length+n < len(b.data) {
		return
	}
	replacement := make([]byte, b.growFactor(n)+b.length)
	copy(replacement, b.data[:b.length])
	b.data = replacement
}

// Assign replaces the content with a copy of s.
func (b *Buffer) Assign(s string) *Buffer {
	b.length = 0
	return b.Append(s)
}

// AssignView replaces the content with a copy of the bytes v references.
func (b *Buffer) AssignView(v View) *Buffer {
	b.length = 0
	return b.AppendView(v)
}

// AssignByte replaces the content with a single byte.
func (b *Buffer) AssignByte(c byte) *Buffer {
	b.length = 0
	return b.AppendByte(c)
}

// Assignf replaces the content with the formatted rendering. Formatting is
// unbounded: the buffer grows to fit and never truncates.
func (b *Buffer) Assignf(format string, args ...interface{}) *Buffer {
	return b.Assign(fmtx.Sprintf(format, args...))
}

// Append appends a copy of s. Appending maintains the terminator at the new
// length.
func (b *Buffer) Append(s string) *Buffer {
	n := len(s)
	b.Grow(n)
	copy(b.data[b.length:], s)
	b.length += n
	b.data[b.length] = 0
	return b
}

// AppendView appends a copy of the bytes v references.
func (b *Buffer) AppendView(v View) *Buffer {
	n := len(v.data)
	b.Grow(n)
	copy(b.data[b.length:], v.data)
	b.length += n
	b.data[b.length] = 0
	return b
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) *Buffer {
	b.Grow(1)
	b.data[b.length] = c
	b.length++
	b.data[b.length] = 0
	return b
}

// Appendf appends the formatted rendering. Formatting is unbounded: the
// buffer grows to fit and never truncates.
func (b *Buffer) Appendf(format string, args ...interface{}) *Buffer {
	return b.Append(fmtx.Sprintf(format, args...))
}

// Insert inserts a copy of s before index. It reports failure and leaves
// the buffer unmodified when s is empty. An index at or beyond the current
// length appends; a negative index inserts at the front. Inserting shifts
// the tail right, an O(n) move.
func (b *Buffer) Insert(index int, s string) bool {
	if len(s) == 0 {
		return false
	}
	if index >= b.length {
		b.Append(s)
		return true
	}
	if index < 0 {
		index = 0
	}
	n := len(s)
	b.Grow(n)
	copy(b.data[index+n:b.length+n], b.data[index:b.length])
	copy(b.data[index:], s)
	b.length += n
	b.data[b.length] = 0
	return true
}

// Erase removes count bytes starting at index, shifting the remainder left.
// It reports failure and leaves the buffer unmodified when the range
// exceeds the content.
func (b *Buffer) Erase(index, count int) bool {
	if index < 0 || count < 0 || index+count > b.length {
		return false
	}
	if count == 0 {
		return true
	}
	copy(b.data[index:], b.data[index+count:b.length])
	b.length -= count
	b.data[b.length] = 0
	return true
}

// Replace substitutes every occurrence of needle with replacement and
// returns the number of substitutions. Either argument being empty yields
// zero substitutions. The scan resumes past each inserted replacement, so
// the operation terminates even when the replacement contains the needle.
func (b *Buffer) Replace(needle, replacement string) int {
	if len(needle) == 0 || len(replacement) == 0 {
		return 0
	}
	count := 0
	pos := 0
	for {
		i := b.View().Index(needle, pos)
		if i == InvalidIndex {
			return count
		}
		b.Erase(i, len(needle))
		b.Insert(i, replacement)
		pos = i + len(replacement)
		count++
	}
}

// Lowercase maps every ASCII uppercase content byte to lowercase in place.
// Bytes outside the ASCII letters are untouched; this is not a UTF-8 aware
// transform.
func (b *Buffer) Lowercase() *Buffer {
	for i := 0; i < b.length; i++ {
		if b.data[i] >= 'A' && b.data[i] <= 'Z' {
			b.data[i] += 'a' - 'A'
		}
	}
	return b
}

// Uppercase maps every ASCII lowercase content byte to uppercase in place.
// Bytes outside the ASCII letters are untouched; this is not a UTF-8 aware
// transform.
func (b *Buffer) Uppercase() *Buffer {
	for i := 0; i < b.length; i++ {
		if b.data[i] >= 'a' && b.data[i] <= 'z' {
			b.data[i] -= 'a' - 'A'
		}
	}
	return b
}

// TrimLeft removes leading bytes from the default trim set.
func (b *Buffer) TrimLeft() *Buffer {
	return b.TrimLeftSet(DefaultTrimSet)
}

// TrimLeftSet removes leading bytes that are members of set.
func (b *Buffer) TrimLeftSet(set string) *Buffer {
	i := b.View().IndexNotAny(set, 0)
	if i == InvalidIndex {
		b.Clear()
		return b
	}
	if i > 0 {
		b.Erase(0, i)
	}
	return b
}

// TrimRight removes trailing bytes from the default trim set.
func (b *Buffer) TrimRight() *Buffer {
	return b.TrimRightSet(DefaultTrimSet)
}

// TrimRightSet removes trailing bytes that are members of set.
func (b *Buffer) TrimRightSet(set string) *Buffer {
	i := b.View().LastIndexNotAny(set)
	if i == InvalidIndex {
		b.Clear()
		return b
	}
	if i+1 < b.length {
		b.Erase(i+1, b.length-(i+1))
	}
	return b
}

// Trim removes leading and trailing bytes from the default trim set.
func (b *Buffer) Trim() *Buffer {
	return b.TrimSet(DefaultTrimSet)
}

// TrimSet removes leading and trailing bytes that are members of set.
func (b *Buffer) TrimSet(set string) *Buffer {
	return b.TrimRightSet(set).TrimLeftSet(set)
}

// Clear drops the content but keeps the storage for reuse.
func (b *Buffer) Clear() *Buffer {
	b.length = 0
	if len(b.data) > 0 {
		b.data[0] = 0
	}
	return b
}

// Reset drops both content and storage, returning the buffer to the
// canonical unallocated empty state.
func (b *Buffer) Reset() *Buffer {
	b.data = nil
	b.length = 0
	return b
}

// Move transfers ownership of the storage into a new Buffer and resets the
// receiver to the canonical empty state. The receiver stays usable.
func (b *Buffer) Move() *Buffer {
	moved := &Buffer{data: b.data, length: b.length}
	b.data = nil
	b.length = 0
	return moved
}

// Substr returns an owning copy of count bytes starting at start, with the
// same clamping rules as View.Substr.
func (b *Buffer) Substr(start, count int) *Buffer {
	return NewView(b.View().Substr(start, count))
}

// Split splits the content like View.Split. The returned views borrow the
// buffer's storage and stay valid until the next mutation.
func (b *Buffer) Split(delim string) []View {
	return b.View().Split(delim)
}

// Hash returns the FNV-1a hash of the content.
func (b *Buffer) Hash() uint32 {
	return b.View().Hash()
}

// Contains reports whether sub occurs in the content.
func (b *Buffer) Contains(sub string) bool {
	return b.View().Contains(sub)
}

// StartsWith reports whether the content begins with prefix.
func (b *Buffer) StartsWith(prefix string) bool {
	return b.View().StartsWith(prefix)
}

// EndsWith reports whether the content ends with suffix.
func (b *Buffer) EndsWith(suffix string) bool {
	return b.View().EndsWith(suffix)
}

// Index returns the offset of pattern at or after start, like View.Index.
func (b *Buffer) Index(pattern string, start int) int {
	return b.View().Index(pattern, start)
}

// LastIndex returns the offset of the last occurrence of pattern, like
// View.LastIndex.
func (b *Buffer) LastIndex(pattern string) int {
	return b.View().LastIndex(pattern)
}

// Join concatenates the given views from index start onward, separated by
// delim, into a new Buffer. An empty sequence yields an empty Buffer and a
// single-element sequence yields that element regardless of start. A start
// outside the sequence yields an empty Buffer.
func Join(parts []View, delim string, start int) *Buffer {
	if len(parts) == 0 {
		return New()
	}
	if len(parts) == 1 {
		return NewView(parts[0])
	}
	if start < 0 {
		start = 0
	}
	if start >= len(parts) {
		return New()
	}
	joined := NewView(parts[start])
	for i := start + 1; i < len(parts); i++ {
		joined.Append(delim)
		joined.AppendView(parts[i])
	}
	return joined
}

// JoinStrings is Join for plain string elements.
func JoinStrings(parts []string, delim string, start int) *Buffer {
	if len(parts) == 0 {
		return New()
	}
	if len(parts) == 1 {
		return NewString(parts[0])
	}
	if start < 0 {
		start = 0
	}
	if start >= len(parts) {
		return New()
	}
	joined := NewString(parts[start])
	for i := start + 1; i < len(parts); i++ {
		joined.Append(delim)
		joined.Append(parts[i])
	}
	return joined
}

// File: slot.go
// Title: Scratch Slot
// Description: Implements the slot type handed out by the pool. A slot
//              is a fixed byte row whose content runs up to the first
//              zero byte, mirroring how the bounded writers terminate.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-25
// Modified: 2026-07-25
//
// Change History:
// - 2026-07-25 v0.1.0: Initial slot implementation

package scratch

import (
	"bytes"
)

// Slot is one row of the scratch ring: SlotSize content bytes plus a
// terminator byte. All write operations keep the content terminated, so
// reads never scan past the row.
type Slot [SlotSize + 1]byte

// Len returns the content length in bytes, up to the terminator.
func (s *Slot) Len() int {
	if i := bytes.IndexByte(s[:], 0); i >= 0 {
		return i
	}
	return len(s)
}

// IsEmpty reports whether the slot holds no content.
func (s *Slot) IsEmpty() bool {
	return s[0] == 0
}

// String returns the slot content as a new string.
func (s *Slot) String() string {
	return string(s[:s.Len()])
}

// Bytes returns the content bytes. The slice aliases the slot row and is
// rewritten when the ring rotates back around, so callers needing the
// bytes beyond that must copy them out.
func (s *Slot) Bytes() []byte {
	return s[:s.Len()]
}

// Set replaces the slot content with src, bounded to the slot capacity,
// and returns the number of content bytes stored.
func (s *Slot) Set(src string) int {
	return Copy(s[:], src)
}

// Append adds src behind the current content, bounded to the slot
// capacity, and returns the resulting content length.
func (s *Slot) Append(src string) int {
	return Concat(s[:], src)
}

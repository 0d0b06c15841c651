// File: pool.go
// Title: Rotating Scratch Pool
// Description: Implements a fixed ring of reusable formatting slots for
//              transient text passed between modules. Acquisition rotates
//              through the ring, so a slot stays valid until fifteen
//              further acquisitions have happened.
// Author: msto63
// Version: v0.1.1
// Created: 2026-07-25
// Modified: 2026-08-04
//
// Change History:
// - 2026-07-25 v0.1.0: Initial pool implementation
// - 2026-08-04 v0.1.1: Documented the truncation contract of Format

package scratch

import (
	"github.com/msto63/textcore/fmtx"
	"github.com/msto63/textcore/strx"
)

const (
	// SlotCount is the number of slots in the ring.
	SlotCount = 16

	// SlotSize is the usable content capacity of one slot in bytes. Each
	// slot carries one extra byte so the content is always terminated.
	SlotSize = 1024
)

// Pool is a rotating ring of scratch slots. It holds no heap references
// and needs no cleanup; the zero rotation state is ready for use via
// NewPool. A Pool is meant for single-goroutine use, matching the
// cooperative threading model of the library.
type Pool struct {
	slots  [SlotCount]Slot
	rotate int
}

// NewPool returns an empty scratch pool.
func NewPool() *Pool {
	return &Pool{}
}

// Acquire advances the ring cursor and returns the next slot, truncated
// to empty. The returned slot is overwritten again after SlotCount
// further acquisitions, so callers must not hold it across that many
// calls. The cursor pre-increments, so a fresh pool hands out slot 1
// first and wraps from the last slot back to slot 0.
func (p *Pool) Acquire() *Slot {
	p.rotate++
	if p.rotate >= SlotCount {
		p.rotate = 0
	}
	s := &p.slots[p.rotate]
	s[0] = 0
	return s
}

// Format acquires a slot and renders the format string into it. The
// rendering is bounded to SlotSize-1 content bytes plus the terminator;
// longer output is silently truncated, which is the intended contract
// for transient diagnostics.
func (p *Pool) Format(format string, args ...interface{}) *Slot {
	s := p.Acquire()
	fmtx.Bprintf(s[:SlotSize], format, args...)
	return s
}

// FormatRaw acquires a slot and copies s into it without interpreting
// format verbs, bounded and terminated like Format.
func (p *Pool) FormatRaw(s string) *Slot {
	slot := p.Acquire()
	slot.Set(s)
	return slot
}

// JoinPath joins the given path segments with the platform separator and
// returns the result as an owning buffer, so it stays valid after the
// ring has rotated on.
func (p *Pool) JoinPath(parts ...string) *strx.Buffer {
	return strx.JoinStrings(parts, PathSeparator, 0)
}

// File: doc.go
// Title: Package Documentation for scratch
// Description: Package scratch provides the rotating slot pool for
//              transient formatted text and the platform-normalizing
//              text primitives that travel with it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-25
// Modified: 2026-07-25
//
// Change History:
// - 2026-07-25 v0.1.0: Initial package documentation

// Package scratch provides a rotating pool of fixed-size text slots.
//
// The pool serves call sites that need a short-lived formatted string,
// such as building a diagnostic message or a path, without allocating.
// Acquire hands out the next of sixteen slots in rotation; a slot stays
// valid until the ring has rotated back onto it, which gives callers
// fifteen further acquisitions of headroom. Content that must live
// longer belongs in an owning strx.Buffer, which is what JoinPath
// returns.
//
// All writes into slots are bounded and keep the content terminated with
// a zero byte; output that exceeds a slot is silently truncated. The
// pool is built for single-goroutine use. Concurrent goroutines must use
// separate pools, which is cheap since a Pool is one flat allocation.
//
//	pool := scratch.NewPool()
//	msg := pool.Format("%d of %d done", 3, 16)
//	_ = msg.String()
package scratch

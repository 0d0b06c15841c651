// File: doc.go
// Title: Package Documentation for fmtx
// Description: Package fmtx provides printf-style formatting with bounded
//              destination buffers and transparent handling of text substrate
//              values as format arguments.
// Author: msto63
// Version: v0.1.1
// Created: 2026-07-22
// Modified: 2026-08-04
//
// Change History:
// - 2026-07-22 v0.1.0: Initial package documentation
// - 2026-08-04 v0.1.1: Documented the pre-termination behavior of Bprintf

// Package fmtx provides printf-style formatting for the textcore library.
//
// Overview
//
// The package serves two purposes. First, it lets the text substrate types
// (strx.View, strx.Buffer) appear directly as %s and %v arguments: any
// argument implementing the CharSource interface is replaced by its
// character content before formatting. Second, it offers Bprintf, a bounded
// write with C snprintf semantics for callers that format into fixed-size
// storage such as the scratch pool slots.
//
// Usage
//
//	v := strx.OfString("world")
//	s := fmtx.Sprintf("hello %s", v) // "hello world"
//
//	var buf [16]byte
//	need := fmtx.Bprintf(buf[:], "value=%d", 123456789)
//	// buf holds "value=123456789" truncated to 15 bytes plus terminator;
//	// need reports the full length so truncation is detectable.
//
// Bounded Write Contract
//
// Bprintf always terminates dst with a zero byte when dst is non-empty,
// even before rendering begins, so a partially consumed destination never
// exposes stale content. At most len(dst)-1 content bytes are written.
// The return value is the length the complete rendering would need; a nil
// destination turns the call into a pure size probe. Truncation is silent,
// matching the substrate-wide convention that bounded writers clamp rather
// than fail.
//
// The package is stateless. All functions are safe for concurrent use as
// long as the destination buffers are not shared between goroutines.
package fmtx

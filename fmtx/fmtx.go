// File: fmtx.go
// Title: Bounded Formatting and Argument Normalization
// Description: Implements printf-style formatting with a bounded snprintf-like
//              write contract and transparent normalization of text substrate
//              values (views, buffers) into plain strings before formatting.
// Author: msto63
// Version: v0.1.1
// Created: 2026-07-22
// Modified: 2026-08-04
//
// Change History:
// - 2026-07-22 v0.1.0: Initial implementation with Sprintf and Bprintf
// - 2026-08-04 v0.1.1: Bprintf pre-terminates the destination before rendering

package fmtx

import (
	"fmt"
)

// CharSource is implemented by text values that can expose their content
// as a plain Go string. View and Buffer from the strx package implement it,
// which lets them be passed directly to the formatting functions here
// without the caller converting them first.
type CharSource interface {
	Chars() string
}

// normalize replaces every CharSource argument with its character content
// so that fmt's %s and %v verbs see plain strings. All other arguments are
// passed through untouched. The input slice is not modified.
func normalize(args []interface{}) []interface{} {
	needsCopy := false
	for _, arg := range args {
		if _, ok := arg.(CharSource); ok {
			needsCopy = true
			break
		}
	}
	if !needsCopy {
		return args
	}

	normalized := make([]interface{}, len(args))
	for i, arg := range args {
		if cs, ok := arg.(CharSource); ok {
			normalized[i] = cs.Chars()
		} else {
			normalized[i] = arg
		}
	}
	return normalized
}

// Sprintf formats according to the format specifier and returns the result
// as a string. Arguments implementing CharSource are normalized to their
// character content first, everything else behaves exactly like fmt.Sprintf.
func Sprintf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, normalize(args)...)
}

// Bprintf renders the formatted output into dst with a bounded write
// contract: dst is terminated with a zero byte even when nothing is
// written, at most len(dst)-1 content bytes are stored, and the returned
// value is the length the complete rendering would need. Passing a nil or
// empty dst turns the call into a pure size probe.
//
// Output that does not fit is silently truncated. The caller can detect
// truncation by comparing the return value against len(dst)-1.
func Bprintf(dst []byte, format string, args ...interface{}) int {
	if len(dst) > 0 {
		dst[0] = 0
	}

	rendered := Sprintf(format, args...)
	if len(dst) == 0 {
		return len(rendered)
	}

	n := copy(dst[:len(dst)-1], rendered)
	dst[n] = 0
	return len(rendered)
}

// Bprint copies s into dst under the same bounded contract as Bprintf but
// without interpreting format verbs. It returns the length of s.
func Bprint(dst []byte, s string) int {
	if len(dst) == 0 {
		return len(s)
	}

	n := copy(dst[:len(dst)-1], s)
	dst[n] = 0
	return len(s)
}

// File: path.go
// Title: Platform Text Primitives
// Description: Implements the platform-normalizing helpers that travel
//              with the scratch pool: case-insensitive matching, bounded
//              terminated copies, and the path separator constant.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-25
// Modified: 2026-07-25
//
// Change History:
// - 2026-07-25 v0.1.0: Initial helper implementation

package scratch

import (
	"bytes"
	"os"
	"strings"
)

// PathSeparator is the platform path separator as a one-byte string.
const PathSeparator = string(os.PathSeparator)

// Matches reports whether a and b are equal under case folding. Both
// platforms fold the same way here, so path-style comparisons behave
// identically everywhere.
func Matches(a, b string) bool {
	return strings.EqualFold(a, b)
}

// IsEmptyChars reports whether s carries no content, treating a leading
// zero byte as the end of content.
func IsEmptyChars(s string) bool {
	return len(s) == 0 || s[0] == 0
}

// Copy places src into dst, bounded to len(dst)-1 bytes, terminates the
// content with a zero byte, and returns the number of content bytes
// stored. An empty dst stores nothing.
func Copy(dst []byte, src string) int {
	if len(dst) == 0 {
		return 0
	}
	n := copy(dst[:len(dst)-1], src)
	dst[n] = 0
	return n
}

// Concat appends src behind the terminated content already in dst, under
// the same bound and termination rules as Copy, and returns the resulting
// content length. A dst without a terminator is treated as full.
func Concat(dst []byte, src string) int {
	if len(dst) == 0 {
		return 0
	}
	cur := bytes.IndexByte(dst, 0)
	if cur < 0 {
		return len(dst)
	}
	n := copy(dst[cur:len(dst)-1], src)
	dst[cur+n] = 0
	return cur + n
}

// File: path_test.go
// Title: Platform Text Primitive Tests
// Description: Tests for case-insensitive matching, bounded terminated
//              copies, and empty-content detection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-25
// Modified: 2026-07-25
//
// Change History:
// - 2026-07-25 v0.1.0: Initial test implementation

package scratch

import (
	"testing"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"identical", "track.cfg", "track.cfg", true},
		{"case differs", "Track.CFG", "track.cfg", true},
		{"different content", "track.cfg", "track.dat", false},
		{"different length", "track", "track.cfg", false},
		{"both empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.a, tt.b); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCopy(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		var dst [8]byte
		if n := Copy(dst[:], "abc"); n != 3 {
			t.Fatalf("Copy returned %d, want 3", n)
		}
		if dst[3] != 0 {
			t.Error("content not terminated")
		}
		if got := string(dst[:3]); got != "abc" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("truncates", func(t *testing.T) {
		var dst [4]byte
		if n := Copy(dst[:], "abcdef"); n != 3 {
			t.Fatalf("Copy returned %d, want 3", n)
		}
		if got := string(dst[:3]); got != "abc" || dst[3] != 0 {
			t.Errorf("content = %q, terminator = %d", got, dst[3])
		}
	})

	t.Run("empty destination", func(t *testing.T) {
		if n := Copy(nil, "abc"); n != 0 {
			t.Errorf("Copy into nil returned %d", n)
		}
	})
}

func TestConcat(t *testing.T) {
	t.Run("appends behind content", func(t *testing.T) {
		var dst [16]byte
		Copy(dst[:], "usr")
		if n := Concat(dst[:], "/bin"); n != 7 {
			t.Fatalf("Concat returned %d, want 7", n)
		}
		if got := string(dst[:7]); got != "usr/bin" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("truncates at capacity", func(t *testing.T) {
		var dst [8]byte
		Copy(dst[:], "abcd")
		if n := Concat(dst[:], "efgh"); n != 7 {
			t.Fatalf("Concat returned %d, want 7", n)
		}
		if got := string(dst[:7]); got != "abcdefg" || dst[7] != 0 {
			t.Errorf("content = %q, terminator = %d", got, dst[7])
		}
	})

	t.Run("unterminated destination stays untouched", func(t *testing.T) {
		dst := []byte{'a', 'b', 'c', 'd'}
		if n := Concat(dst, "ef"); n != len(dst) {
			t.Fatalf("Concat returned %d, want %d", n, len(dst))
		}
		if got := string(dst); got != "abcd" {
			t.Errorf("destination changed to %q", got)
		}
	})

	t.Run("empty destination", func(t *testing.T) {
		if n := Concat(nil, "abc"); n != 0 {
			t.Errorf("Concat into nil returned %d", n)
		}
	})
}

func TestIsEmptyChars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty string", "", true},
		{"leading zero byte", "\x00abc", true},
		{"content", "a", false},
		{"space is content", " ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmptyChars(tt.input); got != tt.want {
				t.Errorf("IsEmptyChars(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

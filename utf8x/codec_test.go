// File: codec_test.go
// Title: Sequence Codec Tests
// Description: Tests for decoding and encoding across all six length
//              classes, including overlong and truncation failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-05
// Modified: 2026-08-05
//
// Change History:
// - 2026-08-05 v0.1.0: Initial test implementation

package utf8x

import (
	"bytes"
	"testing"
)

func TestDecodeRune(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		wantRune rune
		wantSize int
	}{
		{"ascii letter", []byte{0x41}, 0x41, 1},
		{"nul byte", []byte{0x00}, 0x00, 1},
		{"two byte e acute", []byte{0xc3, 0xa9}, 0xe9, 2},
		{"three byte euro sign", []byte{0xe2, 0x82, 0xac}, 0x20ac, 3},
		{"four byte emoji", []byte{0xf0, 0x9f, 0x98, 0x80}, 0x1f600, 4},
		{"five byte class floor", []byte{0xf8, 0x88, 0x80, 0x80, 0x80}, 0x200000, 5},
		{"six byte class floor", []byte{0xfc, 0x84, 0x80, 0x80, 0x80, 0x80}, 0x4000000, 6},
		{"trailing bytes ignored", []byte{0xc3, 0xa9, 0x41, 0x42}, 0xe9, 2},
		{"empty input", []byte{}, 0, -1},
		{"lone continuation byte", []byte{0x80}, 0, -1},
		{"continuation byte then ascii", []byte{0x80, 0x41}, 0, -1},
		{"broken continuation", []byte{0xc3, 0x41}, 0, -1},
		{"overlong two byte", []byte{0xc0, 0xaf}, 0, -1},
		{"overlong three byte", []byte{0xe0, 0x80, 0xaf}, 0, -1},
		{"truncated two byte", []byte{0xc3}, 0, -1},
		{"truncated three byte", []byte{0xe2, 0x82}, 0, -1},
		{"invalid lead byte", []byte{0xff, 0x80, 0x80, 0x80, 0x80, 0x80}, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, size := DecodeRune(tt.input)
			if r != tt.wantRune || size != tt.wantSize {
				t.Errorf("DecodeRune(% x) = (%#x, %d), want (%#x, %d)",
					tt.input, r, size, tt.wantRune, tt.wantSize)
			}
		})
	}
}

func TestEncodeRune(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want []byte
	}{
		{"ascii letter", 0x41, []byte{0x41}},
		{"one byte ceiling", 0x7f, []byte{0x7f}},
		{"two byte floor", 0x80, []byte{0xc2, 0x80}},
		{"two byte e acute", 0xe9, []byte{0xc3, 0xa9}},
		{"two byte ceiling", 0x7ff, []byte{0xdf, 0xbf}},
		{"three byte floor", 0x800, []byte{0xe0, 0xa0, 0x80}},
		{"three byte ceiling", 0xffff, []byte{0xef, 0xbf, 0xbf}},
		{"four byte floor", 0x10000, []byte{0xf0, 0x90, 0x80, 0x80}},
		{"five byte floor", 0x200000, []byte{0xf8, 0x88, 0x80, 0x80, 0x80}},
		{"six byte floor", 0x4000000, []byte{0xfc, 0x84, 0x80, 0x80, 0x80, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf [MaxSeqLen]byte
			n := EncodeRune(buf[:], tt.r)
			if n != len(tt.want) {
				t.Fatalf("EncodeRune(%#x) = %d bytes, want %d", tt.r, n, len(tt.want))
			}
			if !bytes.Equal(buf[:n], tt.want) {
				t.Errorf("EncodeRune(%#x) wrote % x, want % x", tt.r, buf[:n], tt.want)
			}
		})
	}
}

func TestEncodeRuneBounds(t *testing.T) {
	t.Run("destination too short", func(t *testing.T) {
		var buf [1]byte
		if n := EncodeRune(buf[:], 0xe9); n != -1 {
			t.Errorf("EncodeRune into 1 byte = %d, want -1", n)
		}
		if buf[0] != 0 {
			t.Errorf("failed encode wrote %#x into destination", buf[0])
		}
	})

	t.Run("empty destination", func(t *testing.T) {
		if n := EncodeRune(nil, 0x41); n != -1 {
			t.Errorf("EncodeRune into nil = %d, want -1", n)
		}
	})

	t.Run("negative rune", func(t *testing.T) {
		var buf [MaxSeqLen]byte
		if n := EncodeRune(buf[:], -1); n != -1 {
			t.Errorf("EncodeRune(-1) = %d, want -1", n)
		}
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	boundaries := []rune{
		0, 0x7f,
		0x80, 0x7ff,
		0x800, 0xffff,
		0x10000, 0x1fffff,
		0x200000, 0x3ffffff,
		0x4000000, 0x7fffffff,
	}

	for _, r := range boundaries {
		var buf [MaxSeqLen]byte
		n := EncodeRune(buf[:], r)
		if n < 1 {
			t.Fatalf("EncodeRune(%#x) = %d", r, n)
		}
		if want := RuneLen(r); n != want {
			t.Errorf("EncodeRune(%#x) wrote %d bytes, RuneLen says %d", r, n, want)
		}
		back, size := DecodeRune(buf[:n])
		if back != r || size != n {
			t.Errorf("round trip of %#x = (%#x, %d), want (%#x, %d)", r, back, size, r, n)
		}
	}
}

func TestRuneLen(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want int
	}{
		{"ascii", 0x41, 1},
		{"latin supplement", 0xe9, 2},
		{"euro sign", 0x20ac, 3},
		{"emoji", 0x1f600, 4},
		{"five byte floor", 0x200000, 5},
		{"six byte floor", 0x4000000, 6},
		{"negative", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RuneLen(tt.r); got != tt.want {
				t.Errorf("RuneLen(%#x) = %d, want %d", tt.r, got, tt.want)
			}
		})
	}
}

// File: codec.go
// Title: Sequence Codec
// Description: Implements decoding and encoding of multi-byte sequences
//              over a six-class length table. The table keeps the 5 and
//              6 byte forms that predate the RFC 3629 cutoff, so data
//              containing historical encodings still round-trips.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-05
// Modified: 2026-08-05
//
// Change History:
// - 2026-08-05 v0.1.0: Initial implementation of the length-class codec

package utf8x

// seqClass describes one encoded sequence length class: how to recognize
// its lead byte, how many payload bits sit above the final continuation
// byte, and the rune range the class may legitimately carry.
type seqClass struct {
	leadMask  byte
	leadValue byte
	shift     uint
	maxRune   rune
	minRune   rune
}

// seqClasses lists the six length classes, shortest first. minRune rejects
// overlong encodings: a value below the class minimum has a shorter
// canonical form and is refused.
var seqClasses = [...]seqClass{
	{0x80, 0x00, 0, 0x7f, 0},
	{0xe0, 0xc0, 6, 0x7ff, 0x80},
	{0xf0, 0xe0, 12, 0xffff, 0x800},
	{0xf8, 0xf0, 18, 0x1fffff, 0x10000},
	{0xfc, 0xf8, 24, 0x3ffffff, 0x200000},
	{0xfe, 0xfc, 30, 0x7fffffff, 0x4000000},
}

// MaxSeqLen is the longest encoded sequence the codec handles, in bytes.
const MaxSeqLen = len(seqClasses)

// DecodeRune decodes the first encoded sequence in b and returns the rune
// and the number of bytes consumed. Malformed input returns (0, -1): an
// empty slice, a broken continuation byte, an overlong encoding, or a
// sequence running past the end of b. The negative length is the sole
// failure signal; a zero rune with length 1 is a valid decode of the NUL
// byte.
//
// The accumulator starts as the whole lead byte and shifts in six payload
// bits per continuation byte; masking with the matching class maximum
// strips the lead marker bits at the end. One continuation byte is
// consumed per class the lead byte fails to match, so the class test and
// the byte walk advance in lockstep.
func DecodeRune(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, -1
	}
	lead := b[0]
	acc := rune(lead)
	for i, class := range seqClasses {
		if lead&class.leadMask == class.leadValue {
			acc &= class.maxRune
			if acc < class.minRune {
				return 0, -1
			}
			return acc, i + 1
		}
		if i+1 >= len(b) {
			return 0, -1
		}
		c := rune(b[i+1] ^ 0x80)
		if c&0xc0 != 0 {
			return 0, -1
		}
		acc = acc<<6 | c
	}
	return 0, -1
}

// EncodeRune writes the encoded form of r into dst and returns the number
// of bytes written. It returns -1 when r is negative, or when dst is too
// short for the encoded form. The first class whose maximum covers r is
// chosen, so every rune gets its shortest form.
func EncodeRune(dst []byte, r rune) int {
	if r < 0 {
		return -1
	}
	for i, class := range seqClasses {
		if r <= class.maxRune {
			size := i + 1
			if len(dst) < size {
				return -1
			}
			shift := class.shift
			dst[0] = class.leadValue | byte(r>>shift)
			for j := 1; j < size; j++ {
				shift -= 6
				dst[j] = 0x80 | byte((r>>shift)&0x3f)
			}
			return size
		}
	}
	return -1
}

// RuneLen returns the number of bytes the encoded form of r occupies, or
// -1 when r cannot be encoded.
func RuneLen(r rune) int {
	if r < 0 {
		return -1
	}
	for i, class := range seqClasses {
		if r <= class.maxRune {
			return i + 1
		}
	}
	return -1
}

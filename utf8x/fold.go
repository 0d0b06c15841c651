// File: fold.go
// Title: Case Folding
// Description: Implements uppercase mapping for single runes via binary
//              search over the sorted case table, and whole-text folding
//              that decodes, maps, and re-encodes sequence by sequence.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-05
// Modified: 2026-08-05
//
// Change History:
// - 2026-08-05 v0.1.0: Initial implementation of rune and text folding

package utf8x

import (
	"github.com/msto63/textcore/strx"
)

// ToUpper returns the uppercase mapping of r, or r unchanged when the
// case table carries no entry for it. The table is sorted by source rune,
// so lookup is a binary search.
func ToUpper(r rune) rune {
	bottom := 0
	top := len(upperTable) - 1
	for bottom <= top {
		mid := (bottom + top) / 2
		switch {
		case r == upperTable[mid].from:
			return upperTable[mid].to
		case r > upperTable[mid].from:
			bottom = mid + 1
		default:
			top = mid - 1
		}
	}
	return r
}

// UpperView uppercases the text behind v sequence by sequence and returns
// the result as a fresh buffer. Each decoded rune is mapped through the
// case table and re-encoded, so mappings that change the encoded length
// are safe. When a malformed sequence is hit the remaining bytes are
// carried over unchanged. A final ASCII pass covers plain letters in any
// carried-over tail.
func UpperView(v strx.View) *strx.Buffer {
	out := strx.NewCapacity(v.Len())
	data := v.Bytes()
	i := 0
	for i < len(data) {
		r, size := DecodeRune(data[i:])
		if size < 0 {
			out.AppendView(strx.Of(data[i:]))
			break
		}
		var tmp [MaxSeqLen]byte
		n := EncodeRune(tmp[:], ToUpper(r))
		if n < 0 {
			out.AppendView(strx.Of(data[i : i+size]))
		} else {
			out.AppendView(strx.Of(tmp[:n]))
		}
		i += size
	}
	out.Uppercase()
	return out
}

// UpperString uppercases s and returns the result as a new string.
func UpperString(s string) string {
	return UpperView(strx.OfString(s)).String()
}

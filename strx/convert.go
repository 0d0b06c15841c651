// File: convert.go
// Title: Numeric Conversions
// Description: C-style numeric conversions for View and Buffer content.
//              The longest valid numeric prefix is located by hand (leading
//              whitespace, sign, digits, and for floating point a fraction
//              and exponent), then parsed with strconv. Text without a
//              parseable prefix converts to zero, matching atoi and atof.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-28
// Modified: 2026-07-28
//
// Change History:
// - 2026-07-28 v0.1.0: Initial implementation

package strx

import (
	"strconv"
)

// isSpaceByte reports membership in the C isspace set.
func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// intPrefix returns the longest prefix of b that forms a valid integer:
// optional leading whitespace, optional sign, at least one digit. It
// returns an empty string when no digit follows the optional prefix.
func intPrefix(b []byte) string {
	i := 0
	for i < len(b) && isSpaceByte(b[i]) {
		i++
	}
	start := i
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}
	digits := 0
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
		digits++
	}
	if digits == 0 {
		return ""
	}
	return string(b[start:i])
}

// floatPrefix returns the longest prefix of b that forms a valid decimal
// floating point number: optional leading whitespace, optional sign, digits
// with an optional fraction, and an optional exponent. The exponent is only
// consumed when at least one digit follows it, so "1e" parses as 1.
func floatPrefix(b []byte) string {
	i := 0
	for i < len(b) && isSpaceByte(b[i]) {
		i++
	}
	start := i
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}
	digits := 0
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
		digits++
	}
	if i < len(b) && b[i] == '.' {
		i++
		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1
		if j < len(b) && (b[j] == '+' || b[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(b) && b[j] >= '0' && b[j] <= '9' {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}
	return string(b[start:i])
}

// Int converts the content to an int. Leading whitespace and trailing
// non-numeric text are ignored; unparseable content yields 0. Values beyond
// the int64 range saturate at the range boundary.
func (v View) Int() int {
	return int(v.Int64())
}

// Int64 converts the content to an int64 with the same rules as Int.
func (v View) Int64() int64 {
	prefix := intPrefix(v.data)
	if prefix == "" {
		return 0
	}
	n, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		// ParseInt saturates the returned value on range errors.
		numErr, ok := err.(*strconv.NumError)
		if ok && numErr.Err == strconv.ErrRange {
			return n
		}
		return 0
	}
	return n
}

// Float32 converts the content to a float32 with the same prefix rules as
// Float64.
func (v View) Float32() float32 {
	return float32(v.Float64())
}

// Float64 converts the content to a float64. Leading whitespace and
// trailing non-numeric text are ignored; unparseable content yields 0.
// Out-of-range magnitudes saturate at the float64 infinities.
func (v View) Float64() float64 {
	prefix := floatPrefix(v.data)
	if prefix == "" {
		return 0
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		numErr, ok := err.(*strconv.NumError)
		if ok && numErr.Err == strconv.ErrRange {
			return f
		}
		return 0
	}
	return f
}

// Int converts the buffer content with View.Int semantics.
func (b *Buffer) Int() int {
	return b.View().Int()
}

// Int64 converts the buffer content with View.Int64 semantics.
func (b *Buffer) Int64() int64 {
	return b.View().Int64()
}

// Float32 converts the buffer content with View.Float32 semantics.
func (b *Buffer) Float32() float32 {
	return b.View().Float32()
}

// Float64 converts the buffer content with View.Float64 semantics.
func (b *Buffer) Float64() float64 {
	return b.View().Float64()
}

// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code validity, categorization, and the
//              CLI exit code mapping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-23
// Modified: 2026-07-23
//
// Change History:
// - 2026-07-23 v0.1.0: Initial implementation

package error

import (
	"testing"
)

func TestCodeIsValid(t *testing.T) {
	valid := []Code{
		CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidInput, CodeOutOfRange, CodeInvalidSequence, CodeTruncated,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat, CodeInvalidLength,
	}
	for _, c := range valid {
		if !c.IsValid() {
			t.Errorf("IsValid(%v) = false, want true", c)
		}
	}

	if Code("MADE_UP").IsValid() {
		t.Error("IsValid(MADE_UP) = true, want false")
	}
	if Code("").IsValid() {
		t.Error("IsValid(\"\") = true, want false")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeInvalidSequence, "text"},
		{CodeTruncated, "text"},
		{CodeOutOfRange, "text"},
		{CodeConfigError, "configuration"},
		{CodeMissingConfig, "configuration"},
		{CodeValidationFailed, "validation"},
		{CodeInvalidLength, "validation"},
		{CodeUnknown, "generic"},
		{CodeInternal, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Category(%v) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestCodeExitCode(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalidInput, 2},
		{CodeOutOfRange, 2},
		{CodeValidationFailed, 2},
		{CodeInternal, 1},
		{CodeConfigError, 1},
		{CodeUnknown, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.ExitCode(); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestCodeString(t *testing.T) {
	if CodeTruncated.String() != "TRUNCATED" {
		t.Errorf("String() = %q, want %q", CodeTruncated.String(), "TRUNCATED")
	}
}

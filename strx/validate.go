// File: validate.go
// Title: Argument Validation Helpers
// Description: Pre-flight validation for callers that want rich errors
//              instead of the sentinel results the View and Buffer
//              operations return. The operations themselves never fail;
//              these helpers let surfaces such as the CLI reject bad
//              arguments with standardized error values before calling in.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-02
// Modified: 2026-08-02
//
// Change History:
// - 2026-08-02 v0.1.0: Initial implementation

package strx

import (
	"github.com/msto63/textcore/core/errors"
)

// ValidateIndex checks that index addresses a content byte of a sequence
// of the given length.
func ValidateIndex(operation string, index, length int) error {
	if index < 0 || index >= length {
		return errors.StrxIndexOutOfRange(operation, index, length)
	}
	return nil
}

// ValidateRange checks that the range [index, index+count) lies inside a
// sequence of the given length.
func ValidateRange(operation string, index, count, length int) error {
	if index < 0 || count < 0 || index+count > length {
		return errors.StrxRangeOutOfBounds(operation, index, count, length)
	}
	return nil
}

// ValidatePattern checks that pattern is usable for searching and
// replacing. The search operations treat an empty pattern as a degenerate
// match and Replace ignores it; callers that consider it a user mistake
// validate here first.
func ValidatePattern(operation, pattern string) error {
	if pattern == "" {
		return errors.StrxInvalidPattern(operation, pattern)
	}
	return nil
}

// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the textcore packages. Codes enable
//              structured handling in the CLI and structured log output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-23
// Modified: 2026-07-23
//
// Change History:
// - 2026-07-23 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the textcore packages
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Text operations
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeOutOfRange      Code = "OUT_OF_RANGE"
	CodeInvalidSequence Code = "INVALID_SEQUENCE"
	CodeTruncated       Code = "TRUNCATED"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeInvalidLength    Code = "INVALID_LENGTH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidInput, CodeOutOfRange, CodeInvalidSequence, CodeTruncated,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat, CodeInvalidLength:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeOutOfRange, CodeInvalidSequence, CodeTruncated:
		return "text"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeInvalidLength:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit code the CLI uses for this error code.
// Validation and input problems exit with 2, everything else with 1.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidInput, CodeOutOfRange, CodeValidationFailed,
		CodeInvalidFormat, CodeInvalidLength:
		return 2
	default:
		return 1
	}
}

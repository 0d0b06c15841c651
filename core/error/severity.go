// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so logging and the CLI
//              can prioritize what they report. Severity drives the log
//              level chosen by core/log.LogError.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-23
// Modified: 2026-07-23
//
// Change History:
// - 2026-07-23 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that does not affect core
	// functionality. Examples: invalid user input, a pattern that cannot
	// match, an index outside the content.
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects an operation but has
	// workarounds. Examples: truncated bounded writes, a config key read
	// with a fallback default.
	SeverityMedium

	// SeverityHigh indicates a serious error that breaks the requested
	// operation. Examples: unreadable config file, malformed encoding in
	// data that must round-trip.
	SeverityHigh

	// SeverityCritical indicates an error after which the process should
	// not continue.
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for an
// error code when the caller did not set one explicitly.
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// High severity errors
	case CodeInternal, CodeConfigError, CodeInvalidSequence:
		return SeverityHigh

	// Medium severity errors
	case CodeTruncated, CodeMissingConfig, CodeInvalidConfig:
		return SeverityMedium

	// Low severity errors
	case CodeInvalidInput, CodeNotFound, CodeOutOfRange, CodeValidationFailed,
		CodeInvalidFormat, CodeInvalidLength:
		return SeverityLow

	default:
		return SeverityMedium
	}
}

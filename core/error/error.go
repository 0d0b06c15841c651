// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with codes, severities, and
//              metadata. Provides a structured error system that keeps
//              compatibility with Go's standard error interface while
//              carrying the context the CLI and the structured logger need.
// Author: msto63
// Version: v0.1.1
// Created: 2026-07-23
// Modified: 2026-08-06
//
// Change History:
// - 2026-07-23 v0.1.0: Initial implementation with contextual errors
// - 2026-08-06 v0.1.1: Correlation IDs for tracing CLI invocations

package error

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Error represents a structured error with context, codes, and metadata
type Error struct {
	// Core error information
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	// Context and metadata
	details       map[string]interface{}
	operation     string
	correlationID string
}

// MaxErrorChainDepth limits the depth of error wrapping. Chains beyond the
// limit are flattened to their root cause instead of growing further.
const MaxErrorChainDepth = 15

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// getErrorChainDepth calculates the depth of an error chain
func getErrorChainDepth(err error) int {
	depth := 0
	current := err

	for current != nil && depth < MaxErrorChainDepth*2 {
		depth++
		if tcErr, ok := current.(*Error); ok {
			current = tcErr.cause
		} else {
			break
		}
	}

	return depth
}

// getRootCause returns the deepest error in a chain
func getRootCause(err error) error {
	current := err
	var last error = err

	for current != nil {
		last = current
		if tcErr, ok := current.(*Error); ok {
			current = tcErr.cause
		} else {
			break
		}
	}

	return last
}

// Wrap wraps an existing error with additional context. Wrapping a nil
// error returns nil. When the chain reaches MaxErrorChainDepth the result
// is flattened to the root cause instead of extending the chain.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if depth := getErrorChainDepth(err); depth >= MaxErrorChainDepth {
		rootCause := getRootCause(err)
		return &Error{
			message:   fmt.Sprintf("%s (chain truncated at depth %d): %s", message, MaxErrorChainDepth, rootCause.Error()),
			cause:     nil,
			code:      CodeUnknown,
			severity:  SeverityHigh,
			timestamp: time.Now(),
			details:   map[string]interface{}{"truncated": true, "original_depth": depth},
		}
	}

	// Wrapping one of our own errors carries its classification upward.
	if tcErr, ok := err.(*Error); ok {
		wrapped := &Error{
			message:       message,
			cause:         tcErr,
			code:          tcErr.code,
			severity:      tcErr.severity,
			timestamp:     time.Now(),
			details:       make(map[string]interface{}),
			correlationID: tcErr.correlationID,
		}
		for k, v := range tcErr.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	return &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium { // Only auto-set if not explicitly set
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithCorrelationID sets the correlation ID of the run that produced the
// error, connecting it to the matching log entries.
func (e *Error) WithCorrelationID(correlationID string) *Error {
	e.correlationID = correlationID
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error occurred
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{})
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// CorrelationID returns the correlation ID associated with the error
func (e *Error) CorrelationID() string {
	return e.correlationID
}

// RootCause returns the root cause of the error chain
func (e *Error) RootCause() error {
	cause := e.cause
	for cause != nil {
		if tcErr, ok := cause.(*Error); ok {
			if tcErr.cause == nil {
				return tcErr
			}
			cause = tcErr.cause
		} else {
			return cause
		}
	}
	return e
}

// String returns a detailed string representation of the error
func (e *Error) String() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Error: %s", e.message))
	parts = append(parts, fmt.Sprintf("Code: %s", e.code))
	parts = append(parts, fmt.Sprintf("Severity: %s", e.severity))
	parts = append(parts, fmt.Sprintf("Timestamp: %s", e.timestamp.Format(time.RFC3339)))

	if e.operation != "" {
		parts = append(parts, fmt.Sprintf("Operation: %s", e.operation))
	}

	if e.correlationID != "" {
		parts = append(parts, fmt.Sprintf("CorrelationID: %s", e.correlationID))
	}

	if len(e.details) > 0 {
		detailStrs := make([]string, 0, len(e.details))
		for k, v := range e.details {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":   e.message,
		"code":      e.code,
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339),
		"details":   e.details,
	}

	if e.operation != "" {
		data["operation"] = e.operation
	}

	if e.correlationID != "" {
		data["correlation_id"] = e.correlationID
	}

	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}

	return json.Marshal(data)
}

// HasCode checks if an error has a specific code
func HasCode(err error, code Code) bool {
	if tcErr, ok := err.(*Error); ok {
		return tcErr.code == code
	}
	return false
}

// GetCode returns the error code from an error, or CodeUnknown for foreign errors
func GetCode(err error) Code {
	if tcErr, ok := err.(*Error); ok {
		return tcErr.code
	}
	return CodeUnknown
}

// GetSeverity returns the error severity from an error, or SeverityMedium for foreign errors
func GetSeverity(err error) Severity {
	if tcErr, ok := err.(*Error); ok {
		return tcErr.severity
	}
	return SeverityMedium
}

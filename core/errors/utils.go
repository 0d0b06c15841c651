// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides common error handling utilities used across the
//              textcore packages for consistent error patterns, including
//              a fluent builder and per-module convenience constructors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-24
// Modified: 2026-07-24
//
// Change History:
// - 2026-07-24 v0.1.0: Initial implementation of shared error utilities

package errors

import (
	"fmt"
	"reflect"
	"strings"

	tcerror "github.com/msto63/textcore/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  tcerror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: tcerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Details sets multiple details at once
func (eb *ErrorBuilder) Details(details map[string]interface{}) *ErrorBuilder {
	for k, v := range details {
		eb.details[k] = v
	}
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity tcerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *tcerror.Error {
	// Auto-generate code if not set
	if eb.code == "" {
		eb.code = getModuleErrorCode(eb.module, eb.operation)
	}

	// Auto-generate message if not set
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	// Add module and operation to details
	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	// Create the error
	var err *tcerror.Error
	if eb.cause != nil {
		err = tcerror.Wrap(eb.cause, eb.message)
	} else {
		err = tcerror.New(eb.message)
	}

	return err.
		WithCode(tcerror.Code(eb.code)).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS FOR ALL textcore MODULES
// =============================================================================
// These functions provide a consistent interface for creating errors across
// all textcore packages. Use these instead of fmt.Errorf() or errors.New()

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *tcerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(tcerror.SeverityMedium).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *tcerror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("invalid format in %s", module)).
		Code(getFormatErrorCode(module)).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(tcerror.SeverityMedium).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *tcerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Code(getOperationErrorCode(module)).
		Severity(tcerror.SeverityHigh).
		Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *tcerror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("%s.validate_%s: validation failed for field %s: %s", module, field, field, reason)).
		Code(fmt.Sprintf("%s_VALIDATION_FAILED", strings.ToUpper(module))).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(tcerror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *tcerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("validation failed: value out of range in %s.%s", module, operation)).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(tcerror.SeverityMedium).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *tcerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("item not found in %s.%s", module, operation)).
		Code(CodeNotFound).
		Detail("identifier", identifier).
		Severity(tcerror.SeverityMedium).
		Build()
}

// Utility functions for error analysis

// ExtractDetails extracts all details from a textcore error
func ExtractDetails(err error) map[string]interface{} {
	if tcErr, ok := err.(*tcerror.Error); ok {
		return tcErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	details := ExtractDetails(err)
	if details != nil {
		if module, ok := details["module"].(string); ok {
			return module
		}
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	details := ExtractDetails(err)
	if details != nil {
		if operation, ok := details["operation"].(string); ok {
			return operation
		}
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// ValidateRequired validates that a value is not nil/empty using reflection
func ValidateRequired(module, field string, value interface{}) error {
	if value == nil {
		return ValidationFailed(module, field, value, "cannot be nil")
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		if v.String() == "" {
			return ValidationFailed(module, field, value, "cannot be empty")
		}
	case reflect.Slice, reflect.Map, reflect.Array:
		if v.Len() == 0 {
			return ValidationFailed(module, field, value, "cannot be empty")
		}
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return ValidationFailed(module, field, value, "cannot be nil")
		}
	}

	return nil
}

// ValidateRange validates that a numeric value is within range
func ValidateRange(module, field string, value, min, max interface{}) error {
	val, err := toFloat64(value)
	if err != nil {
		return InvalidInput(module, "validate_range", value, "numeric value")
	}

	minVal, err := toFloat64(min)
	if err != nil {
		return InvalidInput(module, "validate_range", min, "numeric min value")
	}

	maxVal, err := toFloat64(max)
	if err != nil {
		return InvalidInput(module, "validate_range", max, "numeric max value")
	}

	if val < minVal || val > maxVal {
		return OutOfRange(module, "validate_range", value, min, max)
	}

	return nil
}

// toFloat64 converts various numeric types to float64
func toFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", value)
	}
}

// =============================================================================
// MODULE-SPECIFIC CONVENIENCE FUNCTIONS
// =============================================================================
// These functions provide direct, easy-to-use error creation for common
// scenarios in each textcore package

// strx convenience functions

func StrxIndexOutOfRange(operation string, index, length int) *tcerror.Error {
	return OutOfRange(ModuleStrx, operation, index, 0, length-1)
}

func StrxRangeOutOfBounds(operation string, index, count, length int) *tcerror.Error {
	return NewErrorBuilder(ModuleStrx).
		Operation(operation).
		Messagef("range [%d, %d) outside content of length %d", index, index+count, length).
		Code(CodeStrxIndexOutOfRange).
		Detail("index", index).
		Detail("count", count).
		Detail("length", length).
		Severity(tcerror.SeverityLow).
		Build()
}

func StrxInvalidPattern(operation, pattern string) *tcerror.Error {
	return InvalidInput(ModuleStrx, operation, pattern, "non-empty pattern")
}

func StrxConversionFailed(operation, input string) *tcerror.Error {
	return NewErrorBuilder(ModuleStrx).
		Operation(operation).
		Messagef("cannot convert %q to a number", input).
		Code(CodeStrxConversionFailed).
		Detail("input", input).
		Severity(tcerror.SeverityLow).
		Build()
}

// fmtx convenience functions

func FmtxTruncated(operation string, needed, capacity int) *tcerror.Error {
	return NewErrorBuilder(ModuleFmtx).
		Operation(operation).
		Messagef("formatted output needs %d bytes, destination holds %d", needed, capacity).
		Code(CodeFmtxTruncated).
		Detail("needed", needed).
		Detail("capacity", capacity).
		Severity(tcerror.SeverityMedium).
		Build()
}

// scratch convenience functions

func ScratchTruncated(operation string, needed int) *tcerror.Error {
	return NewErrorBuilder(ModuleScratch).
		Operation(operation).
		Messagef("content of %d bytes exceeds the slot size", needed).
		Code(CodeScratchTruncated).
		Detail("needed", needed).
		Severity(tcerror.SeverityMedium).
		Build()
}

// utf8x convenience functions

func Utf8xInvalidSequence(operation string, offset int) *tcerror.Error {
	return NewErrorBuilder(ModuleUtf8x).
		Operation(operation).
		Messagef("malformed sequence at byte offset %d", offset).
		Code(CodeUtf8xInvalidSequence).
		Detail("offset", offset).
		Severity(tcerror.SeverityHigh).
		Build()
}

func Utf8xEncodeOverflow(r rune, capacity int) *tcerror.Error {
	return NewErrorBuilder(ModuleUtf8x).
		Operation("encode").
		Messagef("rune %#x does not fit destination of %d bytes", r, capacity).
		Code(CodeUtf8xEncodeOverflow).
		Detail("rune", int64(r)).
		Detail("capacity", capacity).
		Severity(tcerror.SeverityMedium).
		Build()
}

// config convenience functions

func ConfigParseFailed(path string, cause error) *tcerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("parse").
		Messagef("cannot parse configuration file %s", path).
		Cause(cause).
		Code(CodeConfigParseFailed).
		Detail("path", path).
		Severity(tcerror.SeverityHigh).
		Build()
}

func ConfigMissingKey(key string) *tcerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("get").
		Messagef("configuration key %q not set", key).
		Code(CodeConfigMissingKey).
		Detail("key", key).
		Severity(tcerror.SeverityMedium).
		Build()
}

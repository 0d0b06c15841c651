// File: standards.go
// Title: Error Standards for textcore
// Description: Provides standardized error patterns and codes for all
//              textcore packages so errors carry a uniform module,
//              operation, and code vocabulary across the library.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-24
// Modified: 2026-07-24
//
// Change History:
// - 2026-07-24 v0.1.0: Initial implementation for error standardization

package errors

import (
	"fmt"
	"strings"

	tcerror "github.com/msto63/textcore/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStrx    = "strx"
	ModuleFmtx    = "fmtx"
	ModuleScratch = "scratch"
	ModuleUtf8x   = "utf8x"
	ModuleConfig  = "config"
)

// Standardized error codes for all modules
const (
	// Common error codes
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"

	// Module-specific error codes - strx
	CodeStrxIndexOutOfRange  = "STRX_INDEX_OUT_OF_RANGE"
	CodeStrxInvalidPattern   = "STRX_INVALID_PATTERN"
	CodeStrxLengthExceeded   = "STRX_LENGTH_EXCEEDED"
	CodeStrxConversionFailed = "STRX_CONVERSION_FAILED"

	// Module-specific error codes - fmtx
	CodeFmtxFormatFailed = "FMTX_FORMAT_FAILED"
	CodeFmtxTruncated    = "FMTX_TRUNCATED"

	// Module-specific error codes - scratch
	CodeScratchTruncated    = "SCRATCH_TRUNCATED"
	CodeScratchSlotOverflow = "SCRATCH_SLOT_OVERFLOW"

	// Module-specific error codes - utf8x
	CodeUtf8xInvalidSequence  = "UTF8X_INVALID_SEQUENCE"
	CodeUtf8xOverlongSequence = "UTF8X_OVERLONG_SEQUENCE"
	CodeUtf8xEncodeOverflow   = "UTF8X_ENCODE_OVERFLOW"

	// Module-specific error codes - config
	CodeConfigParseFailed = "CONFIG_PARSE_FAILED"
	CodeConfigReadFailed  = "CONFIG_READ_FAILED"
	CodeConfigMissingKey  = "CONFIG_MISSING_KEY"
)

// StandardError creates a standardized error with module context
func StandardError(module, operation, message string) *tcerror.Error {
	return tcerror.New(message).
		WithCode(tcerror.Code(getModuleErrorCode(module, operation))).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
		}).
		WithSeverity(tcerror.SeverityMedium)
}

// ModuleError creates an error specific to a module operation
func ModuleError(module, operation string, cause error, details map[string]interface{}) *tcerror.Error {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["module"] = module
	details["operation"] = operation

	code := tcerror.Code(getModuleErrorCode(module, operation))
	severity := getSeverityFromError(cause)

	if cause != nil {
		return tcerror.Wrap(cause, fmt.Sprintf("%s.%s failed", module, operation)).
			WithCode(code).
			WithDetails(details).
			WithSeverity(severity)
	}

	return tcerror.New(fmt.Sprintf("%s.%s failed", module, operation)).
		WithCode(code).
		WithDetails(details).
		WithSeverity(severity)
}

// ValidationError creates a standardized validation error
func ValidationError(module, field string, value interface{}, message string) *tcerror.Error {
	return tcerror.New(message).
		WithCode(tcerror.Code(fmt.Sprintf("%s_VALIDATION_FAILED", strings.ToUpper(module)))).
		WithDetails(map[string]interface{}{
			"module": module,
			"field":  field,
			"value":  value,
		}).
		WithSeverity(tcerror.SeverityLow)
}

// InputError creates a standardized input validation error
func InputError(module, operation string, input interface{}, expected string) *tcerror.Error {
	return tcerror.New(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		WithCode(tcerror.Code(CodeInvalidInput)).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"input":     input,
			"expected":  expected,
		}).
		WithSeverity(tcerror.SeverityMedium)
}

// FormatError creates a standardized format error
func FormatError(module string, input interface{}, expectedFormat string) *tcerror.Error {
	return tcerror.New(fmt.Sprintf("invalid format in %s", module)).
		WithCode(tcerror.Code(getFormatErrorCode(module))).
		WithDetails(map[string]interface{}{
			"module":          module,
			"input":           input,
			"expected_format": expectedFormat,
		}).
		WithSeverity(tcerror.SeverityMedium)
}

// OperationError creates a standardized operation failure error
func OperationError(module, operation string, cause error, context map[string]interface{}) *tcerror.Error {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["module"] = module
	context["operation"] = operation

	return tcerror.Wrap(cause, fmt.Sprintf("%s.%s operation failed", module, operation)).
		WithCode(tcerror.Code(getOperationErrorCode(module))).
		WithDetails(context).
		WithSeverity(tcerror.SeverityHigh)
}

// getModuleErrorCode returns the appropriate error code for a module operation
func getModuleErrorCode(module, operation string) string {
	switch module {
	case ModuleStrx:
		return getStrxErrorCode(operation)
	case ModuleFmtx:
		return getFmtxErrorCode(operation)
	case ModuleScratch:
		return getScratchErrorCode(operation)
	case ModuleUtf8x:
		return getUtf8xErrorCode(operation)
	case ModuleConfig:
		return getConfigErrorCode(operation)
	default:
		return CodeOperationFailed
	}
}

// Module-specific error code getters
func getStrxErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "index") || strings.Contains(operation, "range"):
		return CodeStrxIndexOutOfRange
	case strings.Contains(operation, "pattern") || strings.Contains(operation, "find") || strings.Contains(operation, "search"):
		return CodeStrxInvalidPattern
	case strings.Contains(operation, "length") || strings.Contains(operation, "grow"):
		return CodeStrxLengthExceeded
	case strings.Contains(operation, "convert") || strings.Contains(operation, "parse"):
		return CodeStrxConversionFailed
	default:
		return CodeInvalidInput
	}
}

func getFmtxErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "trunc") || strings.Contains(operation, "bounded"):
		return CodeFmtxTruncated
	default:
		return CodeFmtxFormatFailed
	}
}

func getScratchErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "slot") || strings.Contains(operation, "acquire"):
		return CodeScratchSlotOverflow
	default:
		return CodeScratchTruncated
	}
}

func getUtf8xErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "overlong"):
		return CodeUtf8xOverlongSequence
	case strings.Contains(operation, "encode"):
		return CodeUtf8xEncodeOverflow
	default:
		return CodeUtf8xInvalidSequence
	}
}

func getConfigErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "read"):
		return CodeConfigReadFailed
	case strings.Contains(operation, "key") || strings.Contains(operation, "get"):
		return CodeConfigMissingKey
	default:
		return CodeConfigParseFailed
	}
}

func getFormatErrorCode(module string) string {
	switch module {
	case ModuleFmtx:
		return CodeFmtxFormatFailed
	case ModuleUtf8x:
		return CodeUtf8xInvalidSequence
	case ModuleConfig:
		return CodeConfigParseFailed
	default:
		return CodeInvalidFormat
	}
}

func getOperationErrorCode(module string) string {
	switch module {
	case ModuleScratch:
		return CodeScratchTruncated
	case ModuleConfig:
		return CodeConfigParseFailed
	default:
		return CodeOperationFailed
	}
}

// getSeverityFromError determines appropriate severity based on error type
func getSeverityFromError(cause error) tcerror.Severity {
	if cause == nil {
		return tcerror.SeverityLow
	}

	errStr := cause.Error()
	switch {
	case strings.Contains(errStr, "permission") || strings.Contains(errStr, "access"):
		return tcerror.SeverityHigh
	case strings.Contains(errStr, "not found") || strings.Contains(errStr, "missing"):
		return tcerror.SeverityMedium
	case strings.Contains(errStr, "invalid") || strings.Contains(errStr, "format"):
		return tcerror.SeverityLow
	case strings.Contains(errStr, "overflow") || strings.Contains(errStr, "truncated"):
		return tcerror.SeverityHigh
	default:
		return tcerror.SeverityMedium
	}
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	if tcErr, ok := err.(*tcerror.Error); ok {
		if details := tcErr.Details(); details != nil {
			if mod, exists := details["module"]; exists {
				return mod == module
			}
		}
	}
	return false
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	if tcErr, ok := err.(*tcerror.Error); ok {
		if details := tcErr.Details(); details != nil {
			if mod, exists := details["module"]; exists {
				if modStr, ok := mod.(string); ok {
					return modStr
				}
			}
		}
	}
	return ""
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	if tcErr, ok := err.(*tcerror.Error); ok {
		if details := tcErr.Details(); details != nil {
			if op, exists := details["operation"]; exists {
				if opStr, ok := op.(string); ok {
					return opStr
				}
			}
		}
	}
	return ""
}

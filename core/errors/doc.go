// Package errors provides THE STANDARD error handling interface for all
// textcore packages. This is the primary error handling API the packages use.
//
// Package: errors
// Title: Standard Error Handling API for textcore
// Description: This package provides common error patterns, standardized
//              error codes, and utilities for creating consistent errors
//              across all textcore packages. It integrates with the core
//              error package to provide module-specific error handling
//              while keeping codes and details uniform for analysis.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-24
// Modified: 2026-07-24
//
// Change History:
// - 2026-07-24 v0.1.0: Initial implementation for cross-package error standardization
//
// Package Overview:
//
// The errors package is the shared vocabulary for failures across the
// library, providing:
//
// # Standardized Error Codes
//
// Module-specific error codes for consistent error categorization:
//   - Common codes: INVALID_INPUT, INVALID_FORMAT, OUT_OF_RANGE, etc.
//   - strx codes: STRX_INDEX_OUT_OF_RANGE, STRX_INVALID_PATTERN, etc.
//   - fmtx codes: FMTX_FORMAT_FAILED, FMTX_TRUNCATED
//   - scratch codes: SCRATCH_TRUNCATED, SCRATCH_SLOT_OVERFLOW
//   - utf8x codes: UTF8X_INVALID_SEQUENCE, UTF8X_ENCODE_OVERFLOW, etc.
//   - config codes: CONFIG_PARSE_FAILED, CONFIG_MISSING_KEY, etc.
//
// # Error Creation Utilities
//
// Standardized functions for creating module-specific errors:
//   - StandardError: Basic module error with automatic code assignment
//   - ModuleError: Wraps errors with module context and details
//   - ValidationError: Specialized for validation failures
//   - InputError: For invalid input parameters
//   - FormatError: For format-related errors
//   - OperationError: For operation failures
//
// # Error Analysis Functions
//
// Utilities for analyzing and working with standardized errors:
//   - IsModuleError: Check if error belongs to a specific module
//   - GetErrorModule: Extract module name from error
//   - GetErrorOperation: Extract operation name from error
//
// # Usage Examples
//
// Creating standardized module errors:
//
//	// Basic module error
//	err := errors.StandardError("strx", "find_pattern", "pattern cannot match")
//
//	// Error with wrapped cause
//	err = errors.ModuleError("config", "parse", parseErr, map[string]interface{}{
//		"path": "/etc/textcore.toml",
//	})
//
//	// Validation error
//	err = errors.ValidationError("strx", "index", 42, "must address a content byte")
//
//	// Convenience constructors for the hot cases
//	err = errors.StrxIndexOutOfRange("substr", 42, 12)
//	err = errors.ConfigMissingKey("log.level")
//
// Error analysis and handling:
//
//	if err != nil {
//		if errors.IsModuleError(err, "config") {
//			log.LogError("configuration failed", err)
//		}
//
//		module := errors.GetErrorModule(err)
//		operation := errors.GetErrorOperation(err)
//		log.Info("error context", log.String("module", module), log.String("operation", operation))
//	}
//
// # Integration with Core Error Package
//
// This package builds on the core error package to provide:
//   - Automatic error code assignment based on module and operation
//   - Consistent severity levels based on error type
//   - Standardized error details structure
//   - Module-specific error categorization
//
// # Error Code Patterns
//
// Error codes follow consistent patterns:
//   - Format: {MODULE}_{CATEGORY} (e.g., STRX_INVALID_PATTERN)
//   - Common categories: INVALID_FORMAT, OPERATION_FAILED, NOT_FOUND
//   - Module-specific categories based on domain (e.g., UTF8X_ENCODE_OVERFLOW)
//
// # Module Integration
//
// All textcore packages use these error utilities:
//   - strx: view and buffer validation errors
//   - fmtx: bounded formatting errors
//   - scratch: slot pool truncation errors
//   - utf8x: sequence decoding and encoding errors
//   - config: configuration loading and lookup errors
package errors

// Package error provides structured error handling for the textcore packages.
//
// Package: error
// Title: textcore Error Handling Framework
// Description: This package implements a structured error system with
//              contextual information, error codes, and severities. It is
//              the foundation for consistent error handling across the text
//              packages, the configuration layer, and the CLI, and it feeds
//              the structured logger in core/log.
// Author: msto63
// Version: v0.1.1
// Created: 2026-07-23
// Modified: 2026-08-06
//
// Change History:
// - 2026-07-23 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-08-06 v0.1.1: Correlation IDs for tracing CLI invocations
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes with categories and CLI exit codes
// - Error severity levels driving log levels
// - Chain depth limiting with flattening to the root cause
// - Correlation IDs connecting errors to log entries
// - JSON marshalling for structured log output
//
// Usage:
//   import "github.com/msto63/textcore/core/error"
//
//   // Create a new error with context
//   err := error.New("config file unreadable").
//     WithCode(error.CodeConfigError).
//     WithDetail("path", "/etc/textcore.toml").
//     WithSeverity(error.SeverityHigh)
//
//   // Wrap an existing error with context
//   wrapped := error.Wrap(err, "startup failed").
//     WithOperation("load_config")
//
//   // Check error type and code
//   if error.HasCode(err, error.CodeConfigError) {
//     // Handle configuration errors specifically
//   }
package error

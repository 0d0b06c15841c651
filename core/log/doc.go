// Package log provides structured logging capabilities for textcore.
//
// Package: log
// Title: textcore Structured Logging
// Description: This package implements a structured logging system with
//              contextual information, multiple output formats, log levels,
//              and tight integration with the textcore error handling
//              system. All writes are synchronous; the library never spawns
//              goroutines on its own.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-26
// Modified: 2026-07-26
//
// Change History:
// - 2026-07-26 v0.1.0: Initial implementation with structured logging
//
// Features:
// - Structured logging with JSON, text, and colored console formats
// - Multiple log levels with filtering capabilities
// - Contextual logging with correlation IDs and custom fields
// - Integration with textcore errors: severity picks the log level and
//   error details are carried into the entry
// - Performance timers with checkpoints for verbose CLI runs
//
// Usage:
//
//	logger := log.New().
//	  WithLevel(log.LevelInfo).
//	  WithFormat(log.FormatJSON).
//	  WithField("tool", "textcore").
//	  WithCorrelationID("run-123")
//
//	logger.Info("conversion finished", log.Field("bytes", 2048))
//	logger.LogError(err)
//
//	timer := logger.StartTimer("fold_input")
//	// ... perform the operation
//	timer.Stop()
package log

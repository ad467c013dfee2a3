// Package log provides structured logging for the tantalum packages.
//
// Package: log
// Title: tantalum Structured Logging
// Description: Leveled structured logging with fields, four output formats
//              and timers for measured operations. Integrates with the
//              structured errors of foundation/core/error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-17 v0.2.0: Trimmed to library use: no audit/fatal levels, no async writer
//
// The package default logger writes warnings and errors to stderr in text
// format, so a library caller sees nothing unless something goes wrong.
// Registry construction and parser cache misses log at debug level.
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatLogfmt).
//		WithName("registry")
//
//	logger.Debug("unit registered", log.Fields{
//		"symbol": "mi",
//		"scale":  "201168/125",
//	})
//
//	timer := logger.StartTimer("registry.build")
//	// ... register units
//	timer.Stop()
package log

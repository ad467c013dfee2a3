// File: doc.go
// Title: Package Documentation for error
// Description: Package documentation for the structured error type shared by
//              every tantalum package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: Narrowed to the unit arithmetic error codes

// Package error provides the structured error type used across tantalum.
//
// Every failure surfaced by the arithmetic, registry, parser and config
// packages is an *Error carrying a Code, a Severity, free-form details and
// the operation that failed. Errors wrap their cause and work with the
// standard errors.Is / errors.As helpers.
//
// Usage:
//
//	err := error.New("cannot convert m to s").
//		WithCode(error.CodeIncompatibleDimensions).
//		WithOperation("quantity.ConvertTo").
//		WithDetail("from", "m")
//
//	if error.HasCode(err, error.CodeIncompatibleDimensions) {
//		// caller can recover
//	}
//
// Most callers use the constructors in foundation/core/errors instead of
// building errors by hand.
package error

// Package errors provides the standard error constructors for all tantalum
// packages.
//
// Package: errors
// Title: Standard Error Handling API for tantalum
// Description: Module identifiers and constructors for the failure kinds a
//              caller can act on: an unregistered unit name, an operation across
//              non-matching dimensions, a division by a zero magnitude, and
//              malformed input.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-17 v0.2.0: Unit arithmetic constructors and predicates
//
// Every constructor returns a *error.Error from foundation/core/error with the
// module and operation recorded in its details, so a failure can be traced
// back to the call that produced it:
//
//	q, err := a.Add(b)
//	if errors.IsIncompatibleDimensions(err) {
//		// report to the user, nothing was computed
//	}
//
// None of these conditions is transient. Nothing in tantalum retries.
package errors

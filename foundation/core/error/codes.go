// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of unit
//              lookup, dimensional checks, exact arithmetic and configuration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-17 v0.2.0: Replaced platform codes with unit arithmetic codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Parsing and validation
	CodeInvalidFormat  Code = "INVALID_FORMAT"
	CodeDuplicateEntry Code = "DUPLICATE_ENTRY"

	// Unit arithmetic
	CodeUnknownUnit            Code = "UNKNOWN_UNIT"
	CodeIncompatibleDimensions Code = "INCOMPATIBLE_DIMENSIONS"
	CodeDivisionByZero         Code = "DIVISION_BY_ZERO"

	// Configuration
	CodeConfigError Code = "CONFIG_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

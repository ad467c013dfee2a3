// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severities
//              onto log levels when an error is logged.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-17 v0.2.0: Severity mapping for unit arithmetic codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks caller mistakes such as a misspelled unit name
	SeverityLow Severity = iota

	// SeverityMedium marks failed operations the caller can retry differently
	SeverityMedium

	// SeverityHigh marks broken configuration or internal inconsistencies
	SeverityHigh

	// SeverityCritical is reserved for failures that leave a registry unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeDuplicateEntry:
		return SeverityHigh
	case CodeIncompatibleDimensions, CodeDivisionByZero:
		return SeverityMedium
	case CodeUnknownUnit, CodeInvalidInput, CodeInvalidFormat, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}

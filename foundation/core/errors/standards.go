// File: standards.go
// Title: Error Standards for tantalum
// Description: Provides the module identifiers, the fluent error builder and
//              the standard constructors used by every package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-17 v0.2.0: Replaced utility modules with the unit arithmetic modules

package errors

import (
	stderrors "errors"
	"fmt"

	mdwerror "github.com/msto63/tantalum/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleMathx     = "mathx"
	ModuleDimension = "dimension"
	ModuleUnit      = "unit"
	ModuleRegistry  = "registry"
	ModuleParser    = "parser"
	ModuleQuantity  = "quantity"
	ModuleConfig    = "config"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	code      mdwerror.Code
	severity  *mdwerror.Severity
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
		code:    mdwerror.CodeUnknown,
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

// Cause sets the wrapped cause
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a single detail
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = &severity
	return eb
}

// Build creates the error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	message := eb.message
	if message == "" {
		message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, message)
	} else {
		err = mdwerror.New(message)
	}

	err = err.WithCode(eb.code).
		WithDetail("module", eb.module).
		WithDetails(eb.details)
	if eb.severity != nil {
		err = err.WithSeverity(*eb.severity)
	}
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	return err
}

// UnknownUnit reports a unit or prefix name that is not registered
func UnknownUnit(module, name string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation("lookup").
		Messagef("unknown unit %q", name).
		Code(mdwerror.CodeUnknownUnit).
		Detail("name", name).
		Build()
}

// IncompatibleDimensions reports an add, subtract, compare or convert across
// different dimension vectors
func IncompatibleDimensions(module, operation string, from, to fmt.Stringer) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("incompatible dimensions: %s and %s", from, to).
		Code(mdwerror.CodeIncompatibleDimensions).
		Detail("from", from.String()).
		Detail("to", to.String()).
		Build()
}

// DivisionByZero reports a division by a zero magnitude
func DivisionByZero(module, operation string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message("division by zero").
		Code(mdwerror.CodeDivisionByZero).
		Build()
}

// InvalidInput reports an argument outside the accepted domain
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat reports text that could not be parsed
func InvalidFormat(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation("parse").
		Messagef("invalid format in %s: %v", module, input).
		Code(mdwerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// DuplicateEntry reports a second definition for an already registered name
func DuplicateEntry(module, operation, name string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%q is already registered", name).
		Code(mdwerror.CodeDuplicateEntry).
		Detail("name", name).
		Build()
}

// IsUnknownUnit reports whether err is, or wraps, an unknown unit failure
func IsUnknownUnit(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeUnknownUnit)
}

// IsIncompatibleDimensions reports whether err is, or wraps, a dimension mismatch
func IsIncompatibleDimensions(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeIncompatibleDimensions)
}

// IsDivisionByZero reports whether err is, or wraps, a division by zero
func IsDivisionByZero(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeDivisionByZero)
}

// IsInvalidFormat reports whether err is, or wraps, a parse failure
func IsInvalidFormat(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidFormat)
}

// ExtractModule returns the module recorded on a standardized error
func ExtractModule(err error) string {
	var e *mdwerror.Error
	if !stderrors.As(err, &e) {
		return ""
	}
	if v, ok := e.Detail("module"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

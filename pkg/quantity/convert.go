// ============================================================================
// tantalum - Exact Unit-Aware Arithmetic
// ============================================================================
//
// Package:     quantity
// Description: Exact unit conversion and comparison
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package quantity

import (
	"fmt"

	"github.com/msto63/tantalum/foundation/core/errors"
	"github.com/msto63/tantalum/pkg/parser"
	"github.com/msto63/tantalum/pkg/registry"
	"github.com/msto63/tantalum/pkg/unit"
)

// ConvertTo expresses q in target. The magnitude becomes
// (m + offset) · scale / target.scale - target.offset, computed exactly, so
// converting back yields q again.
func (q Quantity) ConvertTo(target unit.Expression) (Quantity, error) {
	return q.convert(target, "convert")
}

// ConvertToString parses target with the default parser and converts into it
func (q Quantity) ConvertToString(target string) (Quantity, error) {
	u, err := parser.Parse(target)
	if err != nil {
		return Quantity{}, err
	}
	return q.ConvertTo(u)
}

// ToBase converts q into the coherent SI base units of its dimension, for
// example km/h into m/s and °C into K
func (q Quantity) ToBase() Quantity {
	// the base expression always has q's dimension
	converted, _ := q.convert(registry.BaseExpression(q.Dim()), "convert")
	return converted
}

// ApplyPrefixes moves every prefix multiplier into the magnitude: 5 km
// becomes 5000 m and 2 KiB becomes 2048 B
func (q Quantity) ApplyPrefixes() Quantity {
	u, multiplier := q.unit.WithoutPrefixes()
	return New(q.magnitude.Multiply(multiplier), u)
}

func (q Quantity) convert(target unit.Expression, op string) (Quantity, error) {
	if !q.unit.IsCompatible(target) {
		return Quantity{}, errors.IncompatibleDimensions(errors.ModuleQuantity, op, describe(q.unit), describe(target))
	}

	si := q.magnitude.Add(q.unit.Offset()).Multiply(q.unit.Scale())
	m, err := si.Divide(target.Scale())
	if err != nil {
		return Quantity{}, err
	}
	return New(m.Subtract(target.Offset()), target), nil
}

// Equal reports whether both quantities have the same unit factors and the
// same magnitude. 1 km and 1000 m are not Equal; see Equivalent.
func (q Quantity) Equal(o Quantity) bool {
	return q.unit.Equal(o.unit) && q.magnitude.Equal(o.magnitude)
}

// Equivalent reports whether both quantities denote the same physical
// amount: 1 km is equivalent to 1000 m, 0 °C to 273.15 K
func (q Quantity) Equivalent(o Quantity) bool {
	converted, err := o.convert(q.unit, "compare")
	if err != nil {
		return false
	}
	return q.magnitude.Equal(converted.magnitude)
}

// Compare returns -1, 0 or +1 as q is less than, equal to or greater than o,
// after converting o into q's unit
func (q Quantity) Compare(o Quantity) (int, error) {
	converted, err := o.convert(q.unit, "compare")
	if err != nil {
		return 0, err
	}
	return q.magnitude.Compare(converted.magnitude), nil
}

// ConvertTo expresses q in target
func ConvertTo(q Quantity, target unit.Expression) (Quantity, error) {
	return q.ConvertTo(target)
}

// unitDescription renders a unit with its dimension for error messages
type unitDescription struct {
	u unit.Expression
}

func describe(u unit.Expression) fmt.Stringer {
	return unitDescription{u: u}
}

func (d unitDescription) String() string {
	symbol := d.u.Symbol()
	if symbol == "" {
		symbol = "1"
	}
	return fmt.Sprintf("%s [%s]", symbol, d.u.Dim())
}

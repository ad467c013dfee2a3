// ============================================================================
// tantalum - Exact Unit-Aware Arithmetic
// ============================================================================
//
// Package:     quantity
// Description: Exact magnitudes paired with unit expressions
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package quantity implements arithmetic on physical quantities. A Quantity
// is an exact rational magnitude paired with a unit expression. Magnitudes
// are stored as given and only rescaled when an operation needs it, so no
// precision is lost to repeated conversion.
//
//	speed := quantity.FromInt(60, registry.Mile.Divide(registry.Hour))
//	more, _ := speed.Add(quantity.FromInt(45, registry.Mile.Divide(registry.Hour)))
//	kmh, _ := more.ConvertTo(registry.Kilometer.Divide(registry.Hour))
//	kmh.Format(5) // "168.98112 km/h"
//
// Addition, subtraction, comparison and conversion require equal dimension
// vectors and fail with INCOMPATIBLE_DIMENSIONS otherwise. Multiplication
// and division compose units freely. Dividing by a zero magnitude fails with
// DIVISION_BY_ZERO. Every value is immutable and safe to share.
package quantity

import (
	mdwerror "github.com/msto63/tantalum/foundation/core/error"
	"github.com/msto63/tantalum/foundation/core/errors"
	"github.com/msto63/tantalum/foundation/utils/mathx"
	"github.com/msto63/tantalum/pkg/dimension"
	"github.com/msto63/tantalum/pkg/unit"
)

// Quantity is a magnitude in a unit. The zero value is a unitless 0.
type Quantity struct {
	magnitude mathx.Rational
	unit      unit.Expression
}

// New pairs magnitude with u without normalizing either
func New(magnitude mathx.Rational, u unit.Expression) Quantity {
	return Quantity{magnitude: magnitude, unit: u}
}

// FromInt creates a quantity with an integer magnitude
func FromInt(i int64, u unit.Expression) Quantity {
	return New(mathx.NewRationalFromInt(i), u)
}

// FromString creates a quantity from a rational literal such as "1.5",
// "1e-3" or "201168/125"
func FromString(s string, u unit.Expression) (Quantity, error) {
	m, err := mathx.NewRational(s)
	if err != nil {
		return Quantity{}, err
	}
	return New(m, u), nil
}

// FromFloat creates a quantity from the exact binary value of f. Use
// FromString for decimal input.
func FromFloat(f float64, u unit.Expression) (Quantity, error) {
	m, err := mathx.NewRationalFromFloat(f)
	if err != nil {
		return Quantity{}, err
	}
	return New(m, u), nil
}

// Unitless creates a plain number
func Unitless(magnitude mathx.Rational) Quantity {
	return New(magnitude, unit.Expression{})
}

// FromUnit creates a quantity of magnitude 1 in u
func FromUnit(u unit.Expression) Quantity {
	return New(mathx.One(), u)
}

// Magnitude returns the magnitude in the quantity's own unit
func (q Quantity) Magnitude() mathx.Rational {
	return q.magnitude
}

// Unit returns the unit expression
func (q Quantity) Unit() unit.Expression {
	return q.unit
}

// Dim returns the dimension vector of the unit
func (q Quantity) Dim() dimension.Vector {
	return q.unit.Dim()
}

// Kind names the physical kind, for example "velocity", or "" if unnamed
func (q Quantity) Kind() string {
	return q.unit.Dim().Kind()
}

// IsZero reports whether the magnitude is zero
func (q Quantity) IsZero() bool {
	return q.magnitude.IsZero()
}

// IsDimensionless reports whether the unit has no dimension
func (q Quantity) IsDimensionless() bool {
	return q.unit.IsDimensionless()
}

// IsUnitless reports whether the quantity is a plain number
func (q Quantity) IsUnitless() bool {
	return q.unit.IsUnitless()
}

// Float64 returns the nearest float64 to the magnitude
func (q Quantity) Float64() float64 {
	return q.magnitude.Float64()
}

// Add returns q + o in q's unit. o is converted exactly into q's unit first.
// The conversion of an affine unit includes its offset, so 10 °C + 10 K is
// -253.15 °C while 10 K + 10 °C is 293.15 K; only scale-only units commute
// under conversion.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	converted, err := o.convert(q.unit, "add")
	if err != nil {
		return Quantity{}, err
	}
	return New(q.magnitude.Add(converted.magnitude), q.unit), nil
}

// Subtract returns q - o in q's unit
func (q Quantity) Subtract(o Quantity) (Quantity, error) {
	converted, err := o.convert(q.unit, "subtract")
	if err != nil {
		return Quantity{}, err
	}
	return New(q.magnitude.Subtract(converted.magnitude), q.unit), nil
}

// Multiply returns q·o. Units compose, so m times s is m·s.
func (q Quantity) Multiply(o Quantity) Quantity {
	return New(q.magnitude.Multiply(o.magnitude), q.unit.Multiply(o.unit))
}

// Divide returns q/o, failing if o is zero
func (q Quantity) Divide(o Quantity) (Quantity, error) {
	if o.magnitude.IsZero() {
		return Quantity{}, errors.DivisionByZero(errors.ModuleQuantity, "divide")
	}
	m, err := q.magnitude.Divide(o.magnitude)
	if err != nil {
		return Quantity{}, err
	}
	return New(m, q.unit.Divide(o.unit)), nil
}

// Scale multiplies the magnitude by r and keeps the unit
func (q Quantity) Scale(r mathx.Rational) Quantity {
	return New(q.magnitude.Multiply(r), q.unit)
}

// DivideBy divides the magnitude by r and keeps the unit
func (q Quantity) DivideBy(r mathx.Rational) (Quantity, error) {
	if r.IsZero() {
		return Quantity{}, errors.DivisionByZero(errors.ModuleQuantity, "divide")
	}
	m, err := q.magnitude.Divide(r)
	if err != nil {
		return Quantity{}, err
	}
	return New(m, q.unit), nil
}

// Neg returns -q
func (q Quantity) Neg() Quantity {
	return New(q.magnitude.Neg(), q.unit)
}

// Abs returns |q|
func (q Quantity) Abs() Quantity {
	return New(q.magnitude.Abs(), q.unit)
}

// Pow raises magnitude and unit to the n-th power. A zero magnitude cannot
// be raised to a negative power.
func (q Quantity) Pow(n int) (Quantity, error) {
	if n < 0 && q.magnitude.IsZero() {
		return Quantity{}, errors.DivisionByZero(errors.ModuleQuantity, "pow")
	}
	m, err := q.magnitude.Pow(n)
	if err != nil {
		return Quantity{}, err
	}
	return New(m, q.unit.Pow(n)), nil
}

// Inverse returns 1/q
func (q Quantity) Inverse() (Quantity, error) {
	if q.magnitude.IsZero() {
		return Quantity{}, errors.DivisionByZero(errors.ModuleQuantity, "inverse")
	}
	return q.Pow(-1)
}

// Add returns a + b in a's unit
func Add(a, b Quantity) (Quantity, error) { return a.Add(b) }

// Subtract returns a - b in a's unit
func Subtract(a, b Quantity) (Quantity, error) { return a.Subtract(b) }

// Multiply returns a·b
func Multiply(a, b Quantity) Quantity { return a.Multiply(b) }

// Divide returns a/b
func Divide(a, b Quantity) (Quantity, error) { return a.Divide(b) }

// Sum adds all quantities in the unit of the first. It fails on an empty
// list or on the first incompatible element.
func Sum(qs ...Quantity) (Quantity, error) {
	if len(qs) == 0 {
		return Quantity{}, errors.InvalidInput(errors.ModuleQuantity, "sum", 0, "at least one quantity")
	}
	total := qs[0]
	for i, q := range qs[1:] {
		next, err := total.Add(q)
		if err != nil {
			return Quantity{}, errors.NewErrorBuilder(errors.ModuleQuantity).
				Operation("sum").
				Messagef("cannot add element %d", i+1).
				Cause(err).
				Code(mdwerror.GetCode(err)).
				Detail("index", i+1).
				Build()
		}
		total = next
	}
	return total, nil
}

// ============================================================================
// tantalum - Exact Unit-Aware Arithmetic
// ============================================================================
//
// Package:     unit
// Description: Unit and prefix definitions, factors and unit expressions
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package unit implements the algebra of unit expressions. An expression is an
// ordered list of factors, each a prefixed or unprefixed unit raised to an
// integer power. The dimension vector and the exact scale relative to the
// coherent SI unit are derived from the factors whenever an expression is
// constructed and never change afterwards.
//
// Expressions compose freely: the product or quotient of any two expressions
// is valid, named or not.
//
//	kmh := unit.Divide(unit.New(unit.Factor{Prefix: kilo, Unit: meter, Power: 1}), unit.FromDef(hour))
//	kmh.Symbol() // "km/h"
//	kmh.Name()   // "kilometer per hour"
package unit

import (
	"github.com/msto63/tantalum/foundation/core/errors"
	"github.com/msto63/tantalum/foundation/utils/mathx"
	"github.com/msto63/tantalum/pkg/dimension"
)

// Def defines a named unit. Scale is relative to the coherent SI unit of Dim
// (kilogram for mass). Offset is additive: si = (x + Offset) * Scale.
type Def struct {
	Name    string
	Symbol  string
	Aliases []string
	Dim     dimension.Vector
	Scale   mathx.Rational
	Offset  mathx.Rational
}

// Validate checks that the definition can take part in conversions
func (d *Def) Validate() error {
	if d == nil {
		return errors.InvalidInput(errors.ModuleUnit, "validate", nil, "unit definition")
	}
	if d.Name == "" || d.Symbol == "" {
		return errors.InvalidInput(errors.ModuleUnit, "validate", d.Name, "non-empty name and symbol")
	}
	if !d.Scale.IsPositive() {
		return errors.InvalidInput(errors.ModuleUnit, "validate", d.Scale.String(), "positive scale")
	}
	return nil
}

// HasOffset reports whether the unit is an affine scale such as Celsius
func (d *Def) HasOffset() bool {
	return !d.Offset.IsZero()
}

func (d *Def) String() string {
	return d.Symbol
}

// Prefix is a dimensionless multiplier such as kilo or kibi
type Prefix struct {
	Name       string
	Symbol     string
	Multiplier mathx.Rational
	Binary     bool
}

// Validate checks that the prefix has a name, a symbol and a positive multiplier
func (p *Prefix) Validate() error {
	if p == nil {
		return errors.InvalidInput(errors.ModuleUnit, "validate", nil, "prefix definition")
	}
	if p.Name == "" || p.Symbol == "" {
		return errors.InvalidInput(errors.ModuleUnit, "validate", p.Name, "non-empty name and symbol")
	}
	if !p.Multiplier.IsPositive() {
		return errors.InvalidInput(errors.ModuleUnit, "validate", p.Multiplier.String(), "positive multiplier")
	}
	return nil
}

func (p *Prefix) String() string {
	return p.Symbol
}

// Factor is one term of an expression. A factor with a prefix and no unit is
// a bare dimensionless multiplier.
type Factor struct {
	Prefix *Prefix
	Unit   *Def
	Power  int
}

// Dim returns the dimension contributed by the factor
func (f Factor) Dim() dimension.Vector {
	if f.Unit == nil {
		return dimension.Dimensionless
	}
	return f.Unit.Dim.Pow(f.Power)
}

// Scale returns (multiplier * unit scale) ^ power
func (f Factor) Scale() mathx.Rational {
	base := mathx.One()
	if f.Prefix != nil {
		base = base.Multiply(f.Prefix.Multiplier)
	}
	if f.Unit != nil {
		base = base.Multiply(f.Unit.Scale)
	}
	// base is positive for validated definitions, so Pow cannot fail
	s, err := base.Pow(f.Power)
	if err != nil {
		return mathx.Zero()
	}
	return s
}

// Symbol returns the symbol of the factor without its power, e.g. "km". A
// bare prefix renders as its name ("milli"), since prefix symbols like m, h
// and T are also unit symbols.
func (f Factor) Symbol() string {
	if f.Unit == nil && f.Prefix != nil {
		return f.Prefix.Name
	}
	s := ""
	if f.Prefix != nil {
		s = f.Prefix.Symbol
	}
	if f.Unit != nil {
		s += f.Unit.Symbol
	}
	return s
}

// Name returns the name of the factor without its power, e.g. "kilometer"
func (f Factor) Name() string {
	s := ""
	if f.Prefix != nil {
		s = f.Prefix.Name
	}
	if f.Unit != nil {
		s += f.Unit.Name
	}
	return s
}

func (f Factor) sameBase(o Factor) bool {
	return samePrefix(f.Prefix, o.Prefix) && sameDef(f.Unit, o.Unit)
}

func sameDef(a, b *Def) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Name == b.Name && a.Symbol == b.Symbol
}

func samePrefix(a, b *Prefix) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Name == b.Name && a.Symbol == b.Symbol
}

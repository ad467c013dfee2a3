// ============================================================================
// tantalum - Exact Unit-Aware Arithmetic
// ============================================================================
//
// Package:     unit
// Description: Immutable unit expressions and their algebra
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package unit

import (
	"github.com/msto63/tantalum/foundation/utils/mathx"
	"github.com/msto63/tantalum/pkg/dimension"
)

// Expression is an ordered, immutable product of factors. The zero value is
// the unitless expression.
type Expression struct {
	factors []Factor
	dim     dimension.Vector
	scale   mathx.Rational
	offset  mathx.Rational
}

// New builds an expression from factors. Identical factors merge by summing
// their powers, zero powers cancel, and a bare prefix directly followed by an
// unprefixed unit of the same power becomes one prefixed factor.
func New(factors ...Factor) Expression {
	normalized := normalize(factors)

	e := Expression{
		factors: normalized,
		dim:     dimension.Dimensionless,
		scale:   mathx.One(),
	}
	for _, f := range normalized {
		e.dim = e.dim.Multiply(f.Dim())
		e.scale = e.scale.Multiply(f.Scale())
	}
	if len(normalized) == 1 {
		f := normalized[0]
		if f.Prefix == nil && f.Unit != nil && f.Power == 1 && f.Unit.HasOffset() {
			e.offset = f.Unit.Offset
		}
	}
	return e
}

// FromDef returns the expression consisting of a single unit
func FromDef(d *Def) Expression {
	return New(Factor{Unit: d, Power: 1})
}

// FromPrefix returns the dimensionless expression of a bare prefix
func FromPrefix(p *Prefix) Expression {
	return New(Factor{Prefix: p, Power: 1})
}

// One returns the unitless expression with scale 1
func One() Expression {
	return New()
}

func normalize(in []Factor) []Factor {
	// prefix followed by a plain unit of the same power
	joined := make([]Factor, 0, len(in))
	for i := 0; i < len(in); i++ {
		f := in[i]
		if f.Power == 0 || (f.Prefix == nil && f.Unit == nil) {
			continue
		}
		if f.Unit == nil && i+1 < len(in) {
			next := in[i+1]
			if next.Prefix == nil && next.Unit != nil && next.Power == f.Power {
				joined = append(joined, Factor{Prefix: f.Prefix, Unit: next.Unit, Power: f.Power})
				i++
				continue
			}
		}
		joined = append(joined, f)
	}

	merged := make([]Factor, 0, len(joined))
	for _, f := range joined {
		found := false
		for i := range merged {
			if merged[i].sameBase(f) {
				merged[i].Power += f.Power
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, f)
		}
	}

	out := merged[:0]
	for _, f := range merged {
		if f.Power != 0 {
			out = append(out, f)
		}
	}
	return out
}

// Multiply returns the product a·b
func Multiply(a, b Expression) Expression {
	factors := make([]Factor, 0, len(a.factors)+len(b.factors))
	factors = append(factors, a.factors...)
	factors = append(factors, b.factors...)
	return New(factors...)
}

// Divide returns the quotient a/b
func Divide(a, b Expression) Expression {
	return Multiply(a, b.Inverse())
}

// Multiply returns e·o
func (e Expression) Multiply(o Expression) Expression { return Multiply(e, o) }

// Divide returns e/o
func (e Expression) Divide(o Expression) Expression { return Divide(e, o) }

// Pow raises every factor to the n-th power. Pow(0) is unitless.
func (e Expression) Pow(n int) Expression {
	factors := make([]Factor, len(e.factors))
	for i, f := range e.factors {
		f.Power *= n
		factors[i] = f
	}
	return New(factors...)
}

// Inverse returns 1/e
func (e Expression) Inverse() Expression {
	return e.Pow(-1)
}

// Dim returns the dimension vector
func (e Expression) Dim() dimension.Vector {
	return e.dim
}

// Scale returns the exact factor to the coherent SI unit of Dim
func (e Expression) Scale() mathx.Rational {
	if len(e.factors) == 0 {
		return mathx.One()
	}
	return e.scale
}

// Offset returns the additive offset. It is non-zero only for a single
// unprefixed affine unit such as °C at power 1.
func (e Expression) Offset() mathx.Rational {
	return e.offset
}

// IsDimensionless reports whether the dimension vector is zero. A bare prefix
// or a ratio like m/km is dimensionless without being unitless.
func (e Expression) IsDimensionless() bool {
	return e.dim.IsDimensionless()
}

// IsUnitless reports whether the expression has no factors at all
func (e Expression) IsUnitless() bool {
	return len(e.factors) == 0
}

// IsCompatible reports whether both expressions have the same dimension
func (e Expression) IsCompatible(o Expression) bool {
	return e.dim.IsCompatible(o.dim)
}

// Equal reports whether both expressions consist of the same factors with
// the same powers, in any order
func (e Expression) Equal(o Expression) bool {
	if len(e.factors) != len(o.factors) {
		return false
	}
	for _, f := range e.factors {
		match := false
		for _, g := range o.factors {
			if f.sameBase(g) && f.Power == g.Power {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}
	return true
}

// Factors returns a copy of the factor list
func (e Expression) Factors() []Factor {
	out := make([]Factor, len(e.factors))
	copy(out, e.factors)
	return out
}

// WithoutPrefixes strips every prefix and returns the remaining expression
// together with the product of the removed multipliers
func (e Expression) WithoutPrefixes() (Expression, mathx.Rational) {
	multiplier := mathx.One()
	factors := make([]Factor, 0, len(e.factors))
	for _, f := range e.factors {
		if f.Prefix != nil {
			m, err := f.Prefix.Multiplier.Pow(f.Power)
			if err == nil {
				multiplier = multiplier.Multiply(m)
			}
		}
		if f.Unit != nil {
			factors = append(factors, Factor{Unit: f.Unit, Power: f.Power})
		}
	}
	return New(factors...), multiplier
}

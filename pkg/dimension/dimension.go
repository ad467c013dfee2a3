// ============================================================================
// tantalum - Exact Unit-Aware Arithmetic
// ============================================================================
//
// Package:     dimension
// Description: Dimension vectors over the SI base dimensions plus information
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package dimension represents physical dimensions as integer exponent
// vectors. Velocity is L·T^-1, energy M·L^2·T^-2. Two units can be added or
// converted into each other exactly when their vectors are equal.
package dimension

import (
	"fmt"
	"strings"

	"github.com/msto63/tantalum/foundation/core/errors"
)

// Base is one base dimension
type Base int

const (
	Length Base = iota
	Mass
	Time
	Current
	Temperature
	Amount
	Luminosity
	Information

	// NumBases is the length of every Vector
	NumBases = int(Information) + 1
)

var baseNames = [NumBases]string{
	"length", "mass", "time", "current", "temperature", "amount", "luminosity", "information",
}

var baseSymbols = [NumBases]string{
	"L", "M", "T", "I", "Θ", "N", "J", "B",
}

// String returns the lower-case name, e.g. "length"
func (b Base) String() string {
	if b < 0 || int(b) >= NumBases {
		return fmt.Sprintf("Base(%d)", int(b))
	}
	return baseNames[b]
}

// Symbol returns the conventional dimension symbol, e.g. "L"
func (b Base) Symbol() string {
	if b < 0 || int(b) >= NumBases {
		return "?"
	}
	return baseSymbols[b]
}

// ParseBase accepts a base name or symbol, case-insensitive for names.
// "luminous_intensity", "substance" and "temp" are accepted aliases.
func ParseBase(s string) (Base, error) {
	trimmed := strings.TrimSpace(s)
	for i, sym := range baseSymbols {
		if trimmed == sym {
			return Base(i), nil
		}
	}
	switch strings.ToLower(trimmed) {
	case "luminous_intensity", "luminous intensity":
		return Luminosity, nil
	case "substance", "amount_of_substance":
		return Amount, nil
	case "temp":
		return Temperature, nil
	case "info", "data":
		return Information, nil
	}
	for i, name := range baseNames {
		if strings.EqualFold(trimmed, name) {
			return Base(i), nil
		}
	}
	return 0, errors.InvalidInput(errors.ModuleDimension, "ParseBase", s, "base dimension name or symbol")
}

// Vector is an exponent per base dimension. It is a comparable value type:
// == is component-wise equality.
type Vector [NumBases]int

// Dimensionless is the zero vector
var Dimensionless = Vector{}

// New builds a vector from the given exponents; missing bases are 0
func New(exponents map[Base]int) Vector {
	var v Vector
	for b, e := range exponents {
		if b >= 0 && int(b) < NumBases {
			v[b] = e
		}
	}
	return v
}

// Of returns the vector with exponent 1 for b and 0 elsewhere
func Of(b Base) Vector {
	var v Vector
	v[b] = 1
	return v
}

// Multiply returns the component-wise sum of a and b
func Multiply(a, b Vector) Vector {
	var v Vector
	for i := range v {
		v[i] = a[i] + b[i]
	}
	return v
}

// Divide returns the component-wise difference a - b
func Divide(a, b Vector) Vector {
	var v Vector
	for i := range v {
		v[i] = a[i] - b[i]
	}
	return v
}

// IsCompatible reports whether all exponents of a and b are equal
func IsCompatible(a, b Vector) bool {
	return a == b
}

// IsDimensionless reports whether all exponents of v are zero
func IsDimensionless(v Vector) bool {
	return v == Dimensionless
}

// Multiply returns v·o
func (v Vector) Multiply(o Vector) Vector { return Multiply(v, o) }

// Divide returns v/o
func (v Vector) Divide(o Vector) Vector { return Divide(v, o) }

// IsCompatible reports whether v and o are equal
func (v Vector) IsCompatible(o Vector) bool { return IsCompatible(v, o) }

// IsDimensionless reports whether v is the zero vector
func (v Vector) IsDimensionless() bool { return IsDimensionless(v) }

// Pow multiplies every exponent by n
func (v Vector) Pow(n int) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i] * n
	}
	return out
}

// Inverse negates every exponent
func (v Vector) Inverse() Vector {
	return v.Pow(-1)
}

// Exponent returns the exponent of base b
func (v Vector) Exponent(b Base) int {
	if b < 0 || int(b) >= NumBases {
		return 0
	}
	return v[b]
}

// Exponents returns the non-zero exponents
func (v Vector) Exponents() map[Base]int {
	m := make(map[Base]int)
	for i, e := range v {
		if e != 0 {
			m[Base(i)] = e
		}
	}
	return m
}

// String renders the vector in base order: energy is "L^2·M·T^-2".
// The dimensionless vector renders as "1".
func (v Vector) String() string {
	if v.IsDimensionless() {
		return "1"
	}
	var parts []string
	for i, e := range v {
		switch {
		case e == 0:
			continue
		case e == 1:
			parts = append(parts, baseSymbols[i])
		default:
			parts = append(parts, fmt.Sprintf("%s^%d", baseSymbols[i], e))
		}
	}
	return strings.Join(parts, "·")
}

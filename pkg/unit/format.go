// ============================================================================
// tantalum - Exact Unit-Aware Arithmetic
// ============================================================================
//
// Package:     unit
// Description: Symbol and name rendering of unit expressions
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package unit

import (
	"strconv"
	"strings"
)

// Symbol renders the expression with unit symbols in factor order:
// "km/h", "m^2", "1/s", "kg·m/s^2", "J/(kg·K)". Bare prefixes render by
// name, as in "milli/s". The unitless expression renders as "".
func (e Expression) Symbol() string {
	num, den := e.split()
	if len(num) == 0 && len(den) == 0 {
		return ""
	}

	numerator := joinSymbols(num)
	if len(den) == 0 {
		return numerator
	}
	if numerator == "" {
		numerator = "1"
	}

	denominator := joinSymbols(den)
	if len(den) > 1 {
		denominator = "(" + denominator + ")"
	}
	return numerator + "/" + denominator
}

// String returns Symbol()
func (e Expression) String() string {
	return e.Symbol()
}

// Name renders the expression with unit names: "kilometer per hour",
// "square meter", "meter to the 4", "reciprocal second".
func (e Expression) Name() string {
	num, den := e.split()
	numerator := joinNames(num)
	denominator := joinNames(den)

	switch {
	case numerator == "" && denominator == "":
		return ""
	case denominator == "":
		return numerator
	case numerator == "":
		return "reciprocal " + denominator
	default:
		return numerator + " per " + denominator
	}
}

// split returns the factors with positive powers and, with their powers
// negated, the factors with negative powers
func (e Expression) split() (num, den []Factor) {
	for _, f := range e.factors {
		if f.Power > 0 {
			num = append(num, f)
		} else {
			f.Power = -f.Power
			den = append(den, f)
		}
	}
	return num, den
}

// joinSymbols renders bare prefixes after the units of the group, so parsing
// the result never joins a bare prefix with the unit that follows it
func joinSymbols(factors []Factor) string {
	parts := make([]string, 0, len(factors))
	var bare []string
	for _, f := range factors {
		s := f.Symbol()
		if f.Power != 1 {
			s += "^" + strconv.Itoa(f.Power)
		}
		if f.Unit == nil {
			bare = append(bare, s)
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(append(parts, bare...), "·")
}

func joinNames(factors []Factor) string {
	parts := make([]string, 0, len(factors))
	for _, f := range factors {
		n := f.Name()
		switch f.Power {
		case 1:
		case 2:
			n = "square " + n
		case 3:
			n = "cubic " + n
		default:
			n += " to the " + strconv.Itoa(f.Power)
		}
		parts = append(parts, n)
	}
	return strings.Join(parts, " ")
}

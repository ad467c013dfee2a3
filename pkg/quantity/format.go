// ============================================================================
// tantalum - Exact Unit-Aware Arithmetic
// ============================================================================
//
// Package:     quantity
// Description: Text rendering, parsing and text encoding of quantities
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package quantity

import (
	"strings"
	"unicode"

	"github.com/msto63/tantalum/foundation/core/config"
	"github.com/msto63/tantalum/foundation/core/errors"
	"github.com/msto63/tantalum/foundation/utils/mathx"
	"github.com/msto63/tantalum/pkg/parser"
)

// String renders the exact magnitude and the unit symbol: "105 mi/h",
// "1/3 m". A unitless quantity renders as its number. Parse reads the
// result back unchanged.
func (q Quantity) String() string {
	return join(q.magnitude.String(), q.unit.Symbol())
}

// Name renders the exact magnitude with unit names: "105 mile per hour"
func (q Quantity) Name() string {
	return join(q.magnitude.String(), q.unit.Name())
}

// Format renders the magnitude as a decimal with at most places digits,
// rounding half away from zero: "168.98112 km/h"
func (q Quantity) Format(places int) string {
	return Formatter{Places: places}.Format(q)
}

// Formatter renders quantities with fixed rounding rules
type Formatter struct {
	// Places is the maximum number of decimal places; negative means exact
	Places int

	// Mode is the rounding applied at the last place
	Mode mathx.RoundingMode

	// Names renders unit names instead of symbols
	Names bool
}

var roundingModes = map[string]mathx.RoundingMode{
	"half_up":   mathx.RoundingModeHalfUp,
	"half_even": mathx.RoundingModeHalfEven,
	"half_down": mathx.RoundingModeHalfDown,
	"up":        mathx.RoundingModeUp,
	"down":      mathx.RoundingModeDown,
}

// NewFormatterFromConfig reads format.places, format.rounding and
// format.names. Without format.places the formatter is exact.
func NewFormatterFromConfig(cfg *config.Config) (Formatter, error) {
	result := cfg.Validate(config.ValidationRules{
		"format.places":   {Type: "int", Min: config.Bound(0), Max: config.Bound(100)},
		"format.rounding": {Type: "string"},
		"format.names":    {Type: "bool"},
	})
	if err := result.Err(); err != nil {
		return Formatter{}, err
	}

	f := Formatter{
		Places: cfg.GetInt("format.places", -1),
		Names:  cfg.GetBool("format.names"),
	}
	if name := cfg.GetString("format.rounding"); name != "" {
		mode, ok := roundingModes[strings.ToLower(name)]
		if !ok {
			return Formatter{}, errors.InvalidInput(errors.ModuleConfig, "format.rounding", name,
				"half_up, half_even, half_down, up or down")
		}
		f.Mode = mode
	}
	return f, nil
}

// Format renders q according to f
func (f Formatter) Format(q Quantity) string {
	number := q.magnitude.String()
	if f.Places >= 0 {
		number = q.magnitude.Round(f.Places, f.Mode).DecimalString(f.Places)
	}
	if f.Names {
		return join(number, q.unit.Name())
	}
	return join(number, q.unit.Symbol())
}

func join(number, unit string) string {
	if unit == "" {
		return number
	}
	return number + " " + unit
}

// Parse reads "<number> <unit>" with the default parser. The number is any
// rational literal ("60", "-1.5", "1e3", "1/3"); the unit may be empty for a
// plain number. The space may be left out when the unit starts with a
// letter, so "60km/h" works too.
func Parse(s string) (Quantity, error) {
	return ParseWith(parser.Default(), s)
}

// ParseWith is Parse with an explicit unit parser
func ParseWith(p *parser.Parser, s string) (Quantity, error) {
	number, rest := splitNumber(strings.TrimSpace(s))
	if number == "" {
		return Quantity{}, errors.InvalidFormat(errors.ModuleQuantity, s, "<number> <unit>")
	}

	m, err := mathx.NewRational(number)
	if err != nil {
		return Quantity{}, errors.InvalidFormat(errors.ModuleQuantity, s, "<number> <unit>")
	}
	u, err := p.Parse(rest)
	if err != nil {
		return Quantity{}, err
	}
	return New(m, u), nil
}

// MustParse is like Parse but panics on error. Use it for constants.
func MustParse(s string) Quantity {
	q, err := Parse(s)
	if err != nil {
		panic("quantity: " + err.Error())
	}
	return q
}

// splitNumber separates the leading number literal from the unit. The number
// ends at the first space, or at the first rune that can only start a unit.
func splitNumber(s string) (number, rest string) {
	for i, r := range s {
		switch {
		case unicode.IsSpace(r):
			return s[:i], s[i:]
		case r == 'e' || r == 'E':
			// exponent only when a digit or sign follows
			if i > 0 && i+1 < len(s) && strings.ContainsRune("+-0123456789", rune(s[i+1])) {
				continue
			}
			return s[:i], s[i:]
		case unicode.IsLetter(r) || r == '°' || r == '(':
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// MarshalText implements encoding.TextMarshaler using String
func (q Quantity) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse
func (q *Quantity) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*q = v
	return nil
}

// File: rational.go
// Title: Exact Rational Arithmetic
// Description: Implements Rational, an immutable exact rational number on top
//              of math/big.Rat. Every quantity magnitude and unit scale in
//              tantalum is a Rational, so no operation ever rounds.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2026-10-17 v0.2.0: Replaced Decimal with the immutable Rational, exact
//                       integer rounding, text encoding

package mathx

import (
	"math"
	"math/big"
	"strings"

	"github.com/msto63/tantalum/foundation/core/errors"
)

// RoundingMode defines how a rational is rounded to a fixed number of places
type RoundingMode int

const (
	// RoundingModeHalfUp rounds halves away from zero (commercial rounding)
	RoundingModeHalfUp RoundingMode = iota

	// RoundingModeHalfEven rounds halves to the nearest even digit (banker's rounding)
	RoundingModeHalfEven

	// RoundingModeHalfDown rounds halves toward zero
	RoundingModeHalfDown

	// RoundingModeUp always rounds away from zero
	RoundingModeUp

	// RoundingModeDown always rounds toward zero (truncation)
	RoundingModeDown
)

// Field is the set of operations the unit engine needs from a numeric
// backend. Rational is the only implementation.
type Field[T any] interface {
	Add(other T) T
	Subtract(other T) T
	Multiply(other T) T
	Divide(other T) (T, error)
	Compare(other T) int
	IsZero() bool
}

var _ Field[Rational] = Rational{}

var (
	bigOne  = big.NewInt(1)
	bigTen  = big.NewInt(10)
	ratZero = new(big.Rat)
)

// Rational is an exact rational number. The zero value is 0. A Rational is
// never modified after construction and may be shared between goroutines.
type Rational struct {
	value *big.Rat
}

// rat returns the underlying value for reading. Callers must not modify it.
func (r Rational) rat() *big.Rat {
	if r.value == nil {
		return ratZero
	}
	return r.value
}

// NewRational parses an integer ("42"), decimal ("-1.5"), exponent ("1e-3")
// or fraction ("201168/125") literal.
func NewRational(s string) (Rational, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Rational{}, errors.InvalidFormat(errors.ModuleMathx, s, "rational literal")
	}
	if strings.Count(trimmed, "/") == 1 {
		parts := strings.SplitN(trimmed, "/", 2)
		if den := strings.TrimSpace(parts[1]); den != "" && strings.Trim(den, "0") == "" {
			return Rational{}, errors.DivisionByZero(errors.ModuleMathx, "NewRational")
		}
	}
	v, ok := new(big.Rat).SetString(trimmed)
	if !ok {
		return Rational{}, errors.InvalidFormat(errors.ModuleMathx, s, "rational literal")
	}
	return Rational{value: v}, nil
}

// MustNewRational parses s and panics on error. Use this for constants.
func MustNewRational(s string) Rational {
	r, err := NewRational(s)
	if err != nil {
		panic(err)
	}
	return r
}

// NewRationalFromInt creates a Rational from an integer
func NewRationalFromInt(i int64) Rational {
	return Rational{value: new(big.Rat).SetInt64(i)}
}

// NewRationalFromFrac creates num/den in lowest terms
func NewRationalFromFrac(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, errors.DivisionByZero(errors.ModuleMathx, "NewRationalFromFrac")
	}
	return Rational{value: new(big.Rat).SetFrac64(num, den)}, nil
}

// MustNewRationalFromFrac creates num/den and panics if den is zero
func MustNewRationalFromFrac(num, den int64) Rational {
	r, err := NewRationalFromFrac(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// NewRationalFromBigInt creates an integral Rational. i is copied.
func NewRationalFromBigInt(i *big.Int) Rational {
	return Rational{value: new(big.Rat).SetInt(i)}
}

// NewRationalFromRat creates a Rational from r. r is copied.
func NewRationalFromRat(r *big.Rat) Rational {
	return Rational{value: new(big.Rat).Set(r)}
}

// NewRationalFromFloat creates the exact binary value of f, so 0.1 does not
// become 1/10. Prefer NewRational for decimal input. NaN and infinities are
// rejected.
func NewRationalFromFloat(f float64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, errors.InvalidInput(errors.ModuleMathx, "NewRationalFromFloat", f, "finite float64")
	}
	return Rational{value: new(big.Rat).SetFloat64(f)}, nil
}

// PowerOfTen returns 10^exp for any integer exp
func PowerOfTen(exp int) Rational {
	abs := exp
	if abs < 0 {
		abs = -abs
	}
	p := new(big.Int).Exp(bigTen, big.NewInt(int64(abs)), nil)
	if exp < 0 {
		return Rational{value: new(big.Rat).SetFrac(bigOne, p)}
	}
	return Rational{value: new(big.Rat).SetInt(p)}
}

// Zero returns 0
func Zero() Rational {
	return Rational{value: new(big.Rat)}
}

// One returns 1
func One() Rational {
	return Rational{value: new(big.Rat).SetInt64(1)}
}

// Add returns r + other
func (r Rational) Add(other Rational) Rational {
	return Rational{value: new(big.Rat).Add(r.rat(), other.rat())}
}

// Subtract returns r - other
func (r Rational) Subtract(other Rational) Rational {
	return Rational{value: new(big.Rat).Sub(r.rat(), other.rat())}
}

// Multiply returns r * other
func (r Rational) Multiply(other Rational) Rational {
	return Rational{value: new(big.Rat).Mul(r.rat(), other.rat())}
}

// Divide returns r / other
func (r Rational) Divide(other Rational) (Rational, error) {
	if other.IsZero() {
		return Rational{}, errors.DivisionByZero(errors.ModuleMathx, "Divide")
	}
	return Rational{value: new(big.Rat).Quo(r.rat(), other.rat())}, nil
}

// MustDivide returns r / other, panicking on division by zero
func (r Rational) MustDivide(other Rational) Rational {
	q, err := r.Divide(other)
	if err != nil {
		panic(err)
	}
	return q
}

// Inverse returns 1 / r
func (r Rational) Inverse() (Rational, error) {
	if r.IsZero() {
		return Rational{}, errors.DivisionByZero(errors.ModuleMathx, "Inverse")
	}
	return Rational{value: new(big.Rat).Inv(r.rat())}, nil
}

// Neg returns -r
func (r Rational) Neg() Rational {
	return Rational{value: new(big.Rat).Neg(r.rat())}
}

// Abs returns |r|
func (r Rational) Abs() Rational {
	return Rational{value: new(big.Rat).Abs(r.rat())}
}

// Pow returns r raised to an integer power. 0^0 is 1; 0 to a negative
// power fails with a division by zero.
func (r Rational) Pow(exp int) (Rational, error) {
	if exp == 0 {
		return One(), nil
	}
	if exp < 0 {
		if r.IsZero() {
			return Rational{}, errors.DivisionByZero(errors.ModuleMathx, "Pow")
		}
		inv, _ := r.Inverse()
		return inv.Pow(-exp)
	}

	e := big.NewInt(int64(exp))
	num := new(big.Int).Exp(r.rat().Num(), e, nil)
	den := new(big.Int).Exp(r.rat().Denom(), e, nil)
	return Rational{value: new(big.Rat).SetFrac(num, den)}, nil
}

// Compare returns -1, 0 or +1 as r is less than, equal to or greater than other
func (r Rational) Compare(other Rational) int {
	return r.rat().Cmp(other.rat())
}

// Equal reports whether r == other
func (r Rational) Equal(other Rational) bool {
	return r.Compare(other) == 0
}

// LessThan reports whether r < other
func (r Rational) LessThan(other Rational) bool {
	return r.Compare(other) < 0
}

// GreaterThan reports whether r > other
func (r Rational) GreaterThan(other Rational) bool {
	return r.Compare(other) > 0
}

// Sign returns -1, 0 or +1
func (r Rational) Sign() int {
	return r.rat().Sign()
}

// IsZero reports whether r == 0
func (r Rational) IsZero() bool {
	return r.Sign() == 0
}

// IsPositive reports whether r > 0
func (r Rational) IsPositive() bool {
	return r.Sign() > 0
}

// IsNegative reports whether r < 0
func (r Rational) IsNegative() bool {
	return r.Sign() < 0
}

// IsInteger reports whether the denominator is 1
func (r Rational) IsInteger() bool {
	return r.rat().IsInt()
}

// Num returns a copy of the numerator in lowest terms. The sign is carried here.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.rat().Num())
}

// Denom returns a copy of the positive denominator in lowest terms
func (r Rational) Denom() *big.Int {
	return new(big.Int).Set(r.rat().Denom())
}

// Rat returns a copy of the value as *big.Rat
func (r Rational) Rat() *big.Rat {
	return new(big.Rat).Set(r.rat())
}

// Float64 returns the nearest float64. The conversion may lose precision.
func (r Rational) Float64() float64 {
	f, _ := r.rat().Float64()
	return f
}

// Round rounds r to the given number of decimal places. The computation is
// done on integers, so the result is exact for every mode.
func (r Rational) Round(places int, mode RoundingMode) Rational {
	if places < 0 {
		places = 0
	}
	scale := new(big.Int).Exp(bigTen, big.NewInt(int64(places)), nil)

	num := new(big.Int).Mul(r.rat().Num(), scale)
	den := r.rat().Denom()

	// q is truncated toward zero; rem carries the sign of num
	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() != 0 {
		twiceRem := new(big.Int).Abs(rem)
		twiceRem.Lsh(twiceRem, 1)
		half := twiceRem.Cmp(den) // -1 below half, 0 exactly half, +1 above

		awayFromZero := false
		switch mode {
		case RoundingModeHalfUp:
			awayFromZero = half >= 0
		case RoundingModeHalfDown:
			awayFromZero = half > 0
		case RoundingModeHalfEven:
			awayFromZero = half > 0 || (half == 0 && q.Bit(0) == 1)
		case RoundingModeUp:
			awayFromZero = true
		case RoundingModeDown:
			awayFromZero = false
		}

		if awayFromZero {
			if num.Sign() < 0 {
				q.Sub(q, bigOne)
			} else {
				q.Add(q, bigOne)
			}
		}
	}

	return Rational{value: new(big.Rat).SetFrac(q, scale)}
}

// String returns the exact value: "42" for integers, "-3/8" otherwise
func (r Rational) String() string {
	return r.rat().RatString()
}

// FloatString returns a decimal rendering with exactly places digits after the
// point, rounding halves away from zero
func (r Rational) FloatString(places int) string {
	if places < 0 {
		places = 0
	}
	return r.rat().FloatString(places)
}

// DecimalString returns a decimal rendering with at most maxPlaces digits and
// no trailing zeros. Exact values such as 168.98112 print in full.
func (r Rational) DecimalString(maxPlaces int) string {
	s := r.FloatString(maxPlaces)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// MarshalText implements encoding.TextMarshaler with the exact String form
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting every literal
// NewRational accepts
func (r *Rational) UnmarshalText(text []byte) error {
	v, err := NewRational(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

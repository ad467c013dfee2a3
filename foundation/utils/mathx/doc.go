// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides the exact rational arithmetic that all
//              tantalum magnitudes and unit scales are built on.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-17 v0.3.0: Rational replaces Decimal; business and currency helpers removed

// Package mathx provides exact rational arithmetic.
//
// Rational wraps math/big.Rat behind an immutable value API: every operation
// allocates its result and never touches its operands, so Rationals can be
// stored in shared tables and passed between goroutines without copying.
//
//	mile := mathx.MustNewRational("201168/125") // meters per mile
//	hour := mathx.NewRationalFromInt(3600)
//	perHour, _ := mile.Divide(hour)
//	fmt.Println(perHour)                // 1397/3125
//	fmt.Println(perHour.FloatString(4)) // 0.4470
//
// # Exactness
//
// Arithmetic never rounds. Rounding happens only when asked for, through
// Round, FloatString or DecimalString, and Round works on integers so every
// RoundingMode is exact.
//
// Division and Inverse return an error instead of panicking when the divisor
// is zero; MustDivide and the Must constructors panic and are meant for
// constants.
//
// # Text Encoding
//
// Rational implements encoding.TextMarshaler and encoding.TextUnmarshaler,
// so unit scales can be written as "201168/125" or "0.3048" in TOML and YAML
// definition files.
package mathx

package field

import (
	"math"
	"strconv"
)

// Float is the floating instantiation of the field: fast, approximate,
// backed by float64. Division by zero and non-finite lowering are errors,
// matching Rat behavior instead of IEEE silent infinities.
type Float float64

// compile-time conformance check
var _ Elem[Float] = Float(0)

// Add returns f + g.
func (f Float) Add(g Float) Float { return f + g }

// Sub returns f − g.
func (f Float) Sub(g Float) Float { return f - g }

// Mul returns f × g.
func (f Float) Mul(g Float) Float { return f * g }

// Div returns f ÷ g, or ErrDivisionByZero when g is zero.
func (f Float) Div(g Float) (Float, error) {
	if g == 0 {
		return 0, ErrDivisionByZero
	}

	return f / g, nil
}

// Neg returns −f.
func (f Float) Neg() Float { return -f }

// Cmp compares f with g: -1, 0 or +1. NaN never enters solver state
// (lowering rejects it), so the IEEE comparison is a total order here.
func (f Float) Cmp(g Float) int {
	switch {
	case f < g:
		return -1
	case f > g:
		return 1
	default:
		return 0
	}
}

// One returns 1.
func (Float) One() Float { return 1 }

// FromInt lowers n exactly for |n| ≤ 2⁵³ and with rounding beyond.
func (Float) FromInt(n int64) Float { return Float(n) }

// FromFloat lowers x, rejecting NaN and ±Inf with ErrNonFinite.
func (Float) FromFloat(x float64) (Float, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, ErrNonFinite
	}

	return Float(x), nil
}

// Parse lowers a decimal literal (optionally signed, with optional
// fraction and exponent) into Float.
func (Float) Parse(s string) (Float, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrBadLiteral
	}

	return Float(v), nil
}

// IsFinite reports whether f is neither NaN nor ±Inf.
func (f Float) IsFinite() bool {
	v := float64(f)

	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Float64 returns f as a plain float64.
func (f Float) Float64() float64 { return float64(f) }

// String formats f with the shortest representation that round-trips
// through Parse.
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

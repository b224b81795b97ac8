package field

import (
	"math"
	"math/big"
)

// Rat is the exact instantiation of the field: arbitrary-precision
// rational arithmetic backed by math/big.Rat. A zero-value Rat (nil
// pointer inside) is the additive identity, so `var zero Rat` is valid
// and generic code needs no constructor for it.
//
// Rat values are immutable: every operation allocates a fresh result and
// never mutates the receiver's underlying big.Rat.
type Rat struct {
	r *big.Rat
}

// compile-time conformance check
var _ Elem[Rat] = Rat{}

// RatFromInt returns n as an exact rational.
func RatFromInt(n int64) Rat { return Rat{r: new(big.Rat).SetInt64(n)} }

// RatFromFrac returns p/q as an exact rational, or ErrDivisionByZero
// when q is zero.
func RatFromFrac(p, q int64) (Rat, error) {
	if q == 0 {
		return Rat{}, ErrDivisionByZero
	}

	return Rat{r: new(big.Rat).SetFrac64(p, q)}, nil
}

// rat returns the underlying big.Rat, materializing zero for the
// zero value. The result must not be mutated.
func (a Rat) rat() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}

	return a.r
}

// Add returns a + b exactly.
func (a Rat) Add(b Rat) Rat { return Rat{r: new(big.Rat).Add(a.rat(), b.rat())} }

// Sub returns a − b exactly.
func (a Rat) Sub(b Rat) Rat { return Rat{r: new(big.Rat).Sub(a.rat(), b.rat())} }

// Mul returns a × b exactly.
func (a Rat) Mul(b Rat) Rat { return Rat{r: new(big.Rat).Mul(a.rat(), b.rat())} }

// Div returns a ÷ b exactly, or ErrDivisionByZero when b is zero.
func (a Rat) Div(b Rat) (Rat, error) {
	bb := b.rat()
	if bb.Sign() == 0 {
		return Rat{}, ErrDivisionByZero
	}

	return Rat{r: new(big.Rat).Quo(a.rat(), bb)}, nil
}

// Neg returns −a.
func (a Rat) Neg() Rat { return Rat{r: new(big.Rat).Neg(a.rat())} }

// Cmp compares a with b exactly: -1, 0 or +1.
func (a Rat) Cmp(b Rat) int { return a.rat().Cmp(b.rat()) }

// One returns 1.
func (Rat) One() Rat { return Rat{r: big.NewRat(1, 1)} }

// FromInt lowers n exactly.
func (Rat) FromInt(n int64) Rat { return RatFromInt(n) }

// FromFloat lowers x exactly (every finite float64 is rational);
// NaN and ±Inf are rejected with ErrNonFinite.
func (Rat) FromFloat(x float64) (Rat, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Rat{}, ErrNonFinite
	}
	r := new(big.Rat).SetFloat64(x)
	if r == nil {
		return Rat{}, ErrNonFinite
	}

	return Rat{r: r}, nil
}

// Parse lowers a numeric literal into an exact rational. Accepted forms
// are decimal ("2", "-0.5", "1.5e3") and fraction ("3/4", "-7/2")
// notation; decimals stay exact, never rounded through float64.
func (Rat) Parse(s string) (Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rat{}, ErrBadLiteral
	}

	return Rat{r: r}, nil
}

// IsFinite always reports true: every rational is finite.
func (Rat) IsFinite() bool { return true }

// Float64 returns the nearest float64; exactness is lost, so the result
// is for display and diagnostics only.
func (a Rat) Float64() float64 {
	f, _ := a.rat().Float64()

	return f
}

// String formats a deterministically: plain integers without a
// denominator, everything else as "p/q" in lowest terms. Both shapes
// round-trip through Parse.
func (a Rat) String() string {
	r := a.rat()
	if r.IsInt() {
		return r.Num().String()
	}

	return r.RatString()
}

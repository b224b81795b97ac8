// Package field provides the generic scalar abstraction shared by every
// game model and solver in zerosum: a small "field" capability set over
// which all numeric code is written, with two concrete instantiations —
// fast approximate floating point and exact rational arithmetic.
//
// Overview:
//
//   - Elem[T] is a type-parameter constraint listing the operations a
//     scalar must provide: addition, subtraction, multiplication, checked
//     division, negation, total-order comparison, the multiplicative
//     identity, lowering from integers / floats / textual literals, a
//     finiteness probe, and display conversion.
//   - The additive identity is always the zero value of T, so generic code
//     writes `var zero T` and never needs a constructor for it.
//   - Float (float64 underneath) is the fast instantiation. Division by
//     zero is an error, never a silent ±Inf, so Float and Rat behave
//     consistently at the edges.
//   - Rat (math/big.Rat underneath) is the exact instantiation. Bound
//     comparisons performed in Rat never drift due to rounding, which
//     matters for fictitious-play convergence checks.
//
// Why a type parameter instead of an interface value:
//
//   - Solver hot loops run millions of scalar operations; instantiating
//     them per concrete type keeps every operation monomorphized and
//     inlinable instead of dispatching through an interface table.
//
// Errors (sentinel):
//
//   - ErrDivisionByZero — Div was called with the additive identity.
//   - ErrNonFinite     — a float lowering or operation produced NaN/±Inf.
//   - ErrBadLiteral    — Parse was given text that is not a numeric literal.
//
// Example usage:
//
//	var zero field.Float
//	half, err := zero.One().Div(zero.FromInt(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(half) // 0.5
package field

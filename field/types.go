package field

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by field operations.
var (
	// ErrDivisionByZero indicates that Div was called with a zero divisor.
	// Both the exact and the floating instantiation fail identically here;
	// neither produces a silent infinity.
	ErrDivisionByZero = errors.New("field: division by zero")

	// ErrNonFinite indicates that a lowering or an operation produced a
	// value outside the field (NaN or ±Inf under floating arithmetic).
	ErrNonFinite = errors.New("field: non-finite value")

	// ErrBadLiteral indicates that Parse was given text that does not
	// denote a numeric literal of the field.
	ErrBadLiteral = errors.New("field: malformed numeric literal")
)

// Elem is the operation set every scalar type must provide. Models,
// parsers and solvers are generic over `T Elem[T]`, so a caller chooses
// exact rational or floating arithmetic once, at instantiation.
//
// Conventions:
//
//   - The additive identity is the zero value of T (`var zero T`).
//   - All methods are value-semantics: receivers are never mutated and
//     results are fresh values, so scalars may be copied freely.
//   - Cmp defines a total order: -1 if receiver < argument, 0 if equal,
//     +1 if greater.
//   - FromInt / FromFloat / Parse are lowering hooks callable on the zero
//     value; they ignore the receiver and act as constructors.
type Elem[T any] interface {
	// Add returns receiver + argument.
	Add(T) T
	// Sub returns receiver − argument.
	Sub(T) T
	// Mul returns receiver × argument.
	Mul(T) T
	// Div returns receiver ÷ argument, or ErrDivisionByZero when the
	// argument is the additive identity.
	Div(T) (T, error)
	// Neg returns the additive inverse of the receiver.
	Neg() T
	// Cmp compares receiver with argument: -1, 0 or +1.
	Cmp(T) int
	// One returns the multiplicative identity.
	One() T
	// FromInt lowers an integer into the field (exact in both
	// instantiations for any int64).
	FromInt(int64) T
	// FromFloat lowers a float64 into the field. NaN and ±Inf are
	// rejected with ErrNonFinite.
	FromFloat(float64) (T, error)
	// Parse lowers a textual numeric literal into the field, or returns
	// ErrBadLiteral. Accepted shapes are at least the decimal forms
	// emitted by String.
	Parse(string) (T, error)
	// IsFinite reports whether the value lies in the field proper.
	// Always true for exact rationals; false for NaN/±Inf floats.
	IsFinite() bool
	// Float64 converts to float64 for display and diagnostics. The
	// conversion may round; it must never be used for solver decisions.
	Float64() float64

	fmt.Stringer
}

package gameparse

import (
	"fmt"

	"github.com/saddlekit/zerosum/field"
)

// Kind discriminates the two accepted specification shapes.
type Kind int

const (
	// KindMatrix is a finite payoff-matrix literal.
	KindMatrix Kind = iota

	// KindContinuous is a payoff expression with interval declarations.
	KindContinuous
)

// String returns "matrix" or "continuous".
func (k Kind) String() string {
	if k == KindMatrix {
		return "matrix"
	}

	return "continuous"
}

// ParseError reports the first syntax or semantic violation found in a
// specification text. No recovery is attempted: the parser stops here.
type ParseError struct {
	// Offset is the byte offset of the offending token in the input.
	Offset int
	// Line is the 1-based line of the offending token.
	Line int
	// Col is the 1-based column (in bytes) of the offending token.
	Col int
	// Msg is a human-readable description of the violation.
	Msg string
	// Err is an optional underlying cause (e.g. field.ErrBadLiteral).
	Err error
}

// Error formats the violation with its location.
func (e *ParseError) Error() string {
	return fmt.Sprintf("gameparse: %s at line %d, column %d (offset %d)", e.Msg, e.Line, e.Col, e.Offset)
}

// Unwrap exposes the underlying cause for errors.Is matching.
func (e *ParseError) Unwrap() error { return e.Err }

// Var identifies one of the two declared variables of a continuous game.
type Var int

const (
	// VarX is the first declared variable (the convex direction).
	VarX Var = iota

	// VarY is the second declared variable (the concave direction).
	VarY
)

// Interval is a closed bounded interval [Lo, Hi] with Lo ≤ Hi.
type Interval[T field.Elem[T]] struct {
	Lo, Hi T
}

// String formats the interval as "[lo,hi]".
func (iv Interval[T]) String() string {
	return "[" + iv.Lo.String() + "," + iv.Hi.String() + "]"
}

// Continuous is the parsed form of a continuous convex-concave game:
// a payoff expression over two named variables and their strategy
// intervals. Convexity in the first variable and concavity in the second
// are asserted by the specification author, not verified here.
type Continuous[T field.Elem[T]] struct {
	// Name is the declared function name (the "f" of "f(x,y) = ...").
	Name string
	// XVar and YVar are the declared variable names, in declaration order.
	XVar, YVar string
	// Payoff is the expression AST; Eval(x, y) computes the row player's
	// payoff, Diff yields exact symbolic partial derivatives.
	Payoff Expr[T]
	// X and Y are the strategy intervals of the two variables.
	X, Y Interval[T]
}

// String re-serializes the declaration in the textual shape accepted by
// Parse.
func (c *Continuous[T]) String() string {
	return fmt.Sprintf("%s(%s,%s) = %s, %s in %s, %s in %s",
		c.Name, c.XVar, c.YVar, c.Payoff.String(),
		c.XVar, c.X.String(), c.YVar, c.Y.String())
}

// Spec is the result of a successful parse: exactly one of Rows and
// Continuous is populated, as told by Kind.
type Spec[T field.Elem[T]] struct {
	Kind       Kind
	Rows       [][]T          // KindMatrix: rectangular payoff rows
	Continuous *Continuous[T] // KindContinuous: expression + intervals
}

package saddle

import (
	"github.com/saddlekit/zerosum/field"
	"github.com/saddlekit/zerosum/gameparse"
)

// Interval is a closed bounded strategy interval [Lo, Hi].
type Interval[T field.Elem[T]] struct {
	Lo, Hi T
}

// Clamp projects v into the interval.
func (iv Interval[T]) Clamp(v T) T {
	if v.Cmp(iv.Lo) < 0 {
		return iv.Lo
	}
	if v.Cmp(iv.Hi) > 0 {
		return iv.Hi
	}

	return v
}

// Width returns Hi − Lo.
func (iv Interval[T]) Width() T { return iv.Hi.Sub(iv.Lo) }

// Mid returns the interval midpoint.
func (iv Interval[T]) Mid() T {
	var zero T
	two := zero.One().Add(zero.One())
	// Division by two cannot fail.
	mid, _ := iv.Lo.Add(iv.Hi).Div(two)

	return mid
}

// contains reports Lo ≤ v ≤ Hi.
func (iv Interval[T]) contains(v T) bool {
	return iv.Lo.Cmp(v) <= 0 && v.Cmp(iv.Hi) <= 0
}

// Func evaluates a payoff or gradient at a strategy pair. The only
// expected failure is division by the field's zero inside the payoff
// expression.
type Func[T field.Elem[T]] func(x, y T) (T, error)

// Game is a continuous convex-concave zero-sum game: the payoff F with
// its partial (sub)gradients Gx, Gy over the strategy intervals X and Y.
// F must be convex in x for every fixed y and concave in y for every
// fixed x; this is the caller's assertion and is not verified.
type Game[T field.Elem[T]] struct {
	F, Gx, Gy Func[T]
	X, Y      Interval[T]
}

// NewGame validates and assembles a Game from explicit payoff and
// gradient functions.
func NewGame[T field.Elem[T]](f, gx, gy Func[T], x, y Interval[T]) (*Game[T], error) {
	if f == nil || gx == nil || gy == nil {
		return nil, ErrNilPayoff
	}
	if x.Lo.Cmp(x.Hi) > 0 || y.Lo.Cmp(y.Hi) > 0 {
		return nil, ErrBadInterval
	}

	return &Game[T]{F: f, Gx: gx, Gy: gy, X: x, Y: y}, nil
}

// FromSpec builds a Game from a parsed continuous declaration, deriving
// exact subgradients by symbolic differentiation of the payoff
// expression.
func FromSpec[T field.Elem[T]](c *gameparse.Continuous[T]) (*Game[T], error) {
	if c == nil || c.Payoff == nil {
		return nil, ErrNilPayoff
	}
	dx := c.Payoff.Diff(gameparse.VarX)
	dy := c.Payoff.Diff(gameparse.VarY)

	return NewGame(
		c.Payoff.Eval,
		dx.Eval,
		dy.Eval,
		Interval[T]{Lo: c.X.Lo, Hi: c.X.Hi},
		Interval[T]{Lo: c.Y.Lo, Hi: c.Y.Hi},
	)
}

// Quadratic is the kernel H(x,y) = Ax² + By² + Cxy + Dx + Ey, the
// classical convex-concave family (A > 0, B < 0). Its partials are
// analytic, and the unconstrained saddle has a closed form.
type Quadratic[T field.Elem[T]] struct {
	A, B, C, D, E T
	X, Y          Interval[T]
}

// NewQuadratic validates the intervals and assembles the kernel.
// The convexity condition A > 0, B < 0 is the caller's assertion, kept
// consistent with the general Game contract.
func NewQuadratic[T field.Elem[T]](a, b, c, d, e T, x, y Interval[T]) (*Quadratic[T], error) {
	if x.Lo.Cmp(x.Hi) > 0 || y.Lo.Cmp(y.Hi) > 0 {
		return nil, ErrBadInterval
	}

	return &Quadratic[T]{A: a, B: b, C: c, D: d, E: e, X: x, Y: y}, nil
}

// At evaluates H(x, y).
func (q *Quadratic[T]) At(x, y T) T {
	return q.A.Mul(x).Mul(x).
		Add(q.B.Mul(y).Mul(y)).
		Add(q.C.Mul(x).Mul(y)).
		Add(q.D.Mul(x)).
		Add(q.E.Mul(y))
}

// Game wraps the kernel as a solvable Game with its analytic partials
// H_x = 2Ax + Cy + D and H_y = 2By + Cx + E.
func (q *Quadratic[T]) Game() *Game[T] {
	var zero T
	two := zero.One().Add(zero.One())

	f := func(x, y T) (T, error) { return q.At(x, y), nil }
	gx := func(x, y T) (T, error) {
		return two.Mul(q.A).Mul(x).Add(q.C.Mul(y)).Add(q.D), nil
	}
	gy := func(x, y T) (T, error) {
		return two.Mul(q.B).Mul(y).Add(q.C.Mul(x)).Add(q.E), nil
	}

	// Intervals were validated in NewQuadratic.
	return &Game[T]{F: f, Gx: gx, Gy: gy, X: q.X, Y: q.Y}
}

// SolveClosedForm returns the unconstrained saddle point of the kernel
// and its value:
//
//	x* = (CE − 2BD) / (4AB − C²)
//	y* = (−Cx* − E) / (2B)
//
// It solves the stationarity system H_x = H_y = 0 directly and ignores
// the strategy intervals; the caller decides whether the point is
// feasible. ErrDegenerate is returned when a denominator vanishes and no
// isolated saddle exists.
func (q *Quadratic[T]) SolveClosedForm() (Point[T], T, error) {
	var zero T
	two := zero.One().Add(zero.One())
	four := two.Mul(two)

	den := four.Mul(q.A).Mul(q.B).Sub(q.C.Mul(q.C))
	x, err := q.C.Mul(q.E).Sub(two.Mul(q.B).Mul(q.D)).Div(den)
	if err != nil {
		return Point[T]{}, zero, ErrDegenerate
	}
	y, err := q.C.Mul(x).Neg().Sub(q.E).Div(two.Mul(q.B))
	if err != nil {
		return Point[T]{}, zero, ErrDegenerate
	}

	return Point[T]{X: x, Y: y}, q.At(x, y), nil
}

package saddle

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/saddlekit/zerosum/field"
)

// defaultGapRefinement bounds each ternary search to a bracket below
// (2/3)⁴⁸ ≈ 3·10⁻⁹ of the interval width.
const defaultGapRefinement = 48

// Solve runs the projected subgradient saddle-point iteration on g until
// the duality gap at the running averages reaches opts.Epsilon, the
// iteration cap is hit, or arithmetic fails.
//
// Returns:
//
//   - res: the terminal Result. Non-nil whenever iteration started, even
//     on numeric failure (the last valid averages are preserved).
//   - err: nil for the two normal terminal states (reaching the cap is
//     reported through res.Converged, not as an error); a validation
//     sentinel before any iteration; the numeric cause alongside a
//     partial res on StateNumericError.
//
// Preconditions and validation (in order):
//  1. g must be non-nil with non-nil F, Gx, Gy (ErrNilGame, ErrNilPayoff).
//  2. g's intervals must satisfy lo ≤ hi (ErrBadInterval).
//  3. opts must be non-nil (ErrNilOptions).
//  4. opts.Epsilon must be > 0 (ErrBadEpsilon).
//  5. opts.MaxIterations must be > 0 (ErrBadMaxIterations).
//  6. opts.StepScale must be ≥ 0 (ErrBadStepScale).
//  7. opts.GapRefinement must be ≥ 0 (ErrBadGapRefinement).
//  8. opts.Start, when set, must lie inside the intervals (ErrBadStart).
//
// Complexity: O(MaxIterations·GapRefinement) payoff evaluations, O(1)
// space.
func Solve[T field.Elem[T]](g *Game[T], opts *Options[T]) (*Result[T], error) {
	var zero T

	// 1) Validate inputs before touching any state.
	if g == nil {
		return nil, ErrNilGame
	}
	if g.F == nil || g.Gx == nil || g.Gy == nil {
		return nil, ErrNilPayoff
	}
	if g.X.Lo.Cmp(g.X.Hi) > 0 || g.Y.Lo.Cmp(g.Y.Hi) > 0 {
		return nil, ErrBadInterval
	}
	if opts == nil {
		return nil, ErrNilOptions
	}
	if opts.Epsilon.Cmp(zero) <= 0 {
		return nil, ErrBadEpsilon
	}
	if opts.MaxIterations < 1 {
		return nil, ErrBadMaxIterations
	}
	if opts.StepScale.Cmp(zero) < 0 {
		return nil, ErrBadStepScale
	}
	if opts.GapRefinement < 0 {
		return nil, ErrBadGapRefinement
	}
	if opts.Start != nil && !opts.RandomStart {
		if !g.X.contains(opts.Start.X) || !g.Y.contains(opts.Start.Y) {
			return nil, ErrBadStart
		}
	}

	// 2) Initialize the current point, step scale and refinement.
	x, y := g.X.Mid(), g.Y.Mid()
	if opts.Start != nil {
		x, y = opts.Start.X, opts.Start.Y
	}
	if opts.RandomStart {
		rng := rand.New(rand.NewSource(opts.Seed))
		var err error
		if x, err = randomIn(g.X, rng); err != nil {
			return nil, err
		}
		if y, err = randomIn(g.Y, rng); err != nil {
			return nil, err
		}
	}

	scale := opts.StepScale
	if scale.Cmp(zero) == 0 {
		// Half the wider interval's width keeps the first move inside
		// a comparable range for typical gradients.
		scale = g.X.Width()
		if g.Y.Width().Cmp(scale) > 0 {
			scale = g.Y.Width()
		}
		two := zero.One().Add(zero.One())
		scale, _ = scale.Div(two)
		if scale.Cmp(zero) == 0 {
			scale = zero.One() // degenerate point intervals
		}
	}
	refine := opts.GapRefinement
	if refine == 0 {
		refine = defaultGapRefinement
	}

	opts.Logger.Debug().
		Str("x", g.X.Lo.String()+".."+g.X.Hi.String()).
		Str("y", g.Y.Lo.String()+".."+g.Y.Hi.String()).
		Str("epsilon", opts.Epsilon.String()).
		Int("max_iterations", opts.MaxIterations).
		Msg("saddle solve started")

	// 3) Iterate.
	var avgX, avgY T
	st := solveState[T]{}
	for k := 1; k <= opts.MaxIterations; k++ {
		// Subgradients at the current point.
		gx, err := evalFinite(g.Gx, x, y)
		if err != nil {
			return abort(&st, opts, g, err)
		}
		gy, err := evalFinite(g.Gy, x, y)
		if err != nil {
			return abort(&st, opts, g, err)
		}

		// Diminishing step γ_k = γ₀/√k; the √k is lowered from float64,
		// which affects only the convergence rate, never correctness.
		invSqrt, err := zero.FromFloat(1 / math.Sqrt(float64(k)))
		if err != nil {
			return abort(&st, opts, g, err)
		}
		step := scale.Mul(invSqrt)

		// Projected update: descent in x, ascent in y, clamp back.
		x = g.X.Clamp(x.Sub(step.Mul(gx)))
		y = g.Y.Clamp(y.Add(step.Mul(gy)))

		// Running averages over the first k iterates.
		kT := zero.FromInt(int64(k))
		dx, err := x.Sub(avgX).Div(kT) // k ≥ 1, cannot fail
		if err != nil {
			return abort(&st, opts, g, err)
		}
		avgX = avgX.Add(dx)
		dy, err := y.Sub(avgY).Div(kT)
		if err != nil {
			return abort(&st, opts, g, err)
		}
		avgY = avgY.Add(dy)

		// Duality gap at the averages.
		upper, lower, err := dualityGap(g, avgX, avgY, refine)
		if err != nil {
			return abort(&st, opts, g, err)
		}
		gap := upper.Sub(lower)

		st.commit(k, avgX, avgY, lower, upper)

		opts.Logger.Trace().
			Int("k", k).
			Float64("x", x.Float64()).Float64("y", y.Float64()).
			Float64("avg_x", avgX.Float64()).Float64("avg_y", avgY.Float64()).
			Float64("gap", gap.Float64()).
			Msg("saddle step")
		if opts.Trace != nil {
			opts.Trace(Step[T]{K: k, X: x, Y: y, AvgX: avgX, AvgY: avgY, Gap: gap})
		}

		if gap.Cmp(opts.Epsilon) <= 0 {
			res := st.result(StateConverged, g)
			opts.Logger.Debug().
				Int("iterations", res.Iterations).
				Float64("value", res.Value.Float64()).
				Msg("saddle converged")

			return res, nil
		}
	}

	// 4) Iteration cap reached: a normal terminal state, not an error.
	res := st.result(StateMaxIterations, g)
	opts.Logger.Debug().
		Int("iterations", res.Iterations).
		Float64("gap", res.Gap.Float64()).
		Msg("saddle stopped at iteration cap")

	return res, nil
}

// solveState is the running bookkeeping of committed iterations.
type solveState[T field.Elem[T]] struct {
	iterations   int
	avgX, avgY   T
	lower, upper T
	started      bool
}

// commit records the state of a completed iteration k.
func (s *solveState[T]) commit(k int, avgX, avgY, lower, upper T) {
	s.iterations = k
	s.avgX, s.avgY = avgX, avgY
	s.lower, s.upper = lower, upper
	s.started = true
}

// result assembles a Result in terminal state state.
func (s *solveState[T]) result(state State, g *Game[T]) *Result[T] {
	res := &Result[T]{
		State:      state,
		Converged:  state == StateConverged,
		Iterations: s.iterations,
	}
	if !s.started {
		return res
	}

	res.X, res.Y = s.avgX, s.avgY
	res.Lower, res.Upper = s.lower, s.upper
	res.Gap = s.upper.Sub(s.lower)
	// Best-effort payoff at the averages; a failure here leaves the
	// zero value, the bounds still bracket the game value.
	if v, err := g.F(s.avgX, s.avgY); err == nil && v.IsFinite() {
		res.Value = v
	}

	return res
}

// abort terminates a run on numeric failure, surfacing the last valid
// state as a partial result alongside the cause.
func abort[T field.Elem[T]](st *solveState[T], opts *Options[T], g *Game[T], cause error) (*Result[T], error) {
	res := st.result(StateNumericError, g)
	res.Err = cause
	opts.Logger.Debug().Err(cause).Int("iterations", st.iterations).Msg("saddle numeric failure")

	return res, cause
}

// evalFinite evaluates fn and rejects non-finite results.
func evalFinite[T field.Elem[T]](fn Func[T], x, y T) (T, error) {
	v, err := fn(x, y)
	if err != nil {
		return v, err
	}
	if !v.IsFinite() {
		return v, field.ErrNonFinite
	}

	return v, nil
}

// dualityGap evaluates max_{y'} f(avgX, y') and min_{x'} f(x', avgY) by
// ternary search, valid because f(avgX, ·) is concave and f(·, avgY) is
// convex.
func dualityGap[T field.Elem[T]](g *Game[T], avgX, avgY T, refine int) (upper, lower T, err error) {
	upper, err = lineExtremum(func(yp T) (T, error) { return evalFinite(g.F, avgX, yp) }, g.Y, refine, true)
	if err != nil {
		return upper, lower, err
	}
	lower, err = lineExtremum(func(xp T) (T, error) { return evalFinite(g.F, xp, avgY) }, g.X, refine, false)

	return upper, lower, err
}

// lineExtremum approximates the maximum (wantMax) or minimum of a
// unimodal φ over iv by ternary search with the given refinement count,
// then evaluates φ at the midpoint of the final bracket. Deterministic:
// fixed probe placement, no randomness.
func lineExtremum[T field.Elem[T]](phi func(T) (T, error), iv Interval[T], refine int, wantMax bool) (T, error) {
	var zero T
	three := zero.FromInt(3)

	lo, hi := iv.Lo, iv.Hi
	for i := 0; i < refine; i++ {
		d, err := hi.Sub(lo).Div(three) // 3 ≠ 0, cannot fail
		if err != nil {
			return zero, err
		}
		m1 := lo.Add(d)
		m2 := hi.Sub(d)

		f1, err := phi(m1)
		if err != nil {
			return zero, err
		}
		f2, err := phi(m2)
		if err != nil {
			return zero, err
		}

		// Shrink the bracket toward the extremum.
		keepLow := f1.Cmp(f2) >= 0
		if !wantMax {
			keepLow = f1.Cmp(f2) <= 0
		}
		if keepLow {
			hi = m2
		} else {
			lo = m1
		}
	}

	mid := Interval[T]{Lo: lo, Hi: hi}.Mid()

	return phi(mid)
}

// randomIn draws a point uniformly from iv using the seeded source.
func randomIn[T field.Elem[T]](iv Interval[T], rng *rand.Rand) (T, error) {
	var zero T
	u, err := zero.FromFloat(rng.Float64())
	if err != nil {
		return zero, err
	}

	return iv.Lo.Add(u.Mul(iv.Width())), nil
}

package brownrobinson

import (
	"golang.org/x/exp/rand"

	"github.com/saddlekit/zerosum/field"
	"github.com/saddlekit/zerosum/matrixgame"
)

// Solve runs the Brown-Robinson method on g until the bound gap reaches
// opts.Epsilon, the iteration cap is hit, or arithmetic fails.
//
// Returns:
//
//   - res: the terminal Result. Non-nil whenever iteration started, even
//     on numeric failure (the last valid state is preserved).
//   - err: nil for the two normal terminal states (StateConverged and
//     StateMaxIterations — reaching the cap is reported through
//     res.Converged, not as an error); a validation sentinel before any
//     iteration; the numeric cause alongside a partial res on
//     StateNumericError.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGame).
//  2. opts must be non-nil (ErrNilOptions).
//  3. opts.Epsilon must be > 0 (ErrBadEpsilon).
//  4. opts.MaxIterations must be > 0 (ErrBadMaxIterations).
//  5. opts.StartRow/StartCol must index the matrix (ErrBadStart).
//
// Complexity: O(MaxIterations·(r + c)) time, O(r + c) space.
func Solve[T field.Elem[T]](g *matrixgame.Game[T], opts *Options[T]) (*Result[T], error) {
	var zero T

	// 1) Validate inputs before touching any state.
	if g == nil {
		return nil, ErrNilGame
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
	rows, cols := g.Rows(), g.Cols()
	if opts.StartRow < 0 || opts.StartRow >= rows || opts.StartCol < 0 || opts.StartCol >= cols {
		return nil, ErrBadStart
	}

	// 2) Initialize: zero accumulators, start strategies, seeded source.
	var rng *rand.Rand
	if opts.RandomStart || opts.RandomTies {
		rng = rand.New(rand.NewSource(opts.Seed))
	}
	rowMove, colMove := opts.StartRow, opts.StartCol
	if opts.RandomStart {
		rowMove, colMove = rng.Intn(rows), rng.Intn(cols)
	}

	rowAcc := make([]T, rows) // cumulative payoff per row pure strategy
	colAcc := make([]T, cols) // cumulative payoff per column pure strategy
	rowVisits := make([]int, rows)
	colVisits := make([]int, cols)

	var tieRng *rand.Rand
	if opts.RandomTies {
		tieRng = rng
	}

	var st solveState[T]
	opts.Logger.Debug().
		Int("rows", rows).Int("cols", cols).
		Str("epsilon", opts.Epsilon.String()).
		Int("max_iterations", opts.MaxIterations).
		Msg("brown-robinson solve started")

	// 3) Iterate.
	for k := 1; k <= opts.MaxIterations; k++ {
		// Best pure response to the opponent's accumulated payoffs;
		// the first iteration plays the configured start pair.
		if k > 1 {
			rowMove = extremeIndex(rowAcc, true, tieRng)
			colMove = extremeIndex(colAcc, false, tieRng)
		}

		// Update both accumulators with the played pure pair.
		for i := 0; i < rows; i++ {
			rowAcc[i] = rowAcc[i].Add(g.At(i, colMove))
		}
		for j := 0; j < cols; j++ {
			colAcc[j] = colAcc[j].Add(g.At(rowMove, j))
		}

		// Per-iteration value bounds.
		kT := zero.FromInt(int64(k))
		upper, err := maxOf(rowAcc).Div(kT)
		if err == nil {
			var lower T
			if lower, err = minOf(colAcc).Div(kT); err == nil {
				if !upper.IsFinite() || !lower.IsFinite() {
					err = field.ErrNonFinite
				} else {
					st.commit(k, upper, lower)
				}
			}
		}
		if err != nil {
			// Abort: surface the last valid state as a partial result.
			res := st.result(StateNumericError, rowVisits, colVisits)
			res.Err = err
			opts.Logger.Debug().Err(err).Int("iteration", k).Msg("brown-robinson numeric failure")

			return res, err
		}

		rowVisits[rowMove]++
		colVisits[colMove]++

		gap := st.minUpper.Sub(st.maxLower)
		opts.Logger.Trace().
			Int("k", k).Int("row", rowMove).Int("col", colMove).
			Float64("upper", upper.Float64()).
			Float64("lower", st.lastLower.Float64()).
			Float64("gap", gap.Float64()).
			Msg("brown-robinson step")
		if opts.Trace != nil {
			opts.Trace(Step[T]{
				K:         k,
				RowMove:   rowMove,
				ColMove:   colMove,
				RowScores: append([]T(nil), rowAcc...),
				ColScores: append([]T(nil), colAcc...),
				Upper:     upper,
				Lower:     st.lastLower,
				Gap:       gap,
			})
		}

		if gap.Cmp(opts.Epsilon) <= 0 {
			res := st.result(StateConverged, rowVisits, colVisits)
			opts.Logger.Debug().
				Int("iterations", res.Iterations).
				Float64("value", res.Value.Float64()).
				Msg("brown-robinson converged")

			return res, nil
		}
	}

	// 4) Iteration cap reached: a normal terminal state, not an error.
	res := st.result(StateMaxIterations, rowVisits, colVisits)
	opts.Logger.Debug().
		Int("iterations", res.Iterations).
		Float64("lower", res.Lower.Float64()).
		Float64("upper", res.Upper.Float64()).
		Msg("brown-robinson stopped at iteration cap")

	return res, nil
}

// solveState is the running bound bookkeeping: the best bounds achieved
// and the iteration count they correspond to.
type solveState[T field.Elem[T]] struct {
	iterations         int
	minUpper, maxLower T
	lastLower          T
	started            bool
}

// commit records the bounds of a completed iteration k.
func (s *solveState[T]) commit(k int, upper, lower T) {
	s.iterations = k
	s.lastLower = lower
	if !s.started {
		s.minUpper, s.maxLower = upper, lower
		s.started = true

		return
	}
	if upper.Cmp(s.minUpper) < 0 {
		s.minUpper = upper
	}
	if lower.Cmp(s.maxLower) > 0 {
		s.maxLower = lower
	}
}

// result assembles a Result in terminal state state from the committed
// bounds and visit counters.
func (s *solveState[T]) result(state State, rowVisits, colVisits []int) *Result[T] {
	var zero T
	res := &Result[T]{
		State:      state,
		Converged:  state == StateConverged,
		Iterations: s.iterations,
	}
	if !s.started {
		return res
	}

	res.Lower, res.Upper = s.maxLower, s.minUpper
	two := zero.One().Add(zero.One())
	// Midpoint of the final bounds; division by two cannot fail.
	if mid, err := s.maxLower.Add(s.minUpper).Div(two); err == nil {
		res.Value = mid
	}
	res.RowStrategy = frequencies[T](rowVisits, s.iterations)
	res.ColStrategy = frequencies[T](colVisits, s.iterations)

	return res
}

// frequencies converts visit counters over k iterations into an
// empirical mixed strategy. Exact under rational arithmetic.
func frequencies[T field.Elem[T]](visits []int, k int) matrixgame.MixedStrategy[T] {
	var zero T
	if k < 1 {
		return nil
	}
	kT := zero.FromInt(int64(k))
	s := make(matrixgame.MixedStrategy[T], len(visits))
	for i, n := range visits {
		// k ≥ 1, so the division cannot fail.
		f, _ := zero.FromInt(int64(n)).Div(kT)
		s[i] = f
	}

	return s
}

// extremeIndex returns the argmax (wantMax) or argmin index of v.
// With a nil source ties break to the smallest index; otherwise the tie
// set is sampled uniformly from the seeded source, reproducing the
// original method's randomized tie-breaking.
func extremeIndex[T field.Elem[T]](v []T, wantMax bool, rng *rand.Rand) int {
	best := 0
	var ties []int
	for i := 1; i < len(v); i++ {
		c := v[i].Cmp(v[best])
		switch {
		case (wantMax && c > 0) || (!wantMax && c < 0):
			best = i
			ties = ties[:0]
		case c == 0 && rng != nil:
			if len(ties) == 0 {
				ties = append(ties, best)
			}
			ties = append(ties, i)
		}
	}
	if rng != nil && len(ties) > 1 {
		return ties[rng.Intn(len(ties))]
	}

	return best
}

// maxOf returns the largest entry of a non-empty slice.
func maxOf[T field.Elem[T]](v []T) T {
	best := v[0]
	for _, x := range v[1:] {
		if x.Cmp(best) > 0 {
			best = x
		}
	}

	return best
}

// minOf returns the smallest entry of a non-empty slice.
func minOf[T field.Elem[T]](v []T) T {
	best := v[0]
	for _, x := range v[1:] {
		if x.Cmp(best) < 0 {
			best = x
		}
	}

	return best
}

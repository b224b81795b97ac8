// Package brownrobinson implements the Brown-Robinson method (fictitious
// play) for finite two-player zero-sum matrix games.
//
// Overview:
//
//   - Each player repeatedly plays a best pure response to the empirical
//     distribution of the opponent's play so far, kept implicitly as a
//     cumulative payoff vector per player.
//   - After iteration k the upper value bound is max(row accumulator)/k
//     and the lower bound is min(column accumulator)/k; the method tracks
//     the best (smallest upper, largest lower) bounds seen so far, so the
//     reported gap is non-increasing by construction.
//   - By the classical fictitious-play theorem the bound gap converges to
//     zero for every finite zero-sum game; play trajectories need not
//     converge, only the averages and bounds do.
//
// State machine:
//
//	StateInitialized → StateIterating → { StateConverged,
//	                                      StateMaxIterations,
//	                                      StateNumericError }
//
//   - StateConverged:     minUpper − maxLower ≤ epsilon.
//   - StateMaxIterations: the iteration cap was reached first. This is a
//     normal terminal state, not an error: the Result carries the best
//     bounds achieved and Converged=false.
//   - StateNumericError:  arithmetic produced a non-finite or undefined
//     value; the solve aborts and the Result holds the last valid state.
//
// Determinism:
//
//   - The first pure strategies played default to index 0 for both
//     players, and best-response ties break to the smallest index, so two
//     solves of the same game with the same configuration are identical
//     (bit-for-bit under floating, exactly equal under rational
//     arithmetic).
//   - Randomized starting points and tie-breaking are available behind an
//     explicit seed (Options.Seed), keeping randomized runs reproducible.
//
// Errors (sentinel, validated before iterating):
//
//   - ErrNilGame          — the game model is nil.
//   - ErrNilOptions       — the options pointer is nil.
//   - ErrBadEpsilon       — epsilon is not strictly positive.
//   - ErrBadMaxIterations — the iteration cap is not strictly positive.
//   - ErrBadStart         — a start strategy index is out of range.
//
// Complexity:
//
//   - Time:  O(k·(r + c)) for k iterations on an r×c matrix.
//   - Space: O(r + c) — only cumulative state is retained, never the
//     play history, so memory is independent of the iteration count.
//
// Example usage:
//
//	g, _ := matrixgame.New([][]field.Float{{1, -1}, {-1, 1}})
//	opts := brownrobinson.DefaultOptions[field.Float](1e-2, 10000)
//	res, err := brownrobinson.Solve(g, &opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Value, res.RowStrategy, res.Converged)
package brownrobinson

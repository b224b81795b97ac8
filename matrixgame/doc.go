// Package matrixgame models a finite two-player zero-sum game given by a
// payoff matrix, validated at construction and queried by the solvers.
//
// Overview:
//
//   - Game[T] wraps a rectangular payoff matrix over any field scalar T.
//     Entry (i, j) is the row player's payoff when the row player plays
//     pure strategy i and the column player plays pure strategy j; the
//     column player's payoff is its negation (zero-sum).
//   - MixedStrategy[T] is a probability vector over one player's pure
//     strategies, with helpers for uniform and degenerate (pure)
//     distributions and a tolerance-based validity check.
//   - ExpectedPayoff evaluates a mixed strategy of one player into the
//     payoff vector seen across the opponent's pure strategies.
//   - BestResponse picks the opponent-facing optimum of such a vector:
//     the row player maximizes, the column player minimizes, and ties are
//     broken by the smallest index for determinism.
//   - Maximin / Minimax report the pure security levels of the two
//     players, and SaddlePoint detects a pure-strategy equilibrium
//     (maximin value equal to minimax value).
//   - SolveAnalytic solves a square game exactly through the two player
//     indifference linear systems, Gaussian elimination over the field.
//     Under rational arithmetic the strategies and value are exact,
//     which makes the method a cross-check for the iterative solver.
//
// Validation (at construction, before any solver runs):
//
//   - ErrEmptyMatrix — no rows, or a first row with no entries.
//   - ErrRaggedRows  — rows of unequal length (matrix not rectangular).
//
// SolveAnalytic failures:
//
//   - ErrNotSquare — the indifference systems need a square matrix.
//   - ErrNoAnalyticSolution — singular system or a negative strategy
//     component; no fully indifferent equilibrium exists.
//
// Complexity:
//
//   - New:            O(r·c) copy + validation.
//   - ExpectedPayoff: O(r·c).
//   - BestResponse:   O(n) over the given payoff vector.
//   - Maximin/Minimax/SaddlePoint: O(r·c).
//   - SolveAnalytic:  O(n³).
//
// Example usage:
//
//	rows := [][]field.Float{{1, -1}, {-1, 1}}
//	g, err := matrixgame.New(rows)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	i, v := g.Maximin() // best guaranteed row payoff over pure strategies
//	_ = i
//	_ = v
package matrixgame

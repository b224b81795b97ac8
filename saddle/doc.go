// Package saddle solves continuous two-player zero-sum games on bounded
// intervals whose payoff is convex in the minimizing variable and concave
// in the maximizing variable, by projected subgradient saddle-point
// iteration.
//
// Model:
//
//   - Game[T] carries two closed intervals [a,b] (the x player, who
//     minimizes) and [c,d] (the y player, who maximizes), the payoff
//     f(x,y) and its two partial (sub)gradients.
//   - Convexity of f in x and concavity in y are asserted by the caller
//     and never verified; behavior on a non-convex-concave input is
//     unspecified.
//   - Games come from three constructors: NewGame with explicit
//     gradients, FromSpec with exact symbolic gradients derived from a
//     parsed payoff expression, and NewQuadratic for the kernel
//     H(x,y) = ax² + by² + cxy + dx + ey with analytic partials
//     (and a closed-form unconstrained saddle via SolveClosedForm).
//
// Iteration scheme:
//
//   - The current point starts at the interval midpoints (or a
//     caller-supplied or seeded random start) and moves against the
//     gradient in x (descent) and along it in y (ascent) with the
//     diminishing step γ_k = γ₀/√k, then is clamped back into its
//     interval. Diminishing steps guarantee convergence of the running
//     averages for convex-concave payoffs even when raw iterates
//     oscillate, so the averages (x̄, ȳ) are what the solver reports.
//   - Termination tests the duality gap at the averages,
//     max_{y'} f(x̄, y') − min_{x'} f(x', ȳ), computed by deterministic
//     ternary search over each interval — valid because f(·, ȳ) is
//     unimodal (convex) and f(x̄, ·) is unimodal (concave).
//
// State machine (shared with the matrix solver):
//
//	StateInitialized → StateIterating → { StateConverged,
//	                                      StateMaxIterations,
//	                                      StateNumericError }
//
// Reaching the iteration cap is a normal terminal state: the Result
// carries the best averages and their gap with Converged=false. A
// numeric failure (division by the field's zero, non-finite value)
// aborts the run and surfaces the last valid averages as a partial
// result.
//
// Errors (sentinel, validated before iterating):
//
//   - ErrNilGame          — the game is nil.
//   - ErrNilOptions       — the options pointer is nil.
//   - ErrNilPayoff        — payoff or a gradient function is nil.
//   - ErrBadInterval      — an interval has lo > hi.
//   - ErrBadEpsilon       — epsilon is not strictly positive.
//   - ErrBadMaxIterations — the iteration cap is not strictly positive.
//   - ErrBadStart         — the start point lies outside the intervals.
//   - ErrBadStepScale     — a negative step scale.
//   - ErrBadGapRefinement — a negative ternary-search refinement count.
//   - ErrDegenerate       — the quadratic closed form has a vanishing
//     denominator (no isolated saddle).
//
// Complexity:
//
//   - Time:  O(k·refine) payoff evaluations for k iterations.
//   - Space: O(1) — only the current point and running averages are
//     retained, independent of the iteration count.
//
// Example usage:
//
//	c, _ := gameparse.ParseContinuous[field.Float](
//	    "f(x,y) = x^2 - y^2, x in [-1,1], y in [-1,1]")
//	g, _ := saddle.FromSpec(c)
//	opts := saddle.DefaultOptions[field.Float](1e-4, 10000)
//	res, err := saddle.Solve(g, &opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.X, res.Y, res.Value)
package saddle

package saddle_test

import (
	"testing"

	"github.com/saddlekit/zerosum/field"
	"github.com/saddlekit/zerosum/gameparse"
	"github.com/saddlekit/zerosum/saddle"
)

// benchmarkSolve runs the solver with a fixed iteration budget. It resets
// the timer before entering the loop and fails on unexpected errors.
func benchmarkSolve(b *testing.B, g *saddle.Game[field.Float], iterations, refine int) {
	opts := saddle.DefaultOptions[field.Float](1e-12, iterations)
	opts.GapRefinement = refine
	opts.Start = &saddle.Point[field.Float]{X: 1, Y: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := saddle.Solve(g, &opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Quadratic100 benchmarks 100 iterations on the quadratic
// kernel with analytic gradients.
func BenchmarkSolve_Quadratic100(b *testing.B) {
	unit := saddle.Interval[field.Float]{Lo: 0, Hi: 1}
	q, err := saddle.NewQuadratic[field.Float](1, -2, 1, -1, 2, unit, unit)
	if err != nil {
		b.Fatalf("NewQuadratic failed: %v", err)
	}
	benchmarkSolve(b, q.Game(), 100, 48)
}

// BenchmarkSolve_Quadratic1000 benchmarks 1000 iterations of the same
// kernel; the cost is linear in the iteration budget.
func BenchmarkSolve_Quadratic1000(b *testing.B) {
	unit := saddle.Interval[field.Float]{Lo: 0, Hi: 1}
	q, err := saddle.NewQuadratic[field.Float](1, -2, 1, -1, 2, unit, unit)
	if err != nil {
		b.Fatalf("NewQuadratic failed: %v", err)
	}
	benchmarkSolve(b, q.Game(), 1000, 48)
}

// BenchmarkSolve_Symbolic100 benchmarks 100 iterations with payoff and
// gradients evaluated through the expression AST, measuring the
// interpretation overhead against the analytic kernel.
func BenchmarkSolve_Symbolic100(b *testing.B) {
	c, err := gameparse.ParseContinuous[field.Float](
		"f(x,y) = x^2 - 2*y^2 + x*y - x + 2*y, x in [0,1], y in [0,1]")
	if err != nil {
		b.Fatalf("ParseContinuous failed: %v", err)
	}
	g, err := saddle.FromSpec(c)
	if err != nil {
		b.Fatalf("FromSpec failed: %v", err)
	}
	benchmarkSolve(b, g, 100, 48)
}

// BenchmarkSolve_CoarseGap benchmarks 1000 iterations with a coarse
// 16-step gap search, the cheap configuration for exploratory runs.
func BenchmarkSolve_CoarseGap(b *testing.B) {
	unit := saddle.Interval[field.Float]{Lo: 0, Hi: 1}
	q, err := saddle.NewQuadratic[field.Float](1, -2, 1, -1, 2, unit, unit)
	if err != nil {
		b.Fatalf("NewQuadratic failed: %v", err)
	}
	benchmarkSolve(b, q.Game(), 1000, 16)
}

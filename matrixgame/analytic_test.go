package matrixgame_test

import (
	"testing"

	"github.com/saddlekit/zerosum/brownrobinson"
	"github.com/saddlekit/zerosum/field"
	"github.com/saddlekit/zerosum/matrixgame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frac builds p/q exactly or fails the test.
func frac(t *testing.T, p, q int64) field.Rat {
	t.Helper()
	v, err := field.RatFromFrac(p, q)
	require.NoError(t, err)

	return v
}

// ratGame builds an exact game from integer rows or fails the test.
func ratGame(t *testing.T, rows [][]int64) *matrixgame.Game[field.Rat] {
	t.Helper()
	var zero field.Rat
	out := make([][]field.Rat, len(rows))
	for i, row := range rows {
		out[i] = make([]field.Rat, len(row))
		for j, v := range row {
			out[i][j] = zero.FromInt(v)
		}
	}
	g, err := matrixgame.New(out)
	require.NoError(t, err)

	return g
}

// TestSolveAnalytic_Exact solves [[2,1,3],[3,0,1],[1,2,1]] under rational
// arithmetic and checks the equilibrium entry for entry: row strategy
// (1/4, 1/8, 5/8), column strategy (1/2, 1/2, 0), value 3/2.
func TestSolveAnalytic_Exact(t *testing.T) {
	var zero field.Rat
	g := ratGame(t, [][]int64{{2, 1, 3}, {3, 0, 1}, {1, 2, 1}})

	sol, err := g.SolveAnalytic()
	require.NoError(t, err)

	wantRow := []field.Rat{frac(t, 1, 4), frac(t, 1, 8), frac(t, 5, 8)}
	wantCol := []field.Rat{frac(t, 1, 2), frac(t, 1, 2), zero}
	for i := range wantRow {
		assert.Equal(t, 0, sol.Row[i].Cmp(wantRow[i]), "row[%d]", i)
		assert.Equal(t, 0, sol.Col[i].Cmp(wantCol[i]), "col[%d]", i)
	}
	assert.Equal(t, 0, sol.Value.Cmp(frac(t, 3, 2)), "value must be exactly 3/2")

	assert.True(t, sol.Row.Valid(zero), "row strategy sums to 1 exactly")
	assert.True(t, sol.Col.Valid(zero), "column strategy sums to 1 exactly")

	// Indifference: every opponent pure strategy yields the value.
	perCol, err := g.ExpectedPayoff(sol.Row, matrixgame.Row)
	require.NoError(t, err)
	perRow, err := g.ExpectedPayoff(sol.Col, matrixgame.Column)
	require.NoError(t, err)
	for i := range perCol {
		assert.Equal(t, 0, perCol[i].Cmp(sol.Value), "column %d payoff", i)
		assert.Equal(t, 0, perRow[i].Cmp(sol.Value), "row %d payoff", i)
	}
}

// TestSolveAnalytic_MatchingPennies verifies the textbook equilibrium:
// uniform mixes and value zero, exactly.
func TestSolveAnalytic_MatchingPennies(t *testing.T) {
	var zero field.Rat
	g := ratGame(t, [][]int64{{1, -1}, {-1, 1}})

	sol, err := g.SolveAnalytic()
	require.NoError(t, err)

	half := frac(t, 1, 2)
	for i := 0; i < 2; i++ {
		assert.Equal(t, 0, sol.Row[i].Cmp(half))
		assert.Equal(t, 0, sol.Col[i].Cmp(half))
	}
	assert.Equal(t, 0, sol.Value.Cmp(zero))
}

// TestSolveAnalytic_Validation verifies the rejection paths: non-square
// matrices, singular indifference systems, and games whose equilibrium
// involves strict preference.
func TestSolveAnalytic_Validation(t *testing.T) {
	g := newGame(t, [][]field.Float{{1, -1, 0}})
	_, err := g.SolveAnalytic()
	assert.ErrorIs(t, err, matrixgame.ErrNotSquare)

	// Identical rows make the system singular.
	g = newGame(t, [][]field.Float{{1, 1}, {1, 1}})
	_, err = g.SolveAnalytic()
	assert.ErrorIs(t, err, matrixgame.ErrNoAnalyticSolution)

	// [[3,5],[2,7]] has a pure saddle point; forcing indifference drives
	// a row weight negative.
	g = newGame(t, [][]field.Float{{3, 5}, {2, 7}})
	_, err = g.SolveAnalytic()
	assert.ErrorIs(t, err, matrixgame.ErrNoAnalyticSolution)
}

// TestSolveAnalytic_CrossChecksFictitiousPlay solves [[12,9,18],[15,22,5],
// [16,3,12]] analytically (value 1719/130) and confirms the fictitious
// play bounds bracket it.
func TestSolveAnalytic_CrossChecksFictitiousPlay(t *testing.T) {
	g := newGame(t, [][]field.Float{{12, 9, 18}, {15, 22, 5}, {16, 3, 12}})

	sol, err := g.SolveAnalytic()
	require.NoError(t, err)

	v := 1719.0 / 130.0
	assert.InDelta(t, v, float64(sol.Value), 1e-12)
	assert.InDelta(t, 79.0/130.0, float64(sol.Row[0]), 1e-12)
	assert.InDelta(t, 45.0/130.0, float64(sol.Row[1]), 1e-12)
	assert.InDelta(t, 6.0/130.0, float64(sol.Row[2]), 1e-12)
	assert.InDelta(t, 78.0/130.0, float64(sol.Col[0]), 1e-12)
	assert.InDelta(t, 17.0/130.0, float64(sol.Col[1]), 1e-12)
	assert.InDelta(t, 35.0/130.0, float64(sol.Col[2]), 1e-12)

	opts := brownrobinson.DefaultOptions[field.Float](0.05, 5000)
	res, err := brownrobinson.Solve(g, &opts)
	require.NoError(t, err)

	// The tracked bounds bracket the true value at every iteration count.
	assert.LessOrEqual(t, float64(res.Lower), v+1e-9)
	assert.GreaterOrEqual(t, float64(res.Upper), v-1e-9)
	assert.InDelta(t, v, float64(res.Value), float64(res.Upper.Sub(res.Lower)))
}

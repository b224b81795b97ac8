package matrixgame_test

import (
	"testing"

	"github.com/saddlekit/zerosum/field"
	"github.com/saddlekit/zerosum/matrixgame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGame builds a Float game or fails the test.
func newGame(t *testing.T, rows [][]field.Float) *matrixgame.Game[field.Float] {
	t.Helper()
	g, err := matrixgame.New(rows)
	require.NoError(t, err)

	return g
}

// TestNew_Validation verifies construction-time rejection of empty and
// ragged matrices.
func TestNew_Validation(t *testing.T) {
	_, err := matrixgame.New[field.Float](nil)
	assert.ErrorIs(t, err, matrixgame.ErrEmptyMatrix, "no rows")

	_, err = matrixgame.New([][]field.Float{{}})
	assert.ErrorIs(t, err, matrixgame.ErrEmptyMatrix, "empty first row")

	_, err = matrixgame.New([][]field.Float{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrixgame.ErrRaggedRows, "ragged rows")
}

// TestGame_Accessors verifies shape, entries and defensive copies.
func TestGame_Accessors(t *testing.T) {
	g := newGame(t, [][]field.Float{{1, -1, 0}, {-1, 1, 2}})

	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, field.Float(2), g.At(1, 2))
	assert.Equal(t, []field.Float{1, -1, 0}, g.Row(0))
	assert.Equal(t, []field.Float{-1, 1}, g.Col(1))

	// Mutating a returned row must not change the game.
	row := g.Row(0)
	row[0] = 99
	assert.Equal(t, field.Float(1), g.At(0, 0), "Row must return a copy")
}

// TestExpectedPayoff verifies both orientations on matching pennies.
func TestExpectedPayoff(t *testing.T) {
	g := newGame(t, [][]field.Float{{1, -1}, {-1, 1}})

	uniform, err := matrixgame.Uniform[field.Float](2)
	require.NoError(t, err)

	// Uniform row strategy neutralizes every column response.
	got, err := g.ExpectedPayoff(uniform, matrixgame.Row)
	require.NoError(t, err)
	assert.Equal(t, []field.Float{0, 0}, got)

	// A pure column strategy exposes the matching column.
	pure, err := matrixgame.Pure[field.Float](2, 1)
	require.NoError(t, err)
	got, err = g.ExpectedPayoff(pure, matrixgame.Column)
	require.NoError(t, err)
	assert.Equal(t, []field.Float{-1, 1}, got)
}

// TestExpectedPayoff_Validation verifies strategy shape checks.
func TestExpectedPayoff_Validation(t *testing.T) {
	g := newGame(t, [][]field.Float{{1, -1}, {-1, 1}})

	_, err := g.ExpectedPayoff(matrixgame.MixedStrategy[field.Float]{1}, matrixgame.Row)
	assert.ErrorIs(t, err, matrixgame.ErrBadStrategy, "wrong length")

	_, err = g.ExpectedPayoff(matrixgame.MixedStrategy[field.Float]{2, -1}, matrixgame.Row)
	assert.ErrorIs(t, err, matrixgame.ErrBadStrategy, "negative entry")
}

// TestBestResponse verifies optimal indices and smallest-index ties.
func TestBestResponse(t *testing.T) {
	g := newGame(t, [][]field.Float{{1, -1}, {-1, 1}})

	idx, err := g.BestResponse([]field.Float{3, 5}, matrixgame.Row)
	require.NoError(t, err)
	assert.Equal(t, 1, idx, "row player maximizes")

	idx, err = g.BestResponse([]field.Float{3, 5}, matrixgame.Column)
	require.NoError(t, err)
	assert.Equal(t, 0, idx, "column player minimizes")

	idx, err = g.BestResponse([]field.Float{4, 4}, matrixgame.Row)
	require.NoError(t, err)
	assert.Equal(t, 0, idx, "ties break to the smallest index")

	_, err = g.BestResponse([]field.Float{1, 2, 3}, matrixgame.Row)
	assert.ErrorIs(t, err, matrixgame.ErrBadStrategy, "wrong length")
}

// TestMaximinMinimax verifies the pure security levels on a game with no
// pure equilibrium and on one with a saddle point.
func TestMaximinMinimax(t *testing.T) {
	// [[4,0],[0,1]]: row minima (0,0) → maximin 0 at row 0;
	// column maxima (4,1) → minimax 1 at column 1. No saddle.
	g := newGame(t, [][]field.Float{{4, 0}, {0, 1}})

	i, lo := g.Maximin()
	assert.Equal(t, 0, i)
	assert.Equal(t, field.Float(0), lo)

	j, hi := g.Minimax()
	assert.Equal(t, 1, j)
	assert.Equal(t, field.Float(1), hi)

	_, _, ok := g.SaddlePoint()
	assert.False(t, ok, "maximin 0 != minimax 1")

	// [[1,0],[2,1]]: maximin 1 at row 1, minimax 1 at column 1 → saddle.
	g = newGame(t, [][]field.Float{{1, 0}, {2, 1}})
	i, j, ok = g.SaddlePoint()
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, 1, j)
	assert.Equal(t, field.Float(1), g.At(i, j))
}

// TestMixedStrategy_Helpers verifies Uniform, Pure and Valid, including
// exact sums under rational arithmetic.
func TestMixedStrategy_Helpers(t *testing.T) {
	var zero field.Rat

	s, err := matrixgame.Uniform[field.Rat](3)
	require.NoError(t, err)
	assert.True(t, s.Valid(zero), "1/3+1/3+1/3 must equal 1 exactly")

	p, err := matrixgame.Pure[field.Rat](3, 2)
	require.NoError(t, err)
	assert.True(t, p.Valid(zero))
	assert.Equal(t, 0, p[2].Cmp(zero.One()))

	_, err = matrixgame.Uniform[field.Rat](0)
	assert.ErrorIs(t, err, matrixgame.ErrBadStrategy)

	_, err = matrixgame.Pure[field.Rat](3, 3)
	assert.ErrorIs(t, err, matrixgame.ErrBadIndex)

	bad := matrixgame.MixedStrategy[field.Rat]{zero.One(), zero.One().Neg()}
	assert.False(t, bad.Valid(zero), "negative entries are invalid")
}

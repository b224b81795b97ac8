package matrixgame

import "github.com/saddlekit/zerosum/field"

// Game is a finite two-player zero-sum game. The matrix is stored
// row-major as a defensive copy of the caller's rows, so a Game is
// immutable after construction and safe to share across parallel solves.
type Game[T field.Elem[T]] struct {
	rows, cols int
	a          []T // row-major: entry (i, j) at a[i*cols+j]
}

// New validates rows and builds a Game.
//
// Validation (in order):
//  1. rows must contain at least one row (ErrEmptyMatrix).
//  2. the first row must contain at least one entry (ErrEmptyMatrix).
//  3. every row must have the first row's length (ErrRaggedRows).
//
// Complexity: O(r·c) for the defensive copy.
func New[T field.Elem[T]](rows [][]T) (*Game[T], error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMatrix
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, ErrEmptyMatrix
	}

	a := make([]T, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrRaggedRows
		}
		a = append(a, row...)
	}

	return &Game[T]{rows: len(rows), cols: cols, a: a}, nil
}

// Rows returns the row player's pure-strategy count.
func (g *Game[T]) Rows() int { return g.rows }

// Cols returns the column player's pure-strategy count.
func (g *Game[T]) Cols() int { return g.cols }

// At returns the row player's payoff for the pure pair (i, j).
// Indices must be in range; At panics otherwise, like slice indexing.
func (g *Game[T]) At(i, j int) T { return g.a[i*g.cols+j] }

// Row returns a copy of row i.
func (g *Game[T]) Row(i int) []T {
	out := make([]T, g.cols)
	copy(out, g.a[i*g.cols:(i+1)*g.cols])

	return out
}

// Col returns a copy of column j.
func (g *Game[T]) Col(j int) []T {
	out := make([]T, g.rows)
	for i := 0; i < g.rows; i++ {
		out[i] = g.a[i*g.cols+j]
	}

	return out
}

// ExpectedPayoff evaluates the mixed strategy s held by player who into
// the row player's expected payoff against each of the opponent's pure
// strategies:
//
//   - who == Row:    result[j] = Σ_i s[i]·a[i][j], length Cols().
//   - who == Column: result[i] = Σ_j a[i][j]·s[j], length Rows().
//
// s must have the holder's strategy count and no negative entries
// (ErrBadStrategy otherwise); normalization to total mass one is the
// caller's contract, checked separately via MixedStrategy.Valid.
func (g *Game[T]) ExpectedPayoff(s MixedStrategy[T], who Player) ([]T, error) {
	var zero T
	n := g.rows
	if who == Column {
		n = g.cols
	}
	if len(s) != n {
		return nil, ErrBadStrategy
	}
	for _, p := range s {
		if p.Cmp(zero) < 0 {
			return nil, ErrBadStrategy
		}
	}

	if who == Row {
		out := make([]T, g.cols)
		for j := 0; j < g.cols; j++ {
			acc := zero
			for i := 0; i < g.rows; i++ {
				acc = acc.Add(s[i].Mul(g.a[i*g.cols+j]))
			}
			out[j] = acc
		}

		return out, nil
	}

	out := make([]T, g.rows)
	for i := 0; i < g.rows; i++ {
		acc := zero
		for j := 0; j < g.cols; j++ {
			acc = acc.Add(g.a[i*g.cols+j].Mul(s[j]))
		}
		out[i] = acc
	}

	return out, nil
}

// BestResponse returns the index of the optimal entry of payoffs for the
// responding player who: the row player maximizes, the column player
// minimizes. Ties are broken by the smallest index so repeated solves
// are deterministic.
//
// payoffs must have the responder's strategy count (ErrBadStrategy).
func (g *Game[T]) BestResponse(payoffs []T, who Player) (int, error) {
	n := g.rows
	if who == Column {
		n = g.cols
	}
	if len(payoffs) != n {
		return 0, ErrBadStrategy
	}

	best := 0
	for i := 1; i < n; i++ {
		c := payoffs[i].Cmp(payoffs[best])
		if (who == Row && c > 0) || (who == Column && c < 0) {
			best = i
		}
	}

	return best, nil
}

// Maximin returns the row player's pure security level: the row index i
// maximizing min_j a[i][j], with the smallest index on ties, and the
// corresponding value (the lower pure value of the game).
func (g *Game[T]) Maximin() (int, T) {
	bestIdx := 0
	var bestVal T
	for i := 0; i < g.rows; i++ {
		rowMin := g.a[i*g.cols]
		for j := 1; j < g.cols; j++ {
			if g.a[i*g.cols+j].Cmp(rowMin) < 0 {
				rowMin = g.a[i*g.cols+j]
			}
		}
		if i == 0 || rowMin.Cmp(bestVal) > 0 {
			bestIdx, bestVal = i, rowMin
		}
	}

	return bestIdx, bestVal
}

// Minimax returns the column player's pure security level: the column
// index j minimizing max_i a[i][j], with the smallest index on ties, and
// the corresponding value (the upper pure value of the game).
func (g *Game[T]) Minimax() (int, T) {
	bestIdx := 0
	var bestVal T
	for j := 0; j < g.cols; j++ {
		colMax := g.a[j]
		for i := 1; i < g.rows; i++ {
			if g.a[i*g.cols+j].Cmp(colMax) > 0 {
				colMax = g.a[i*g.cols+j]
			}
		}
		if j == 0 || colMax.Cmp(bestVal) < 0 {
			bestIdx, bestVal = j, colMax
		}
	}

	return bestIdx, bestVal
}

// SaddlePoint reports a pure-strategy equilibrium: when the maximin and
// minimax values coincide, the pair (i, j) of the two security strategies
// is a saddle point and the game value is At(i, j). ok is false when the
// pure values differ and only mixed equilibria exist.
func (g *Game[T]) SaddlePoint() (i, j int, ok bool) {
	i, lo := g.Maximin()
	j, hi := g.Minimax()

	return i, j, lo.Cmp(hi) == 0
}

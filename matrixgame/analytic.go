package matrixgame

import "github.com/saddlekit/zerosum/field"

// AnalyticSolution is an exact equilibrium of a square game in which
// every pure strategy of each player yields the game value against the
// opponent's mixed strategy.
type AnalyticSolution[T field.Elem[T]] struct {
	// Row and Col are the players' equilibrium mixed strategies.
	Row, Col MixedStrategy[T]
	// Value is the exact game value.
	Value T
}

// SolveAnalytic solves the square game through the two indifference
// systems
//
//	Aᵀ·x − v·1 = 0, Σx = 1   (row strategy x)
//	A·y  − v·1 = 0, Σy = 1   (column strategy y)
//
// each a linear system of n+1 equations in the strategy and the game
// value v, solved by Gaussian elimination over the field: exact under
// rational arithmetic, the direct counterpart of the fictitious-play
// bounds it can cross-check.
//
// The method requires full indifference to hold at the equilibrium.
// ErrNotSquare is returned for a non-square matrix;
// ErrNoAnalyticSolution when a system is singular or a strategy
// component comes out negative (the equilibrium then involves strict
// preference and is out of this method's reach, as at a pure saddle
// point).
//
// Complexity: O(n³) time, O(n²) extra space.
func (g *Game[T]) SolveAnalytic() (*AnalyticSolution[T], error) {
	if g.rows != g.cols {
		return nil, ErrNotSquare
	}
	n := g.rows

	x, ok := solveLinear(g.indifference(Row))
	if !ok {
		return nil, ErrNoAnalyticSolution
	}
	y, ok := solveLinear(g.indifference(Column))
	if !ok {
		return nil, ErrNoAnalyticSolution
	}

	var zero T
	for i := 0; i < n; i++ {
		if x[i].Cmp(zero) < 0 || y[i].Cmp(zero) < 0 {
			return nil, ErrNoAnalyticSolution
		}
	}

	return &AnalyticSolution[T]{
		Row:   MixedStrategy[T](x[:n]),
		Col:   MixedStrategy[T](y[:n]),
		Value: x[n],
	}, nil
}

// indifference assembles the (n+1)×(n+1) augmented system for one
// player: the payoff block (Aᵀ for Row, A for Column) with a −1 column
// for the game value, a row of ones for the mass constraint, and the
// right-hand side (0, ..., 0, 1).
func (g *Game[T]) indifference(who Player) ([]T, []T) {
	var zero T
	one := zero.One()
	n := g.rows
	m := n + 1

	a := make([]T, m*m)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if who == Row {
				a[i*m+j] = g.a[j*g.cols+i]
			} else {
				a[i*m+j] = g.a[i*g.cols+j]
			}
		}
		a[i*m+n] = one.Neg()
		a[n*m+i] = one
	}

	b := make([]T, m)
	b[n] = one

	return a, b
}

// solveLinear solves the square system a·x = b in place by Gaussian
// elimination with partial pivoting on the largest absolute entry.
// a is row-major with len(b) rows. ok is false when the matrix is
// singular.
func solveLinear[T field.Elem[T]](a, b []T) ([]T, bool) {
	var zero T
	n := len(b)

	for col := 0; col < n; col++ {
		pivot := col
		best := absElem(a[col*n+col])
		for r := col + 1; r < n; r++ {
			if c := absElem(a[r*n+col]); c.Cmp(best) > 0 {
				pivot, best = r, c
			}
		}
		if best.Cmp(zero) == 0 {
			return nil, false
		}
		if pivot != col {
			for j := col; j < n; j++ {
				a[pivot*n+j], a[col*n+j] = a[col*n+j], a[pivot*n+j]
			}
			b[pivot], b[col] = b[col], b[pivot]
		}

		for r := col + 1; r < n; r++ {
			if a[r*n+col].Cmp(zero) == 0 {
				continue
			}
			// Pivot is nonzero, division cannot fail.
			factor, _ := a[r*n+col].Div(a[col*n+col])
			a[r*n+col] = zero
			for j := col + 1; j < n; j++ {
				a[r*n+j] = a[r*n+j].Sub(factor.Mul(a[col*n+j]))
			}
			b[r] = b[r].Sub(factor.Mul(b[col]))
		}
	}

	x := make([]T, n)
	for r := n - 1; r >= 0; r-- {
		acc := b[r]
		for j := r + 1; j < n; j++ {
			acc = acc.Sub(a[r*n+j].Mul(x[j]))
		}
		// Diagonal entries are the surviving pivots, all nonzero.
		v, _ := acc.Div(a[r*n+r])
		x[r] = v
	}

	return x, true
}

// absElem returns |v|.
func absElem[T field.Elem[T]](v T) T {
	var zero T
	if v.Cmp(zero) < 0 {
		return v.Neg()
	}

	return v
}

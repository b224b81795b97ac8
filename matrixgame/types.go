package matrixgame

import (
	"errors"

	"github.com/saddlekit/zerosum/field"
)

// Sentinel errors returned by matrix game construction and queries.
var (
	// ErrEmptyMatrix indicates a payoff matrix with no rows or no columns.
	ErrEmptyMatrix = errors.New("matrixgame: payoff matrix must be non-empty")

	// ErrRaggedRows indicates rows of unequal length; the payoff matrix
	// must be rectangular.
	ErrRaggedRows = errors.New("matrixgame: payoff matrix rows must have equal length")

	// ErrBadStrategy indicates a mixed strategy of the wrong length or
	// with a negative entry.
	ErrBadStrategy = errors.New("matrixgame: invalid mixed strategy")

	// ErrBadIndex indicates a pure-strategy index outside the matrix.
	ErrBadIndex = errors.New("matrixgame: strategy index out of range")

	// ErrNotSquare indicates an analytic solve on a non-square matrix.
	ErrNotSquare = errors.New("matrixgame: analytic solve requires a square matrix")

	// ErrNoAnalyticSolution indicates that the indifference system is
	// singular or yields a negative probability, so no fully indifferent
	// equilibrium exists.
	ErrNoAnalyticSolution = errors.New("matrixgame: no fully mixed analytic solution")
)

// Player identifies which side of the zero-sum game a strategy or a
// query refers to.
type Player int

const (
	// Row is the maximizing player; its payoffs are the matrix entries.
	Row Player = iota

	// Column is the minimizing player; its payoffs are the negated
	// matrix entries.
	Column
)

// String returns "row" or "column".
func (p Player) String() string {
	if p == Row {
		return "row"
	}

	return "column"
}

// MixedStrategy is a probability distribution over one player's pure
// strategies: non-negative entries summing to one within a caller-chosen
// tolerance.
type MixedStrategy[T field.Elem[T]] []T

// Uniform returns the uniform distribution over n pure strategies.
// n must be positive.
func Uniform[T field.Elem[T]](n int) (MixedStrategy[T], error) {
	if n < 1 {
		return nil, ErrBadStrategy
	}
	var zero T
	p, err := zero.One().Div(zero.FromInt(int64(n))) // n ≥ 1, cannot fail
	if err != nil {
		return nil, err
	}
	s := make(MixedStrategy[T], n)
	for i := range s {
		s[i] = p
	}

	return s, nil
}

// Pure returns the degenerate distribution concentrated on strategy i
// out of n.
func Pure[T field.Elem[T]](n, i int) (MixedStrategy[T], error) {
	if n < 1 || i < 0 || i >= n {
		return nil, ErrBadIndex
	}
	var zero T
	s := make(MixedStrategy[T], n)
	for j := range s {
		s[j] = zero
	}
	s[i] = zero.One()

	return s, nil
}

// Sum returns the total probability mass of s.
func (s MixedStrategy[T]) Sum() T {
	var total T
	for _, p := range s {
		total = total.Add(p)
	}

	return total
}

// Valid reports whether every entry is non-negative and the mass equals
// one within tol (|sum − 1| ≤ tol). Under exact arithmetic pass a zero
// tolerance.
func (s MixedStrategy[T]) Valid(tol T) bool {
	var zero T
	for _, p := range s {
		if p.Cmp(zero) < 0 {
			return false
		}
	}
	diff := s.Sum().Sub(zero.One())
	if diff.Cmp(zero) < 0 {
		diff = diff.Neg()
	}

	return diff.Cmp(tol) <= 0
}

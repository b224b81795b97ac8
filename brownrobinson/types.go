package brownrobinson

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/saddlekit/zerosum/field"
	"github.com/saddlekit/zerosum/matrixgame"
)

// Sentinel errors returned by Solve before any iteration runs.
var (
	// ErrNilGame indicates that a nil *matrixgame.Game was passed.
	ErrNilGame = errors.New("brownrobinson: game is nil")

	// ErrNilOptions indicates that a nil *Options was passed.
	ErrNilOptions = errors.New("brownrobinson: options are nil")

	// ErrBadEpsilon indicates a non-positive accepted gap.
	ErrBadEpsilon = errors.New("brownrobinson: epsilon must be positive")

	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("brownrobinson: max iterations must be positive")

	// ErrBadStart indicates a start strategy index outside the matrix.
	ErrBadStart = errors.New("brownrobinson: start strategy index out of range")
)

// State is a phase of the solver's state machine.
type State int

const (
	// StateInitialized is the pre-iteration phase: accumulators zeroed,
	// start strategies chosen.
	StateInitialized State = iota

	// StateIterating is the active fictitious-play loop.
	StateIterating

	// StateConverged is terminal: the bound gap reached epsilon.
	StateConverged

	// StateMaxIterations is terminal: the iteration cap was reached
	// before epsilon. The result still carries the best bounds achieved.
	StateMaxIterations

	// StateNumericError is terminal: arithmetic produced a non-finite or
	// undefined value and the solve aborted with its last valid state.
	StateNumericError
)

// String names the state for logs and diagnostics.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateIterating:
		return "iterating"
	case StateConverged:
		return "converged"
	case StateMaxIterations:
		return "max-iterations"
	case StateNumericError:
		return "numeric-error"
	default:
		return "unknown"
	}
}

// Step is one row of the iteration trace: the state of the method after
// iteration K. Delivered through Options.Trace for reporting and tests.
type Step[T field.Elem[T]] struct {
	// K is the 1-based iteration number.
	K int
	// RowMove and ColMove are the pure strategies played at K.
	RowMove, ColMove int
	// RowScores and ColScores are copies of the cumulative payoff
	// vectors after the move.
	RowScores, ColScores []T
	// Upper and Lower are the per-iteration value bounds
	// max(RowScores)/K and min(ColScores)/K.
	Upper, Lower T
	// Gap is the running bound gap minUpper − maxLower, the quantity
	// compared against epsilon.
	Gap T
}

// Options configures a single Solve call.
//
// Epsilon       – accepted bound gap; must be > 0.
// MaxIterations – iteration cap; must be > 0.
// StartRow/Col  – first pure strategies (default 0,0); ignored when
//
//	RandomStart is set.
//
// RandomStart   – draw the first strategies from the seeded source.
// RandomTies    – break best-response ties uniformly among the optimal
//
//	indices (the original method's behavior) instead of
//	picking the smallest index.
//
// Seed          – seed for the pseudo-random source; a given seed makes
//
//	randomized runs reproducible.
//
// Logger        – structured logger for per-iteration trace events;
//
//	defaults to a no-op logger.
//
// Trace         – optional callback receiving every iteration's Step.
type Options[T field.Elem[T]] struct {
	Epsilon       T
	MaxIterations int
	StartRow      int
	StartCol      int
	RandomStart   bool
	RandomTies    bool
	Seed          uint64
	Logger        zerolog.Logger
	Trace         func(Step[T])
}

// DefaultOptions returns Options with the required epsilon and iteration
// cap, deterministic start (0, 0), smallest-index tie-breaking and a
// no-op logger.
func DefaultOptions[T field.Elem[T]](epsilon T, maxIterations int) Options[T] {
	return Options[T]{
		Epsilon:       epsilon,
		MaxIterations: maxIterations,
		Logger:        zerolog.Nop(),
	}
}

// Result is the outcome of a Solve call in any terminal state.
type Result[T field.Elem[T]] struct {
	// State is the terminal state reached.
	State State
	// Converged reports State == StateConverged. When false the caller
	// decides whether the [Lower, Upper] interval is acceptable.
	Converged bool
	// Value is the midpoint of the final bounds.
	Value T
	// Lower and Upper are the best value bounds achieved.
	Lower, Upper T
	// RowStrategy and ColStrategy are the players' empirical strategies:
	// visit-frequency vectors over the performed iterations.
	RowStrategy, ColStrategy matrixgame.MixedStrategy[T]
	// Iterations is the number of completed iterations.
	Iterations int
	// Err is the underlying numeric failure when State is
	// StateNumericError, nil otherwise.
	Err error
}

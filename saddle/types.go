package saddle

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/saddlekit/zerosum/field"
)

// Sentinel errors returned by game construction and Solve validation.
var (
	// ErrNilGame indicates that a nil *Game was passed.
	ErrNilGame = errors.New("saddle: game is nil")

	// ErrNilOptions indicates that a nil *Options was passed.
	ErrNilOptions = errors.New("saddle: options are nil")

	// ErrNilPayoff indicates a nil payoff or gradient function.
	ErrNilPayoff = errors.New("saddle: payoff and gradient functions must be non-nil")

	// ErrBadInterval indicates a strategy interval with lo > hi.
	ErrBadInterval = errors.New("saddle: interval lower bound exceeds upper bound")

	// ErrBadEpsilon indicates a non-positive accepted duality gap.
	ErrBadEpsilon = errors.New("saddle: epsilon must be positive")

	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("saddle: max iterations must be positive")

	// ErrBadStart indicates a start point outside the strategy intervals.
	ErrBadStart = errors.New("saddle: start point outside the strategy intervals")

	// ErrBadStepScale indicates a negative step scale γ₀.
	ErrBadStepScale = errors.New("saddle: step scale must be non-negative")

	// ErrBadGapRefinement indicates a negative ternary-search refinement
	// count.
	ErrBadGapRefinement = errors.New("saddle: gap refinement must be non-negative")

	// ErrDegenerate indicates a quadratic kernel whose closed-form
	// saddle denominator vanishes (4ab − c² = 0 or b = 0).
	ErrDegenerate = errors.New("saddle: quadratic kernel has no isolated saddle point")
)

// State is a phase of the solver's state machine.
type State int

const (
	// StateInitialized is the pre-iteration phase.
	StateInitialized State = iota

	// StateIterating is the active projected-subgradient loop.
	StateIterating

	// StateConverged is terminal: the duality gap reached epsilon.
	StateConverged

	// StateMaxIterations is terminal: the iteration cap was reached
	// before epsilon. The result still carries the best averages.
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

// Point is a pure strategy pair of the continuous game.
type Point[T field.Elem[T]] struct {
	X, Y T
}

// Step is one row of the iteration trace, delivered through
// Options.Trace after each completed iteration.
type Step[T field.Elem[T]] struct {
	// K is the 1-based iteration number.
	K int
	// X and Y are the raw iterates after the projected update.
	X, Y T
	// AvgX and AvgY are the running averages over the first K iterates.
	AvgX, AvgY T
	// Gap is the duality gap evaluated at the averages.
	Gap T
}

// Options configures a single Solve call.
//
// Epsilon       – accepted duality gap; must be > 0.
// MaxIterations – iteration cap; must be > 0.
// Start         – optional start point; defaults to the interval
//
//	midpoints; must lie inside the intervals.
//
// RandomStart   – draw the start point uniformly from the intervals
//
//	using the seeded source (overrides Start).
//
// Seed          – seed for the pseudo-random source.
// StepScale     – γ₀ of the diminishing step γ₀/√k; zero selects half
//
//	the wider interval's width.
//
// GapRefinement – ternary-search iterations per gap evaluation; zero
//
//	selects 48 (bracket below 10⁻⁸ of the interval).
//
// Logger        – structured logger for per-iteration trace events;
//
//	defaults to a no-op logger.
//
// Trace         – optional callback receiving every iteration's Step.
type Options[T field.Elem[T]] struct {
	Epsilon       T
	MaxIterations int
	Start         *Point[T]
	RandomStart   bool
	Seed          uint64
	StepScale     T
	GapRefinement int
	Logger        zerolog.Logger
	Trace         func(Step[T])
}

// DefaultOptions returns Options with the required epsilon and iteration
// cap, midpoint start, default step scale and refinement, and a no-op
// logger.
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
	// Converged reports State == StateConverged.
	Converged bool
	// X and Y are the running-average strategies — the solution
	// estimate, since averages converge even when raw iterates
	// oscillate.
	X, Y T
	// Value is the payoff at the averages, f(X, Y).
	Value T
	// Lower and Upper bracket the value: min_{x'} f(x', Y) and
	// max_{y'} f(X, y') from the final gap evaluation.
	Lower, Upper T
	// Gap is Upper − Lower, the quantity compared against epsilon.
	Gap T
	// Iterations is the number of completed iterations.
	Iterations int
	// Err is the underlying numeric failure when State is
	// StateNumericError, nil otherwise.
	Err error
}

// Package search defines options, results and sentinel errors for the
// best-first burrow solver.
//
// Options:
//
//	– ReturnPath:    if true, Result.Path holds every state from start to goal.
//	– Prune:         expand with burrow.State.Moves (default) or AllMoves.
//	– Heuristic:     order the frontier by cost + Estimate (default) or by cost alone.
//	– Logger:        logrus logger for debug tracing (default logrus.StandardLogger()).
//	– ProgressEvery: log a progress line every N expansions (0 disables).
//
// Errors (sentinel):
//
//	– ErrNilParams         if the params pointer is nil.
//	– ErrDimensionMismatch if the start state does not fit the params.
//	– ErrNoSolution        if the frontier empties before a solved state is popped.
package search

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/burrow/burrow"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilParams indicates that a nil *burrow.Params was passed to Solve.
	ErrNilParams = errors.New("search: params are nil")

	// ErrDimensionMismatch indicates a start state whose room count, hallway
	// length or room occupancy does not fit the params.
	ErrDimensionMismatch = errors.New("search: state does not fit params")

	// ErrNoSolution indicates that every reachable state was expanded without
	// reaching a solved one. Valid puzzles never produce it; it signals a
	// malformed instance (for example piece counts that do not match room
	// capacities) and no cost may be trusted when it is returned.
	ErrNoSolution = errors.New("search: no solution reachable")

	// ErrBadProgressEvery indicates a negative ProgressEvery.
	ErrBadProgressEvery = errors.New("search: ProgressEvery must be non-negative")
)

// Options configures Solve.
type Options struct {
	ReturnPath    bool               // fill Result.Path
	Prune         bool               // expand with Moves instead of AllMoves
	Heuristic     bool               // add Estimate to frontier keys
	Logger        logrus.FieldLogger // debug tracing
	ProgressEvery int                // expansions between progress lines; 0 disables
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithReturnPath requests the sequence of states along the optimal solution.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithoutPruning expands every legal move instead of committing to direct
// moves home. The result is the same; the search is slower.
func WithoutPruning() Option {
	return func(o *Options) {
		o.Prune = false
	}
}

// WithoutHeuristic turns the search into uniform-cost search: frontier keys
// are the exact cost so far.
func WithoutHeuristic() Option {
	return func(o *Options) {
		o.Heuristic = false
	}
}

// WithLogger sets the logger used for debug tracing.
// A nil logger keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithProgressEvery logs a progress line every n expansions at debug level.
// Solve panics when given this option with n < 0.
func WithProgressEvery(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadProgressEvery.Error())
		}
		o.ProgressEvery = n
	}
}

// DefaultOptions returns the default Solve configuration:
//   - ReturnPath:    false
//   - Prune:         true
//   - Heuristic:     true
//   - Logger:        logrus.StandardLogger()
//   - ProgressEvery: 0
func DefaultOptions() Options {
	return Options{
		ReturnPath:    false,
		Prune:         true,
		Heuristic:     true,
		Logger:        logrus.StandardLogger(),
		ProgressEvery: 0,
	}
}

// Result is the outcome of a successful Solve.
type Result struct {
	Cost     int64          // minimal total cost
	Expanded int            // states popped and expanded
	Pushed   int            // bundles pushed onto the frontier
	Path     []burrow.State // start to goal, only with WithReturnPath
}

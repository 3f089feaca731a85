// SPDX-License-Identifier: MIT

package driver

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/pairwise/prefmatrix"
)

// ErrNilOracle is returned when Sweep is called without an oracle.
var ErrNilOracle = errors.New("driver: oracle is nil")

// DefaultMaxPasses bounds the fixpoint loop enabled by WithFixpoint.
// Every pass but the last fills at least one of the n² cells, so n² passes
// always suffice; the constant only guards against misuse.
const DefaultMaxPasses = 1 << 16

// Step describes one visited pair.
type Step struct {
	// Index is the 0-based position of the pair in the sweep.
	Index int
	// Row and Col are the matrix coordinates (Row < Col).
	Row, Col int
	// A and B are the identifiers of the row and column alternatives.
	A, B string
	// Relation is the value of (Row,Col) after the oracle; Unknown in OnCompare.
	Relation prefmatrix.Relation
	// Asked reports whether a judgment was requested for this pair.
	Asked bool
	// Inferred is the number of cells filled by propagation after this pair.
	Inferred int
	// Matrix is the live session matrix. Observers must not mutate it.
	Matrix *prefmatrix.Matrix
}

// Observer is notified after each pair has been resolved and propagated.
type Observer func(Step) error

// Summary aggregates a finished sweep.
type Summary struct {
	// Pairs is N(N-1)/2, the number of pairs visited.
	Pairs int
	// Asked is the number of judgments requested.
	Asked int
	// Cached is the number of pairs already known when reached.
	Cached int
	// Inferred is the number of cells filled by propagation.
	Inferred int
	// Unresolved counts upper-triangle pairs still Unknown at the end.
	Unresolved int
}

// Option configures Sweep.
type Option func(*Options)

// Options holds Sweep settings.
type Options struct {
	// OnCompare, if non-nil, runs before each pair is resolved.
	OnCompare func(Step) error

	// Observers are notified, in registration order, after each pair.
	Observers []Observer

	// Fixpoint repeats propagation until nothing changes instead of running
	// a single pass per pair.
	Fixpoint bool

	// MaxPasses bounds the fixpoint loop. Default DefaultMaxPasses.
	MaxPasses int

	// Logger receives one debug line per pair and an info line per sweep.
	Logger zerolog.Logger
}

// DefaultOptions returns Options with:
//   - no hooks or observers
//   - single-pass propagation
//   - a no-op logger
func DefaultOptions() Options {
	return Options{
		OnCompare: nil,
		Observers: nil,
		Fixpoint:  false,
		MaxPasses: DefaultMaxPasses,
		Logger:    zerolog.Nop(),
	}
}

// WithObserver registers an Observer. Nil observers are ignored.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observers = append(o.Observers, fn)
		}
	}
}

// WithOnCompare installs a hook that runs before each pair is resolved.
func WithOnCompare(fn func(Step) error) Option {
	return func(o *Options) {
		o.OnCompare = fn
	}
}

// WithFixpoint switches propagation to the converging loop.
func WithFixpoint(enabled bool) Option {
	return func(o *Options) {
		o.Fixpoint = enabled
	}
}

// WithLogger installs a logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxPasses bounds the fixpoint loop. Non-positive values keep the default.
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxPasses = n
		}
	}
}

// SPDX-License-Identifier: MIT

package oracle

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/pairwise/prefmatrix"
)

var (
	// ErrNeedInput is returned by a Source that cannot produce another
	// judgment: a closed terminal, an exhausted script, a pair missing from a
	// batch file.
	ErrNeedInput = errors.New("oracle: judgment source needs more input")

	// ErrNilSource is returned when New is called without a Source.
	ErrNilSource = errors.New("oracle: source is nil")
)

// Query describes one pending comparison: the matrix coordinates and the
// identifiers of the row (A) and column (B) alternatives.
type Query struct {
	Row, Col int
	A, B     string
	// Attempt counts rejected answers for this pair so far (0 on first ask).
	Attempt int
}

// Source supplies judgments. Judge blocks until it has an answer for q.
// Any value it returns outside {Better, Equal, Worse} is rejected by the
// Oracle, which then calls Judge again with Attempt incremented.
type Source interface {
	Judge(ctx context.Context, q Query) (prefmatrix.Relation, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, q Query) (prefmatrix.Relation, error)

// Judge calls f(ctx, q).
func (f SourceFunc) Judge(ctx context.Context, q Query) (prefmatrix.Relation, error) {
	return f(ctx, q)
}

// Option configures an Oracle.
type Option func(*Options)

// Options holds Oracle settings.
type Options struct {
	// Logger receives debug lines for cache hits and warnings for rejected
	// judgments. Defaults to a no-op logger.
	Logger zerolog.Logger
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLogger installs a logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

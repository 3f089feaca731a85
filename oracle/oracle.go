// SPDX-License-Identifier: MIT

package oracle

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pairwise/prefmatrix"
)

// Oracle answers "how does A relate to B?" for a fixed alternative list,
// consulting the matrix first and the Source second.
type Oracle struct {
	alts   prefmatrix.Alternatives
	src    Source
	opts   Options
	asked  int
	cached int
}

// New returns an Oracle over alts that asks src for unknown pairs.
// Errors: ErrNilSource, or the alternative list validation error.
func New(alts prefmatrix.Alternatives, src Source, opts ...Option) (*Oracle, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if err := alts.Validate(); err != nil {
		return nil, fmt.Errorf("oracle.New: %w", err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Oracle{alts: alts, src: src, opts: o}, nil
}

// Alternatives returns the list the Oracle resolves identifiers against.
func (o *Oracle) Alternatives() prefmatrix.Alternatives {
	return o.alts
}

// Asked returns how many judgments were recorded so far.
func (o *Oracle) Asked() int { return o.asked }

// Cached returns how many calls were answered from the matrix.
func (o *Oracle) Cached() int { return o.cached }

// Resolve looks a and b up by exact identifier and resolves the pair (a,b).
// The order matters: resolving (b,a) reads and writes the mirrored cell.
func (o *Oracle) Resolve(ctx context.Context, m *prefmatrix.Matrix, a, b string) (prefmatrix.Relation, error) {
	i, err := o.alts.Index(a)
	if err != nil {
		return prefmatrix.Unknown, fmt.Errorf("oracle.Resolve: %w", err)
	}
	j, err := o.alts.Index(b)
	if err != nil {
		return prefmatrix.Unknown, fmt.Errorf("oracle.Resolve: %w", err)
	}
	r, _, err := o.ResolveAt(ctx, m, i, j)

	return r, err
}

// ResolveAt returns m[i][j] when it is known (asked == false). Otherwise it
// requests judgments from the Source until one is valid, stores it at (i,j)
// and returns it with asked == true. Nothing is written on error.
func (o *Oracle) ResolveAt(ctx context.Context, m *prefmatrix.Matrix, i, j int) (rel prefmatrix.Relation, asked bool, err error) {
	if err = prefmatrix.ValidateSameSize(o.alts, m); err != nil {
		return prefmatrix.Unknown, false, fmt.Errorf("oracle.ResolveAt: %w", err)
	}
	if rel, err = m.At(i, j); err != nil {
		return prefmatrix.Unknown, false, fmt.Errorf("oracle.ResolveAt: %w", err)
	}
	if rel.Known() {
		o.cached++
		o.opts.Logger.Debug().
			Str("a", o.alts[i]).Str("b", o.alts[j]).
			Stringer("relation", rel).
			Msg("pair already resolved")

		return rel, false, nil
	}

	q := Query{Row: i, Col: j, A: o.alts[i], B: o.alts[j]}
	if rel, err = o.acquire(ctx, q); err != nil {
		return prefmatrix.Unknown, false, err
	}
	if err = m.Set(i, j, rel); err != nil {
		return prefmatrix.Unknown, false, fmt.Errorf("oracle.ResolveAt: %w", err)
	}
	o.asked++

	return rel, true, nil
}

// acquire loops on the Source until it yields a judgment in {1,2,3}.
func (o *Oracle) acquire(ctx context.Context, q Query) (prefmatrix.Relation, error) {
	for {
		if err := ctx.Err(); err != nil {
			return prefmatrix.Unknown, err
		}
		rel, err := o.src.Judge(ctx, q)
		if err != nil {
			return prefmatrix.Unknown, fmt.Errorf("judge %s vs %s: %w", q.A, q.B, err)
		}
		if rel.Valid() {
			return rel, nil
		}
		o.opts.Logger.Warn().
			Str("a", q.A).Str("b", q.B).
			Int("value", int(rel)).Int("attempt", q.Attempt).
			Msg("judgment rejected, asking again")
		q.Attempt++
	}
}

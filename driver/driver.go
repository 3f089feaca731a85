// SPDX-License-Identifier: MIT

package driver

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pairwise/closure"
	"github.com/katalvlaran/pairwise/oracle"
	"github.com/katalvlaran/pairwise/prefmatrix"
)

// sweeper encapsulates mutable sweep state.
type sweeper struct {
	ctx  context.Context
	m    *prefmatrix.Matrix
	o    *oracle.Oracle
	alts prefmatrix.Alternatives
	opts Options
	sum  *Summary
}

// Sweep resolves every pair of the oracle's alternative list against m.
// m must be N×N for the N alternatives; seed its diagonal beforehand.
// On error the returned Summary reflects the pairs completed so far.
func Sweep(ctx context.Context, m *prefmatrix.Matrix, o *oracle.Oracle, opts ...Option) (*Summary, error) {
	if o == nil {
		return nil, ErrNilOracle
	}
	alts := o.Alternatives()
	if err := prefmatrix.ValidateSameSize(alts, m); err != nil {
		return nil, fmt.Errorf("driver.Sweep: %w", err)
	}

	opt := DefaultOptions()
	for _, fn := range opts {
		fn(&opt)
	}
	if opt.MaxPasses <= 0 {
		opt.MaxPasses = DefaultMaxPasses
	}

	n := len(alts)
	s := &sweeper{
		ctx:  ctx,
		m:    m,
		o:    o,
		alts: alts,
		opts: opt,
		sum:  &Summary{Pairs: n * (n - 1) / 2},
	}

	err := s.loop()
	s.sum.Unresolved = m.CountUnknown()
	if err != nil {
		return s.sum, err
	}
	opt.Logger.Info().
		Int("pairs", s.sum.Pairs).
		Int("asked", s.sum.Asked).
		Int("cached", s.sum.Cached).
		Int("inferred", s.sum.Inferred).
		Int("unresolved", s.sum.Unresolved).
		Msg("sweep finished")

	return s.sum, nil
}

// loop walks the upper triangle row by row.
func (s *sweeper) loop() error {
	n := len(s.alts)
	idx := 0
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err := s.ctx.Err(); err != nil {
				return err
			}
			if err := s.visit(idx, i, j); err != nil {
				return err
			}
			idx++
		}
	}

	return nil
}

// visit runs OnCompare, resolve, propagate and the observers for one pair.
func (s *sweeper) visit(idx, i, j int) error {
	step := Step{Index: idx, Row: i, Col: j, A: s.alts[i], B: s.alts[j], Matrix: s.m}

	if s.opts.OnCompare != nil {
		if err := s.opts.OnCompare(step); err != nil {
			return fmt.Errorf("driver: OnCompare at %s vs %s: %w", step.A, step.B, err)
		}
	}

	rel, asked, err := s.o.ResolveAt(s.ctx, s.m, i, j)
	if err != nil {
		return fmt.Errorf("driver: resolve %s vs %s: %w", step.A, step.B, err)
	}
	step.Relation, step.Asked = rel, asked
	if asked {
		s.sum.Asked++
	} else {
		s.sum.Cached++
	}

	if step.Inferred, err = s.propagate(); err != nil {
		return fmt.Errorf("driver: propagate after %s vs %s: %w", step.A, step.B, err)
	}
	s.sum.Inferred += step.Inferred

	s.opts.Logger.Debug().
		Int("step", idx).
		Str("a", step.A).Str("b", step.B).
		Stringer("relation", rel).
		Bool("asked", asked).
		Int("inferred", step.Inferred).
		Msg("pair resolved")

	for _, obs := range s.opts.Observers {
		if err = obs(step); err != nil {
			return fmt.Errorf("driver: observer at %s vs %s: %w", step.A, step.B, err)
		}
	}

	return nil
}

func (s *sweeper) propagate() (int, error) {
	if s.opts.Fixpoint {
		_, filled, err := closure.Converge(s.m, s.opts.MaxPasses)
		return filled, err
	}

	return closure.Propagate(s.m)
}

// SPDX-License-Identifier: MIT

package oracle

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pairwise/prefmatrix"
)

// Sequence hands out a fixed list of judgments in order, one per Judge call,
// regardless of the pair asked. Invalid entries are returned as they are so
// that the Oracle rejects them and moves on to the next one.
type Sequence struct {
	judgments []prefmatrix.Relation
	next      int
}

// NewSequence returns a Sequence over js.
func NewSequence(js ...prefmatrix.Relation) *Sequence {
	cp := make([]prefmatrix.Relation, len(js))
	copy(cp, js)

	return &Sequence{judgments: cp}
}

// Judge returns the next judgment or ErrNeedInput once the list is used up.
func (s *Sequence) Judge(_ context.Context, q Query) (prefmatrix.Relation, error) {
	if s.next >= len(s.judgments) {
		return prefmatrix.Unknown, fmt.Errorf("sequence exhausted after %d judgments at %s vs %s: %w",
			len(s.judgments), q.A, q.B, ErrNeedInput)
	}
	r := s.judgments[s.next]
	s.next++

	return r, nil
}

// Remaining returns how many judgments have not been handed out yet.
func (s *Sequence) Remaining() int {
	return len(s.judgments) - s.next
}

// Pair identifies an ordered comparison by alternative identifiers.
type Pair struct {
	A, B string
}

// ByPair answers from a table keyed by (A,B). Pairs absent from the table
// go to the fallback Source, or fail with ErrNeedInput when there is none.
type ByPair struct {
	judgments map[Pair]prefmatrix.Relation
	fallback  Source
}

// NewByPair validates every entry of js (each must be a judgment in 1..3)
// and returns a ByPair over a copy of it. fallback may be nil.
func NewByPair(js map[Pair]prefmatrix.Relation, fallback Source) (*ByPair, error) {
	cp := make(map[Pair]prefmatrix.Relation, len(js))
	for p, r := range js {
		if !r.Valid() {
			return nil, fmt.Errorf("oracle.NewByPair: %s vs %s = %d: %w", p.A, p.B, r, prefmatrix.ErrInvalidRelation)
		}
		cp[p] = r
	}

	return &ByPair{judgments: cp, fallback: fallback}, nil
}

// Judge looks (q.A, q.B) up in the table.
func (b *ByPair) Judge(ctx context.Context, q Query) (prefmatrix.Relation, error) {
	if r, ok := b.judgments[Pair{A: q.A, B: q.B}]; ok {
		return r, nil
	}
	if b.fallback != nil {
		return b.fallback.Judge(ctx, q)
	}

	return prefmatrix.Unknown, fmt.Errorf("no judgment for %s vs %s: %w", q.A, q.B, ErrNeedInput)
}

// Len returns the number of pairs in the table.
func (b *ByPair) Len() int {
	return len(b.judgments)
}

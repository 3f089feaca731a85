// SPDX-License-Identifier: MIT

package oracle

import (
	"context"

	"github.com/katalvlaran/pairwise/prefmatrix"
)

// Judgment is one accepted answer: A relates to B as Relation.
type Judgment struct {
	A, B     string
	Relation prefmatrix.Relation
}

// Recorder forwards to another Source and keeps every valid judgment it
// returns, in order, so a session can be replayed through ByPair later.
type Recorder struct {
	src Source
	log []Judgment
}

// NewRecorder wraps src.
func NewRecorder(src Source) *Recorder {
	return &Recorder{src: src}
}

// Judge forwards to the wrapped Source and records valid answers.
func (r *Recorder) Judge(ctx context.Context, q Query) (prefmatrix.Relation, error) {
	rel, err := r.src.Judge(ctx, q)
	if err == nil && rel.Valid() {
		r.log = append(r.log, Judgment{A: q.A, B: q.B, Relation: rel})
	}

	return rel, err
}

// Judgments returns a copy of the recorded judgments.
func (r *Recorder) Judgments() []Judgment {
	out := make([]Judgment, len(r.log))
	copy(out, r.log)

	return out
}

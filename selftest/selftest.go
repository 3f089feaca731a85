// SPDX-License-Identifier: MIT

// Package selftest is the built-in battery run by `pairwise test`. It checks
// the engine end to end on the bundled data set, independently of go test.
package selftest

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pairwise/closure"
	"github.com/katalvlaran/pairwise/oracle"
	"github.com/katalvlaran/pairwise/prefmatrix"
	"github.com/katalvlaran/pairwise/rank"
)

// Check is the outcome of one battery entry.
type Check struct {
	Name     string
	Passed   bool
	Failures []string
}

func (c *Check) failf(format string, args ...any) {
	c.Failures = append(c.Failures, fmt.Sprintf(format, args...))
}

// Result aggregates the battery.
type Result struct {
	Checks []Check
}

// Passed counts passing checks.
func (r *Result) Passed() int {
	n := 0
	for _, c := range r.Checks {
		if c.Passed {
			n++
		}
	}

	return n
}

// Total is the number of checks run.
func (r *Result) Total() int { return len(r.Checks) }

// AllPassed reports whether every check passed.
func (r *Result) AllPassed() bool { return r.Passed() == r.Total() }

// Percentage is Passed/Total*100, or 0 for an empty battery.
func (r *Result) Percentage() float64 {
	if r.Total() == 0 {
		return 0
	}

	return float64(r.Passed()) / float64(r.Total()) * 100
}

// check is one battery entry.
type check struct {
	name string
	fn   func(ctx context.Context, alts prefmatrix.Alternatives, c *Check)
}

var battery = []check{
	{"compare", checkCompare},
	{"matrix_initialization", checkDiagonal},
	{"ranked_pairs", checkRankPairs},
	{"transitive_relations", checkPropagation},
}

// Run executes the battery against alts. The compare check needs the
// identifiers 2111 and 3111 among alts.
func Run(ctx context.Context, alts prefmatrix.Alternatives) *Result {
	res := &Result{Checks: make([]Check, 0, len(battery))}
	for _, b := range battery {
		c := Check{Name: b.name}
		b.fn(ctx, alts, &c)
		c.Passed = len(c.Failures) == 0
		res.Checks = append(res.Checks, c)
	}

	return res
}

// checkCompare resolves (2111,3111), then the mirrored pair, then the
// diagonal, and verifies that a repeated pair is served from the matrix.
func checkCompare(ctx context.Context, alts prefmatrix.Alternatives, c *Check) {
	m, err := prefmatrix.NewIdentity(len(alts))
	if err != nil {
		c.failf("build matrix: %v", err)
		return
	}
	seq := oracle.NewSequence(prefmatrix.Better, prefmatrix.Worse)
	o, err := oracle.New(alts, seq)
	if err != nil {
		c.failf("build oracle: %v", err)
		return
	}
	i, errI := alts.Index("2111")
	j, errJ := alts.Index("3111")
	if errI != nil || errJ != nil {
		c.failf("alternatives 2111 and 3111 are required")
		return
	}

	cell := func(r, k int) prefmatrix.Relation {
		v, _ := m.At(r, k)
		return v
	}

	if rel, err := o.Resolve(ctx, m, "2111", "3111"); err != nil || rel != prefmatrix.Better {
		c.failf("expected '2111' to be better than '3111', got %v (%v)", rel, err)
	}
	if cell(i, j) != prefmatrix.Better {
		c.failf("matrix value not updated correctly for '2111' vs '3111'")
	}
	if cell(j, i) != prefmatrix.Unknown {
		c.failf("matrix value updated incorrectly for '2111' vs '3111'")
	}

	if rel, err := o.Resolve(ctx, m, "3111", "2111"); err != nil || rel != prefmatrix.Worse {
		c.failf("expected '3111' to be worse than '2111', got %v (%v)", rel, err)
	}
	if cell(i, j) != prefmatrix.Better {
		c.failf("matrix value not updated correctly for '3111' vs '2111'")
	}
	if cell(j, i) != prefmatrix.Worse {
		c.failf("matrix value updated incorrectly for '3111' vs '2111'")
	}

	if rel, err := o.Resolve(ctx, m, "2111", "2111"); err != nil || rel != prefmatrix.Equal {
		c.failf("expected '2111' and '2111' to be equal, got %v (%v)", rel, err)
	}
	if rel, err := o.Resolve(ctx, m, "2111", "3111"); err != nil || rel != prefmatrix.Better {
		c.failf("repeated '2111' vs '3111' changed to %v (%v)", rel, err)
	}
	if o.Asked() != 2 {
		c.failf("expected 2 judgments requested, got %d", o.Asked())
	}
}

func checkDiagonal(_ context.Context, alts prefmatrix.Alternatives, c *Check) {
	m, err := prefmatrix.NewIdentity(len(alts))
	if err != nil {
		c.failf("build matrix: %v", err)
		return
	}
	for i := 0; i < m.Size(); i++ {
		if v, _ := m.At(i, i); v != prefmatrix.Equal {
			c.failf("matrix value not initialized correctly at position [%d][%d]", i, i)
		}
	}
}

func checkRankPairs(_ context.Context, alts prefmatrix.Alternatives, c *Check) {
	pairs := rank.Pair(alts)
	if len(pairs) != len(alts) {
		c.failf("expected %d pairs, got %d", len(alts), len(pairs))
		return
	}
	for i, p := range pairs {
		if p.ID != alts[i] || p.Rank != i+1 {
			c.failf("incorrect pair at index %d: %+v", i, p)
		}
	}
}

func checkPropagation(_ context.Context, _ prefmatrix.Alternatives, c *Check) {
	m, err := prefmatrix.FromRows([][]int{
		{2, 1, 0, 0},
		{0, 2, 1, 0},
		{0, 0, 2, 1},
		{0, 0, 0, 2},
	})
	if err != nil {
		c.failf("build matrix: %v", err)
		return
	}
	want := [][]int{
		{2, 1, 1, 1},
		{0, 2, 1, 1},
		{0, 0, 2, 1},
		{0, 0, 0, 2},
	}
	if _, err = closure.Propagate(m); err != nil {
		c.failf("propagate: %v", err)
		return
	}
	for i, row := range want {
		for j, w := range row {
			if got, _ := m.At(i, j); int(got) != w {
				c.failf("matrix value not updated correctly at position [%d][%d]: expected %d, got %d", i, j, w, got)
			}
		}
	}
}

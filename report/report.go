// SPDX-License-Identifier: MIT

// Package report renders session state as text: the preference matrix after
// each step, the alternative listings, the cross-scale tables and the
// self-test outcome. It only reads what the core packages produce.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pairwise/crossscale"
	"github.com/katalvlaran/pairwise/driver"
	"github.com/katalvlaran/pairwise/prefmatrix"
	"github.com/katalvlaran/pairwise/rank"
	"github.com/katalvlaran/pairwise/selftest"
)

// Reporter writes reports to w in the configured Mode.
type Reporter struct {
	w    io.Writer
	mode Mode
}

// New returns a Reporter writing to w.
func New(w io.Writer, mode Mode) *Reporter {
	return &Reporter{w: w, mode: mode}
}

func (r *Reporter) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(r.w, format, args...)
	return err
}

// Matrix renders the diagonal and upper triangle of m with alternatives as
// row and column headers; lower-triangle cells are left blank.
func (r *Reporter) Matrix(title string, alts prefmatrix.Alternatives, m *prefmatrix.Matrix) error {
	if err := prefmatrix.ValidateSameSize(alts, m); err != nil {
		return fmt.Errorf("report.Matrix: %w", err)
	}

	g := newGrid(r.mode)
	head := make([]any, 0, len(alts)+1)
	head = append(head, "")
	for _, a := range alts {
		head = append(head, a)
	}
	g.header(head...)

	rows := m.Rows()
	for i, row := range rows {
		cells := make([]any, 0, len(row)+1)
		cells = append(cells, alts[i])
		for j, v := range row {
			if i > j {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, int(v))
		}
		g.row(cells...)
	}
	g.alignRight(2, len(alts)+1)

	if title == "" {
		return r.printf("%s\n", g.String())
	}

	return r.printf("%s\n%s\n", title, g.String())
}

// List prints ids on one tab-separated line under title.
func (r *Reporter) List(title string, ids []string) error {
	return r.printf("%s\n%s\n", title, strings.Join(ids, "\t"))
}

// Ranked prints the identifier/rank pairs as a table.
func (r *Reporter) Ranked(title string, rs []rank.Ranked) error {
	g := newGrid(r.mode)
	g.header("#", "Alternative", "Rank")
	for i, x := range rs {
		g.row(i+1, x.ID, x.Rank)
	}
	g.alignRight(3, 3)

	return r.printf("%s\n%s\n", title, g.String())
}

// Table prints an integer table without headers.
func (r *Reporter) Table(title string, t [][]int) error {
	var sb strings.Builder
	for _, row := range t {
		parts := make([]string, len(row))
		for j, v := range row {
			parts[j] = strconv.Itoa(v)
		}
		sb.WriteString(strings.Join(parts, " "))
		sb.WriteString("\n")
	}

	return r.printf("%s\n%s\n", title, sb.String())
}

// CrossScale prints every stage of a cross-scale validation and its misses.
func (r *Reporter) CrossScale(valuation [][]int, res *crossscale.Result) error {
	sections := []struct {
		title string
		t     [][]int
	}{
		{"Vector valuation (initial):", valuation},
		{"Initial by a single ordinal scale:", res.Mapped},
		{"Sorted initial by a single ordinal scale:", res.Sorted},
	}
	for _, s := range sections {
		if err := r.Table(s.title, s.t); err != nil {
			return err
		}
	}
	for _, m := range res.Misses {
		if err := r.printf("warning: %s\n", m); err != nil {
			return err
		}
	}
	if !res.HasBest() {
		return r.printf("The best alternative:\nnone, every row has a criterion missing from the scale\n\n")
	}

	return r.Table("The best alternative:", [][]int{res.BestValues()})
}

// CompareBanner is a driver OnCompare hook printing the pending pair and the
// current matrix.
func (r *Reporter) CompareBanner(alts prefmatrix.Alternatives) func(driver.Step) error {
	return func(s driver.Step) error {
		if err := r.printf("print 1 if better, 2 if equal, 3 if worse\nComparing %s and %s:\n", s.A, s.B); err != nil {
			return err
		}
		return r.Matrix("", alts, s.Matrix)
	}
}

// StepObserver is a driver Observer re-rendering the matrix after each step.
func (r *Reporter) StepObserver(alts prefmatrix.Alternatives) driver.Observer {
	return func(s driver.Step) error {
		return r.Matrix("Matrix updated:", alts, s.Matrix)
	}
}

// Summary prints sweep statistics.
func (r *Reporter) Summary(sum *driver.Summary) error {
	g := newGrid(r.mode)
	g.header("Pairs", "Asked", "Cached", "Inferred", "Unresolved")
	g.row(sum.Pairs, sum.Asked, sum.Cached, sum.Inferred, sum.Unresolved)

	return r.printf("Sweep summary:\n%s\n", g.String())
}

// SelfTest prints each check outcome, the pass count and the percentage.
func (r *Reporter) SelfTest(res *selftest.Result) error {
	for _, c := range res.Checks {
		status := "passed"
		if !c.Passed {
			status = "failed"
		}
		for _, f := range c.Failures {
			if err := r.printf("Test failed: %s\n", f); err != nil {
				return err
			}
		}
		if err := r.printf("%s %s.\n\n", c.Name, status); err != nil {
			return err
		}
	}

	if err := r.printf("Values of passed tests: %d\n", res.Passed()); err != nil {
		return err
	}
	if res.AllPassed() {
		return r.printf("All tests passed - 100%%\n")
	}

	return r.printf("Not all tests have been passed. Passed : %d of %d\nPercentage: %s%%\n\n",
		res.Passed(), res.Total(), strconv.FormatFloat(res.Percentage(), 'g', -1, 64))
}

// SPDX-License-Identifier: MIT

package crossscale

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Missing marks a mapped cell whose criterion code is absent from the scale.
const Missing = -1

var (
	// ErrShape indicates an empty or ragged table, or criteria whose column
	// count differs from the valuation's.
	ErrShape = errors.New("crossscale: invalid table shape")

	// ErrBadValuation indicates a valuation entry outside 1..len(criteria).
	ErrBadValuation = errors.New("crossscale: valuation entry out of range")

	// ErrNoCandidate indicates that every row holds Missing cells.
	ErrNoCandidate = errors.New("crossscale: no complete row to choose from")
)

// Miss records a criterion code that has no rank on the scale.
type Miss struct {
	Row, Col  int
	Criterion string
}

func (m Miss) String() string {
	return fmt.Sprintf("criterion %q at [%d][%d] not found in scale", m.Criterion, m.Row, m.Col)
}

// Result bundles every stage of Validate.
type Result struct {
	Mapped [][]int
	Sorted [][]int
	// Best is the index of the best row, or -1 when every row holds Missing.
	Best   int
	Misses []Miss
}

// HasBest reports whether a complete row was found.
func (r *Result) HasBest() bool {
	return r.Best >= 0 && r.Best < len(r.Sorted)
}

// BestValues returns the sorted row chosen as best, or nil without one.
func (r *Result) BestValues() []int {
	if !r.HasBest() {
		return nil
	}

	return r.Sorted[r.Best]
}

// IndexScale maps each code of scale to its 1-based position. For duplicated
// codes the first position wins.
func IndexScale(scale []string) map[string]int {
	idx := make(map[string]int, len(scale))
	for i, code := range scale {
		if _, ok := idx[code]; !ok {
			idx[code] = i + 1
		}
	}

	return idx
}

// checkRect returns the column count of a non-empty rectangular table.
func checkRect(name string, t [][]int) (int, error) {
	if len(t) == 0 || len(t[0]) == 0 {
		return 0, fmt.Errorf("%s is empty: %w", name, ErrShape)
	}
	cols := len(t[0])
	for i, row := range t {
		if len(row) != cols {
			return 0, fmt.Errorf("%s row %d has %d cells, want %d: %w", name, i, len(row), cols, ErrShape)
		}
	}

	return cols, nil
}

// MapToScale rewrites valuation through criteria onto scale ranks.
// Stage 1 (Validate): both tables rectangular with equal column counts.
// Stage 2 (Execute): cell (i,j) = index[criteria[valuation[i][j]-1][j]],
// or Missing with a Miss when the code is not indexed.
func MapToScale(valuation, criteria [][]int, index map[string]int) ([][]int, []Miss, error) {
	vc, err := checkRect("valuation", valuation)
	if err != nil {
		return nil, nil, err
	}
	cc, err := checkRect("criteria", criteria)
	if err != nil {
		return nil, nil, err
	}
	if vc != cc {
		return nil, nil, fmt.Errorf("valuation has %d columns, criteria %d: %w", vc, cc, ErrShape)
	}

	var misses []Miss
	out := make([][]int, len(valuation))
	for i, row := range valuation {
		out[i] = make([]int, vc)
		for j, level := range row {
			if level < 1 || level > len(criteria) {
				return nil, nil, fmt.Errorf("valuation[%d][%d]=%d, want 1..%d: %w", i, j, level, len(criteria), ErrBadValuation)
			}
			code := strconv.Itoa(criteria[level-1][j])
			rank, ok := index[code]
			if !ok {
				misses = append(misses, Miss{Row: i, Col: j, Criterion: code})
				rank = Missing
			}
			out[i][j] = rank
		}
	}

	return out, misses, nil
}

// SortRows returns a copy of t with every row sorted ascending.
func SortRows(t [][]int) [][]int {
	out := make([][]int, len(t))
	for i, row := range t {
		cp := make([]int, len(row))
		copy(cp, row)
		sort.Ints(cp)
		out[i] = cp
	}

	return out
}

// BestRow returns the index of the row with the smallest first element among
// rows free of Missing; the earliest row wins ties. Rows are expected sorted.
func BestRow(sorted [][]int) (int, error) {
	best := -1
	for i, row := range sorted {
		if len(row) == 0 || hasMissing(row) {
			continue
		}
		if best < 0 || row[0] < sorted[best][0] {
			best = i
		}
	}
	if best < 0 {
		return -1, ErrNoCandidate
	}

	return best, nil
}

func hasMissing(row []int) bool {
	for _, v := range row {
		if v == Missing {
			return true
		}
	}

	return false
}

// Validate runs MapToScale, SortRows and BestRow. Only structural errors
// are returned; misses are recorded in the Result, and when they leave no
// complete row Best is -1.
func Validate(valuation, criteria [][]int, scale []string) (*Result, error) {
	mapped, misses, err := MapToScale(valuation, criteria, IndexScale(scale))
	if err != nil {
		return nil, fmt.Errorf("crossscale.Validate: %w", err)
	}
	sorted := SortRows(mapped)
	best, err := BestRow(sorted)
	if err != nil && !errors.Is(err, ErrNoCandidate) {
		return nil, fmt.Errorf("crossscale.Validate: %w", err)
	}

	return &Result{Mapped: mapped, Sorted: sorted, Best: best, Misses: misses}, nil
}

// SPDX-License-Identifier: MIT

// Package prefmatrix - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep the N×N relation table in one flat buffer with offset i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep deterministic, fixed loop orders for every whole-matrix routine.
//
// Complexity quicksheet:
//   - New: O(n²) zero-init; At/Set: O(1); Clone/Rows/Equal: O(n²); SeedDiagonal: O(n).

package prefmatrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// Matrix is a square preference matrix.
//   - n is the number of alternatives.
//   - data is a flat buffer of length n*n in row-major order.
type Matrix struct {
	n    int
	data []Relation
}

var _ fmt.Stringer = (*Matrix)(nil)

// New creates an n×n matrix with every cell Unknown, the diagonal included.
// Callers seed the diagonal explicitly (SeedDiagonal) before the first sweep.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//
// Complexity: Time O(n²), Space O(n²).
func New(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidDimensions)
	}

	return &Matrix{n: n, data: make([]Relation, n*n)}, nil
}

// NewIdentity returns an n×n matrix whose diagonal is Equal and every other
// cell Unknown.
func NewIdentity(n int) (*Matrix, error) {
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	m.SeedDiagonal()

	return m, nil
}

// FromRows builds a matrix from a literal such as
//
//	[][]int{{2, 1, 0}, {0, 2, 1}, {0, 0, 2}}
//
// Stage 1 (Validate): non-empty, every row of length len(rows).
// Stage 2 (Execute): copy each value, rejecting codes outside 0..3.
//
// The diagonal is taken as given; call SeedDiagonal to force it.
func FromRows(rows [][]int) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidDimensions)
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", i, len(row), n, ErrNonSquare)
		}
	}

	m := &Matrix{n: n, data: make([]Relation, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := rows[i][j]
			if v < 0 || v > int(maxRelation) {
				return nil, matrixErrorf("FromRows", i, j, ErrInvalidRelation)
			}
			m.data[i*n+j] = Relation(v)
		}
	}

	return m, nil
}

// Size returns N, the number of alternatives the matrix spans.
func (m *Matrix) Size() int {
	return m.n
}

// indexOf computes the flat offset for (row, col) or returns ErrOutOfRange
// tagged with the calling method.
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At returns the relation stored at (row, col).
func (m *Matrix) At(row, col int) (Relation, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return Unknown, err
	}

	return m.data[idx], nil
}

// Set stores r at (row, col). The mirrored cell (col, row) is left untouched.
func (m *Matrix) Set(row, col int, r Relation) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if r > maxRelation {
		return matrixErrorf(ctxSet, row, col, ErrInvalidRelation)
	}
	m.data[idx] = r

	return nil
}

// SeedDiagonal writes Equal to every diagonal cell.
func (m *Matrix) SeedDiagonal() {
	for i := 0; i < m.n; i++ {
		m.data[i*m.n+i] = Equal
	}
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	data := make([]Relation, len(m.data))
	copy(data, m.data)

	return &Matrix{n: m.n, data: data}
}

// Rows returns a row-by-row snapshot. Mutating the result does not affect m.
func (m *Matrix) Rows() [][]Relation {
	out := make([][]Relation, m.n)
	for i := 0; i < m.n; i++ {
		row := make([]Relation, m.n)
		copy(row, m.data[i*m.n:(i+1)*m.n])
		out[i] = row
	}

	return out
}

// Equal reports whether o has the same size and cells as m.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// CountUnknown returns how many upper-triangle pairs (i<j) are still Unknown.
func (m *Matrix) CountUnknown() int {
	count := 0
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] == Unknown {
				count++
			}
		}
	}

	return count
}

// String renders the full matrix as bracketed rows of codes, e.g. "[2, 1]\n[0, 2]\n".
func (m *Matrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteString("[")
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

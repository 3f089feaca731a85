// SPDX-License-Identifier: MIT
// Package prefmatrix_test contains test helpers.

package prefmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairwise/prefmatrix"
)

// primaryAlternatives is the twelve-alternative list of the primary run.
var primaryAlternatives = prefmatrix.Alternatives{
	"2111", "3111", "4111", "1211", "1311", "1411",
	"1121", "1131", "1141", "1112", "1113", "1114",
}

// MustFromRows builds a matrix from a literal or fails the test.
func MustFromRows(t *testing.T, rows [][]int) *prefmatrix.Matrix {
	t.Helper()
	m, err := prefmatrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m *prefmatrix.Matrix, i, j int) prefmatrix.Relation {
	t.Helper()
	r, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return r
}

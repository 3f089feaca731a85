// SPDX-License-Identifier: MIT

package crossscale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairwise/crossscale"
)

var (
	valuation = [][]int{
		{4, 1, 2, 3},
		{3, 4, 1, 2},
		{2, 3, 4, 1},
		{1, 2, 3, 4},
	}
	criteria = [][]int{
		{1111, 1111, 1111, 1111},
		{2111, 1211, 1121, 1112},
		{3111, 1311, 1131, 1113},
		{4111, 1411, 1141, 1114},
	}
	scale = []string{
		"1111", "1121", "2111", "1211", "1112", "3111", "1113",
		"4111", "1131", "1311", "1114", "1411", "1141",
	}
)

func TestValidate_ReferenceTables(t *testing.T) {
	t.Parallel()

	res, err := crossscale.Validate(valuation, criteria, scale)
	require.NoError(t, err)
	assert.Empty(t, res.Misses)
	assert.Equal(t, [][]int{
		{8, 1, 2, 7},
		{6, 12, 1, 5},
		{3, 10, 13, 1},
		{1, 4, 9, 11},
	}, res.Mapped)
	assert.Equal(t, [][]int{
		{1, 2, 7, 8},
		{1, 5, 6, 12},
		{1, 3, 10, 13},
		{1, 4, 9, 11},
	}, res.Sorted)
	assert.Equal(t, 0, res.Best, "first row wins ties")
	assert.Equal(t, []int{1, 2, 7, 8}, res.BestValues())
}

func TestMapToScale_MissingCriterion(t *testing.T) {
	t.Parallel()

	idx := crossscale.IndexScale(scale)
	delete(idx, "1141")

	mapped, misses, err := crossscale.MapToScale(valuation, criteria, idx)
	require.NoError(t, err)
	assert.Equal(t, crossscale.Missing, mapped[2][2])
	require.Len(t, misses, 1)
	assert.Equal(t, crossscale.Miss{Row: 2, Col: 2, Criterion: "1141"}, misses[0])
	assert.Contains(t, misses[0].String(), `"1141"`)

	best, err := crossscale.BestRow(crossscale.SortRows(mapped))
	require.NoError(t, err)
	assert.Equal(t, 0, best, "row with Missing is skipped, not chosen for its -1")
}

func TestMapToScale_Errors(t *testing.T) {
	t.Parallel()

	idx := crossscale.IndexScale(scale)

	_, _, err := crossscale.MapToScale(nil, criteria, idx)
	assert.ErrorIs(t, err, crossscale.ErrShape)

	_, _, err = crossscale.MapToScale([][]int{{1, 1}, {1}}, criteria, idx)
	assert.ErrorIs(t, err, crossscale.ErrShape)

	_, _, err = crossscale.MapToScale([][]int{{1, 1}}, criteria, idx)
	assert.ErrorIs(t, err, crossscale.ErrShape)

	_, _, err = crossscale.MapToScale([][]int{{1, 5, 1, 1}}, criteria, idx)
	assert.ErrorIs(t, err, crossscale.ErrBadValuation)

	_, _, err = crossscale.MapToScale([][]int{{0, 1, 1, 1}}, criteria, idx)
	assert.ErrorIs(t, err, crossscale.ErrBadValuation)
}

func TestSortRows_CopiesInput(t *testing.T) {
	t.Parallel()

	in := [][]int{{3, 1, 2}}
	out := crossscale.SortRows(in)
	assert.Equal(t, [][]int{{1, 2, 3}}, out)
	assert.Equal(t, [][]int{{3, 1, 2}}, in)
}

func TestBestRow(t *testing.T) {
	t.Parallel()

	best, err := crossscale.BestRow([][]int{{4, 5}, {2, 9}, {2, 3}, {7, 8}})
	require.NoError(t, err)
	assert.Equal(t, 1, best)

	_, err = crossscale.BestRow([][]int{{-1, 2}})
	assert.ErrorIs(t, err, crossscale.ErrNoCandidate)

	_, err = crossscale.BestRow(nil)
	assert.ErrorIs(t, err, crossscale.ErrNoCandidate)
}

func TestIndexScale_FirstPositionWins(t *testing.T) {
	t.Parallel()

	idx := crossscale.IndexScale([]string{"a", "b", "a"})
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, idx)
}

func TestValidate_NoCompleteRowKeepsTables(t *testing.T) {
	t.Parallel()

	// Every valuation row selects level 1 somewhere, and level 1 is 1111.
	res, err := crossscale.Validate(valuation, criteria, scale[1:])
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.HasBest())
	assert.Equal(t, -1, res.Best)
	assert.Nil(t, res.BestValues())
	assert.Len(t, res.Misses, 4)
	assert.Equal(t, crossscale.Missing, res.Mapped[0][1])
	assert.Equal(t, crossscale.Missing, res.Sorted[0][0])
}

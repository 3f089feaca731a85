// SPDX-License-Identifier: MIT

package rank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairwise/rank"
)

var (
	working = []string{
		"2111", "3111", "4111", "1211", "1311", "1411",
		"1121", "1131", "1141", "1112", "1113", "1114",
	}
	scale = []string{
		"1111", "1121", "2111", "1211", "1112", "3111", "1113",
		"4111", "1131", "1311", "1114", "1411", "1141",
	}
)

func TestPair_AssignsWorkingPositions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []rank.Ranked{{"a", 1}, {"b", 2}, {"c", 3}}, rank.Pair([]string{"a", "b", "c"}))

	pairs := rank.Pair(working)
	require.Len(t, pairs, len(working))
	for i, p := range pairs {
		assert.Equal(t, working[i], p.ID)
		assert.Equal(t, i+1, p.Rank)
	}
	assert.Empty(t, rank.Pair(nil))
}

// Sorted by scale position; ranks are carried from the working list.
func TestRank_PrimaryRun(t *testing.T) {
	t.Parallel()

	got, err := rank.Rank(working, scale)
	require.NoError(t, err)
	assert.Equal(t, []rank.Ranked{
		{"1121", 7}, {"2111", 1}, {"1211", 4}, {"1112", 10},
		{"3111", 2}, {"1113", 11}, {"4111", 3}, {"1131", 8},
		{"1311", 5}, {"1114", 12}, {"1411", 6}, {"1141", 9},
	}, got)
}

func TestRank_FreshResultEachCall(t *testing.T) {
	t.Parallel()

	a, err := rank.Rank(working, scale)
	require.NoError(t, err)
	a[0].ID = "mutated"
	b, err := rank.Rank(working, scale)
	require.NoError(t, err)
	assert.Equal(t, "1121", b[0].ID)
	assert.Equal(t, "2111", working[0], "input is not reordered")
}

func TestRank_StableOnDuplicates(t *testing.T) {
	t.Parallel()

	got, err := rank.Rank([]string{"y", "x", "y"}, []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []rank.Ranked{{"x", 2}, {"y", 1}, {"y", 3}}, got)
	assert.Equal(t, []string{"x", "y", "y"}, rank.IDs(got))
}

func TestRank_NotFound(t *testing.T) {
	t.Parallel()

	got, err := rank.Rank([]string{"2111", "9999"}, scale)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, rank.ErrNotFound)
	assert.Contains(t, err.Error(), "9999")
}

func TestPosition(t *testing.T) {
	t.Parallel()

	i, err := rank.Position(scale, "1111")
	require.NoError(t, err)
	assert.Zero(t, i)

	_, err = rank.Position(nil, "1111")
	assert.ErrorIs(t, err, rank.ErrNotFound)
}

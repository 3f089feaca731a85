// SPDX-License-Identifier: MIT

// Package rank orders a working list of alternatives by an external reference
// scale (a single ordinal scale supplied by the decision-maker), independently
// of the preference matrix.
//
// Rank pairs each alternative with its 1-based position in the working list,
// then stable-sorts the pairs by first-match position in the reference scale.
// The Rank field keeps the working-list position; it is not renumbered after
// sorting. An alternative absent from the scale fails with ErrNotFound.
//
// Complexity: O(M·R + M log M) for M alternatives and a scale of length R.
package rank

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound indicates an alternative missing from the reference scale.
var ErrNotFound = errors.New("rank: alternative not in reference scale")

// Ranked pairs an alternative with the rank carried from the working list.
type Ranked struct {
	ID   string
	Rank int
}

// Pair returns (working[i], i+1) for every i, in list order.
func Pair(working []string) []Ranked {
	out := make([]Ranked, len(working))
	for i, id := range working {
		out[i] = Ranked{ID: id, Rank: i + 1}
	}

	return out
}

// Position returns the 0-based index of the first element of reference equal to id.
func Position(reference []string, id string) (int, error) {
	for i, v := range reference {
		if v == id {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%q: %w", id, ErrNotFound)
}

// Rank returns a fresh slice of working's pairs sorted by reference position.
// Ties (duplicate identifiers) keep their working-list order.
func Rank(working, reference []string) ([]Ranked, error) {
	pairs := Pair(working)
	pos := make(map[string]int, len(pairs))
	for _, p := range pairs {
		if _, ok := pos[p.ID]; ok {
			continue
		}
		at, err := Position(reference, p.ID)
		if err != nil {
			return nil, fmt.Errorf("rank.Rank: %w", err)
		}
		pos[p.ID] = at
	}

	sort.SliceStable(pairs, func(a, b int) bool {
		return pos[pairs[a].ID] < pos[pairs[b].ID]
	})

	return pairs, nil
}

// IDs extracts the identifiers of rs in order.
func IDs(rs []Ranked) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}

	return out
}

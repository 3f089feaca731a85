// SPDX-License-Identifier: MIT

package prefmatrix

import "fmt"

// Alternatives is the fixed, ordered list of alternative identifiers.
// The position of an identifier is its row/column index in the matrix.
type Alternatives []string

// Index returns the position of the first element equal to id.
func (a Alternatives) Index(id string) (int, error) {
	for i, v := range a {
		if v == id {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%q: %w", id, ErrUnknownAlternative)
}

// Validate rejects an empty list and duplicate identifiers.
func (a Alternatives) Validate() error {
	if len(a) == 0 {
		return ErrEmptyAlternatives
	}
	seen := make(map[string]int, len(a))
	for i, v := range a {
		if first, ok := seen[v]; ok {
			return fmt.Errorf("%q at %d and %d: %w", v, first, i, ErrDuplicateAlternative)
		}
		seen[v] = i
	}

	return nil
}

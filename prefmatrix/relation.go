// SPDX-License-Identifier: MIT

package prefmatrix

import (
	"fmt"
	"strings"
)

// Relation is the code stored in a preference-matrix cell.
type Relation uint8

const (
	// Unknown marks a pair that was neither judged nor inferred.
	Unknown Relation = iota
	// Better means the row alternative is strictly preferred to the column one.
	Better
	// Equal means both alternatives are equivalent; the diagonal is always Equal.
	Equal
	// Worse means the column alternative is strictly preferred to the row one.
	Worse
)

// maxRelation is the largest storable code.
const maxRelation = Worse

// Valid reports whether r is a judgment, i.e. one of Better, Equal, Worse.
func (r Relation) Valid() bool {
	return r >= Better && r <= Worse
}

// Known reports whether the cell carries any information.
func (r Relation) Known() bool {
	return r != Unknown
}

// String returns a short human-readable label.
func (r Relation) String() string {
	switch r {
	case Unknown:
		return "unknown"
	case Better:
		return "better"
	case Equal:
		return "equal"
	case Worse:
		return "worse"
	default:
		return fmt.Sprintf("Relation(%d)", uint8(r))
	}
}

// ParseRelation parses a decision-maker answer. Only "1", "2" and "3"
// (surrounding whitespace ignored) are accepted; everything else returns
// ErrInvalidRelation.
func ParseRelation(s string) (Relation, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return Better, nil
	case "2":
		return Equal, nil
	case "3":
		return Worse, nil
	default:
		return Unknown, fmt.Errorf("parse %q: %w", s, ErrInvalidRelation)
	}
}

// JudgmentOf converts an integer to a judgment, rejecting anything but 1..3.
func JudgmentOf(v int) (Relation, error) {
	if v < int(Better) || v > int(Worse) {
		return Unknown, fmt.Errorf("judgment %d: %w", v, ErrInvalidRelation)
	}

	return Relation(v), nil
}

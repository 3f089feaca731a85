// SPDX-License-Identifier: MIT
// Package: closure
//
// Contract:
//   - Square matrix (guaranteed by prefmatrix.Matrix).
//   - Unknown cells only are written; the pass never overwrites a known cell.

package closure

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pairwise/prefmatrix"
)

// ErrBadPassLimit indicates a non-positive pass limit for Converge.
var ErrBadPassLimit = errors.New("closure: pass limit must be > 0")

const (
	opPropagate = "Propagate"
	opConverge  = "Converge"
)

func closureErrorf(op string, err error) error {
	return fmt.Errorf("closure.%s: %w", op, err)
}

// implied returns the relation row i gains towards k through j, given
// rel = m[i][j] and step = m[j][k]. Unknown means nothing is implied.
func implied(rel, step prefmatrix.Relation) prefmatrix.Relation {
	switch rel {
	case prefmatrix.Better:
		// i > j and j >= k  ⇒  i > k
		if step == prefmatrix.Better || step == prefmatrix.Equal {
			return prefmatrix.Better
		}
	case prefmatrix.Worse:
		// i < j and j <= k  ⇒  i < k
		if step == prefmatrix.Worse || step == prefmatrix.Equal {
			return prefmatrix.Worse
		}
	}

	return prefmatrix.Unknown
}

// Propagate runs one transitive pass over m in place and returns the number
// of cells it filled.
//
// Loop order is fixed (i → j → k). m[i][j] is re-read for every j, so a cell
// filled while scanning row i is used as a stepping stone for the rest of the
// same row.
func Propagate(m *prefmatrix.Matrix) (int, error) {
	if err := prefmatrix.ValidateNotNil(m); err != nil {
		return 0, closureErrorf(opPropagate, err)
	}

	n := m.Size()
	var (
		i, j, k      int
		rel, step    prefmatrix.Relation
		cur, derived prefmatrix.Relation
		filled       int
		err          error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if rel, err = m.At(i, j); err != nil {
				return filled, closureErrorf(opPropagate, err)
			}
			if rel != prefmatrix.Better && rel != prefmatrix.Worse {
				continue // Unknown and Equal are not propagated from
			}
			for k = 0; k < n; k++ {
				if step, err = m.At(j, k); err != nil {
					return filled, closureErrorf(opPropagate, err)
				}
				if step == prefmatrix.Unknown {
					continue
				}
				if cur, err = m.At(i, k); err != nil {
					return filled, closureErrorf(opPropagate, err)
				}
				if cur != prefmatrix.Unknown {
					continue // existing value wins
				}
				if derived = implied(rel, step); derived == prefmatrix.Unknown {
					continue
				}
				if err = m.Set(i, k, derived); err != nil {
					return filled, closureErrorf(opPropagate, err)
				}
				filled++
			}
		}
	}

	return filled, nil
}

// Converge repeats Propagate until a pass fills nothing or maxPasses passes
// have run. It returns the number of passes executed and the total fill count.
func Converge(m *prefmatrix.Matrix, maxPasses int) (passes, filled int, err error) {
	if maxPasses <= 0 {
		return 0, 0, closureErrorf(opConverge, ErrBadPassLimit)
	}

	var n int
	for passes < maxPasses {
		if n, err = Propagate(m); err != nil {
			return passes, filled, closureErrorf(opConverge, err)
		}
		passes++
		filled += n
		if n == 0 {
			break
		}
	}

	return passes, filled, nil
}

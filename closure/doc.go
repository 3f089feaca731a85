// SPDX-License-Identifier: MIT

// Package closure fills preference-matrix cells implied by transitivity.
//
// What:
//
//   - Propagate: one full in-place pass over every ordered pair (i,j), fixed
//     loop order i → j → k. When row i beats j (Better), i also beats every k
//     that j beats or equals. When j beats i (Worse), every k that beats or
//     equals j also beats i. Only Unknown cells are written; existing values
//     always win, contradictions are not detected.
//   - Converge: repeats Propagate until a pass fills nothing (opt-in fixpoint).
//
// Why single-pass:
//
//	A session re-runs Propagate after every judgment, so longer chains are
//	completed by later passes. Cells written earlier in a pass are visible to
//	later iterations of the same pass, which is enough to close the chain
//	0→1→2→3 of a 4×4 matrix in one call.
//
// Complexity:
//
//   - Propagate: Time O(n³), Space O(1).
//   - Converge:  Time O(p·n³) for p passes (p ≤ n² since every pass but the
//     last fills at least one cell).
//
// Errors:
//
//   - prefmatrix.ErrNilMatrix   nil matrix
//   - ErrBadPassLimit           Converge called with maxPasses <= 0
package closure

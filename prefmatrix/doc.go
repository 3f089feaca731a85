// SPDX-License-Identifier: MIT

// Package prefmatrix holds the state of a pairwise-comparison session: a
// square preference matrix over a fixed, ordered list of alternatives.
//
// What:
//
//   - Relation: the cell code {Unknown=0, Better=1, Equal=2, Worse=3}.
//     Better means the row alternative is strictly preferred to the column one,
//     Worse means the column alternative is preferred.
//   - Matrix: an N×N row-major buffer of Relation values with bounds-checked
//     At/Set accessors. Setting (i,j) never touches (j,i); only the upper
//     triangle (i<j) is authoritative, the lower one is a derived view.
//   - Alternatives: the ordered identifier list; position is the matrix index.
//
// Invariants:
//
//   - After SeedDiagonal every diagonal cell is Equal (self-identity).
//   - Public accessors never panic; they return ErrOutOfRange or
//     ErrInvalidRelation instead.
//
// Concurrency:
//
//   - A Matrix is not safe for concurrent use. A session mutates it from a
//     single goroutine (resolve, then propagate, then notify).
//
// Errors:
//
//   - ErrInvalidDimensions   size <= 0
//   - ErrNonSquare           ragged or non-square literal in FromRows
//   - ErrOutOfRange          row/column outside [0,N)
//   - ErrInvalidRelation     value outside 0..3
//   - ErrNilMatrix           nil *Matrix passed to a validator
//   - ErrSizeMismatch        alternative list and matrix sizes differ
//   - ErrUnknownAlternative  identifier not in the list
//   - ErrDuplicateAlternative, ErrEmptyAlternatives
package prefmatrix

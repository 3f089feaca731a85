// SPDX-License-Identifier: MIT
// Package prefmatrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with %w) and tests
// check them via errors.Is. Nothing in this package panics on user input.

package prefmatrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that a requested matrix size is non-positive.
	ErrInvalidDimensions = errors.New("prefmatrix: size must be > 0")

	// ErrNonSquare signals a literal that is ragged or not N×N.
	ErrNonSquare = errors.New("prefmatrix: matrix is not square")

	// ErrOutOfRange indicates a row or column index outside [0,N).
	ErrOutOfRange = errors.New("prefmatrix: index out of range")

	// ErrInvalidRelation indicates a cell value outside the relation codes 0..3,
	// or a judgment outside 1..3 where a judgment is required.
	ErrInvalidRelation = errors.New("prefmatrix: invalid relation code")

	// ErrNilMatrix indicates that a nil *Matrix was used.
	ErrNilMatrix = errors.New("prefmatrix: nil matrix")

	// ErrSizeMismatch indicates that an alternative list and a matrix disagree on N.
	ErrSizeMismatch = errors.New("prefmatrix: alternatives and matrix size differ")

	// ErrUnknownAlternative indicates that an identifier is not in the list.
	ErrUnknownAlternative = errors.New("prefmatrix: unknown alternative")

	// ErrDuplicateAlternative indicates that an identifier occurs twice.
	ErrDuplicateAlternative = errors.New("prefmatrix: duplicate alternative")

	// ErrEmptyAlternatives indicates an empty alternative list.
	ErrEmptyAlternatives = errors.New("prefmatrix: no alternatives")
)

// matrixErrorf wraps err with the method name and coordinates it was detected at.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// SPDX-License-Identifier: MIT
// Package: prefmatrix
//
// Purpose:
//  - Single source of truth for the guards shared by closure, oracle and driver.
//  - Checks are pure and allocate nothing; call sites wrap the result.

package prefmatrix

import "fmt"

// validatorErrorf tags a sentinel with the validator that raised it.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix when m is nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize checks that m is non-nil and spans exactly len(alts) alternatives.
// Errors: ErrNilMatrix, ErrSizeMismatch.
func ValidateSameSize(alts Alternatives, m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if len(alts) != m.Size() {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameSize: %d alternatives, %dx%d matrix", len(alts), m.Size(), m.Size()),
			ErrSizeMismatch,
		)
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/lifecycle/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence
//    (NotNil → Initialized → Shape), which fixes the error priority.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateInitialized – Composite: NotNil → valid lifecycle state.
//
// Errors: ErrNilMatrix, ErrUninitialized.
// Complexity: O(1).
func ValidateInitialized(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if !m.valid {
		return validatorErrorf("ValidateInitialized", ErrUninitialized)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape – Composite: Initialized(a) → Initialized(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrUninitialized, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateInitialized(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateInitialized(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareInitialized – Composite: Initialized → Square.
//
// Errors: ErrNilMatrix, ErrUninitialized, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareInitialized(m *Dense) error {
	if err := ValidateInitialized(m); err != nil {
		return validatorErrorf("ValidateSquareInitialized", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareInitialized", err)
	}

	return nil
}

// ValidateMulCompatible ensures both operands are initialized and a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrUninitialized, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateInitialized(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateInitialized(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// validateShape rejects non-positive generator dimensions.
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("validateShape", ErrInvalidDimensions)
	}

	return nil
}

// validateIndexIn rejects (i, j) outside [0, rows)×[0, cols).
func validateIndexIn(i, j, rows, cols int) error {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return validatorErrorf("validateIndexIn", ErrOutOfRange)
	}

	return nil
}

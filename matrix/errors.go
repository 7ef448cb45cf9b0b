// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// caller-triggered contract violations.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with fmt.Errorf("Op: %w", ErrX)
// via matrixErrorf; accessors wrap with coordinates via denseErrorf.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> uninitialized -> index -> shape (dimension/square) -> exponent.

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUninitialized is returned when an element access, arithmetic kernel or
	// predicate is invoked on a matrix that was never initialized or has been
	// released.
	ErrUninitialized = errors.New("matrix: matrix is not initialized")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row, column or linear offset is outside
	// [0, rows), [0, cols) or [0, rows*cols).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub of different shapes, Mul where a.Cols != b.Rows, or a Load
	// buffer whose length differs from rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrInvalidExponent is returned for negative Pow exponents and for
	// PowSeries bases/term counts outside the supported domain.
	ErrInvalidExponent = errors.New("matrix: invalid exponent")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// (comparison tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrStaleView signals a read through a BufferView whose owner has been
	// re-initialized, reassigned or released since the view was taken.
	ErrStaleView = errors.New("matrix: buffer view is stale")
)

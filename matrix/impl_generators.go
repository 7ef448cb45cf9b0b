// SPDX-License-Identifier: MIT

// Package matrix - special-matrix generators.
//
// Stateless functions that build a new Dense from plain arguments or from an
// existing matrix: diagonal matrices, the identity, elementary matrices (Dij),
// row-swap permutation matrices (Pij) and random matrices. All positions are
// zero-based and every generator is written against the column-major layout.

package matrix

import "fmt"

const (
	opDiag     = "Diag"
	opDiagOf   = "DiagOf"
	opUnit     = "Unit"
	opDij      = "Dij"
	opPij      = "Pij"
	opRandmat  = "Randmat"
	ctxGenArgs = "(%d,%d)"
)

// Diag builds a len(values)×len(values) matrix with values on the main
// diagonal and zeros elsewhere.
// Errors: ErrInvalidDimensions when values is empty.
// Complexity: O(n^2).
func Diag(values []float64) (*Dense, error) {
	n := len(values)
	if err := validateShape(n, n); err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	res := newResult(n, n)
	for i, v := range values {
		res.data[i*n+i] = v
	}

	return res, nil
}

// DiagOf extracts the main diagonal of m as a column vector of shape
// min(rows, cols)×1. Element k of the result is m(k, k).
// Errors: ErrNilMatrix, ErrUninitialized.
// Complexity: O(min(r, c)).
func DiagOf(m *Dense) (*Dense, error) {
	if err := ValidateInitialized(m); err != nil {
		return nil, matrixErrorf(opDiagOf, err)
	}
	n := min(m.r, m.c)
	res := newResult(n, 1)
	for k := 0; k < n; k++ {
		res.data[k] = m.data[k*m.r+k]
	}

	return res, nil
}

// Unit returns the dim×dim identity matrix.
// Errors: ErrInvalidDimensions.
// Complexity: O(dim^2).
func Unit(dim int) (*Dense, error) {
	if err := validateShape(dim, dim); err != nil {
		return nil, matrixErrorf(opUnit, err)
	}
	res := newResult(dim, dim)
	for i := 0; i < dim; i++ { // fixed i order guarantees reproducibility
		res.data[i*dim+i] = 1.0
	}

	return res, nil
}

// Dij returns a rows×cols matrix that is zero except for element (i, j),
// which holds ele.
// Errors: ErrInvalidDimensions (shape), ErrOutOfRange (position).
// Complexity: O(rows*cols).
func Dij(i, j, rows, cols int, ele float64) (*Dense, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opDij, fmt.Errorf("shape "+ctxGenArgs+": %w", rows, cols, err))
	}
	if err := validateIndexIn(i, j, rows, cols); err != nil {
		return nil, matrixErrorf(opDij, fmt.Errorf("position "+ctxGenArgs+": %w", i, j, err))
	}
	res := newResult(rows, cols)
	res.data[ColMajorOffset(i, j, rows)] = ele

	return res, nil
}

// DijSquare is Dij on a dim×dim matrix.
func DijSquare(i, j, dim int, ele float64) (*Dense, error) { return Dij(i, j, dim, dim, ele) }

// DijIndex is Dij with the position given as an Index.
func DijIndex(ix Index, rows, cols int, ele float64) (*Dense, error) {
	return Dij(ix[0], ix[1], rows, cols, ele)
}

// DijIndexSquare is DijSquare with the position given as an Index.
func DijIndexSquare(ix Index, dim int, ele float64) (*Dense, error) {
	return Dij(ix[0], ix[1], dim, dim, ele)
}

// DijShape is Dij with the shape given as a Shape.
func DijShape(i, j int, s Shape, ele float64) (*Dense, error) {
	return Dij(i, j, s[0], s[1], ele)
}

// DijIndexShape is Dij with both position and shape given as pairs.
func DijIndexShape(ix Index, s Shape, ele float64) (*Dense, error) {
	return Dij(ix[0], ix[1], s[0], s[1], ele)
}

// Pij returns the dim×dim elementary permutation matrix: the identity with
// rows i and j exchanged (equivalently columns i and j). Left-multiplying by
// it swaps rows i and j; right-multiplying swaps columns. i == j yields the
// identity.
// Errors: ErrInvalidDimensions, ErrOutOfRange.
// Complexity: O(dim^2).
func Pij(i, j, dim int) (*Dense, error) {
	if err := validateShape(dim, dim); err != nil {
		return nil, matrixErrorf(opPij, err)
	}
	if err := validateIndexIn(i, j, dim, dim); err != nil {
		return nil, matrixErrorf(opPij, fmt.Errorf("rows "+ctxGenArgs+": %w", i, j, err))
	}
	res := newResult(dim, dim)
	var k, src int
	for k = 0; k < dim; k++ {
		// Row k of the result is row src of the identity.
		switch k {
		case i:
			src = j
		case j:
			src = i
		default:
			src = k
		}
		res.data[src*dim+k] = 1.0 // element (k, src)
	}

	return res, nil
}

// PijIndex is Pij with the swapped rows given as an Index.
func PijIndex(ix Index, dim int) (*Dense, error) { return Pij(ix[0], ix[1], dim) }

// Randmat returns a rows×cols matrix of uniform values in [lo, hi)
// (default [0, 1)).
//
// Seed policy:
//   - Without WithSeed/WithRand every call uses a fresh, clock-derived seed;
//     two calls never silently share a fixed stream.
//   - WithSeed(s) reproduces the same matrix for the same s and shape.
//   - Values are drawn in column-major order (offset 0, 1, ...).
//
// Errors: ErrInvalidDimensions.
// Complexity: O(rows*cols).
func Randmat(rows, cols int, opts ...Option) (*Dense, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opRandmat, err)
	}
	o := gatherOptions(opts...)
	res := newResult(rows, cols)
	span := o.hi - o.lo
	for k := range res.data {
		res.data[k] = o.lo + span*o.rng.Float64()
	}

	return res, nil
}

// RandSquare is Randmat(dim, dim, opts...).
func RandSquare(dim int, opts ...Option) (*Dense, error) { return Randmat(dim, dim, opts...) }

// SPDX-License-Identifier: MIT

// Package matrix - structural predicates, exact equality and reductions.
//
// All comparisons here are EXACT (no floating-point tolerance); use AllClose
// for approximate comparison. Predicates return (bool, error) so that an
// uninitialized or non-square operand is reported instead of answered.

package matrix

import "math"

const (
	opIsZero    = "IsZero"
	opIsSquare  = "IsSquare"
	opIsUnit    = "IsUnit"
	opIsSym     = "IsSym"
	opIsAntiSym = "IsAntiSym"
)

// IsZero reports whether every element of m is exactly 0.
// Errors: ErrNilMatrix, ErrUninitialized.
// Complexity: O(r*c).
func IsZero(m *Dense) (bool, error) {
	if err := ValidateInitialized(m); err != nil {
		return false, matrixErrorf(opIsZero, err)
	}
	for _, v := range m.data {
		if v != 0 {
			return false, nil
		}
	}

	return true, nil
}

// IsSquare reports whether Rows == Cols.
// Errors: ErrNilMatrix, ErrUninitialized.
// Complexity: O(1).
func IsSquare(m *Dense) (bool, error) {
	if err := ValidateInitialized(m); err != nil {
		return false, matrixErrorf(opIsSquare, err)
	}

	return m.r == m.c, nil
}

// IsUnit reports whether m is exactly the identity matrix.
// Errors: ErrNilMatrix, ErrUninitialized, ErrNonSquare.
// Complexity: O(n^2).
func IsUnit(m *Dense) (bool, error) {
	if err := ValidateSquareInitialized(m); err != nil {
		return false, matrixErrorf(opIsUnit, err)
	}
	n := m.r
	var i, j int
	var want float64
	for j = 0; j < n; j++ {
		for i = 0; i < n; i++ {
			want = 0
			if i == j {
				want = 1
			}
			if m.data[j*n+i] != want {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsSym reports whether m(i,j) == m(j,i) for all i, j.
// Errors: ErrNilMatrix, ErrUninitialized, ErrNonSquare.
// Complexity: O(n^2), strict upper triangle only.
func IsSym(m *Dense) (bool, error) {
	if err := ValidateSquareInitialized(m); err != nil {
		return false, matrixErrorf(opIsSym, err)
	}
	n := m.r
	var i, j int
	for j = 1; j < n; j++ {
		for i = 0; i < j; i++ {
			if m.data[j*n+i] != m.data[i*n+j] {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsAntiSym reports whether m(i,j) == -m(j,i) for all i, j, which forces a
// zero diagonal.
// Errors: ErrNilMatrix, ErrUninitialized, ErrNonSquare.
// Complexity: O(n^2).
func IsAntiSym(m *Dense) (bool, error) {
	if err := ValidateSquareInitialized(m); err != nil {
		return false, matrixErrorf(opIsAntiSym, err)
	}
	n := m.r
	var i, j int
	for j = 0; j < n; j++ {
		for i = 0; i <= j; i++ {
			if m.data[j*n+i] != -m.data[i*n+j] {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports exact element-wise equality. Operands of different shape are
// unequal (not an error).
// Errors: ErrNilMatrix, ErrUninitialized.
// Complexity: O(r*c).
func Equal(a, b *Dense) (bool, error) {
	if err := ValidateInitialized(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateInitialized(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.r != b.r || a.c != b.c {
		return false, nil
	}
	for k := range a.data {
		if a.data[k] != b.data[k] {
			return false, nil
		}
	}

	return true, nil
}

// NotEqual is the negation of Equal; errors are passed through unchanged.
func NotEqual(a, b *Dense) (bool, error) {
	eq, err := Equal(a, b)
	if err != nil {
		return false, err
	}

	return !eq, nil
}

// Equal reports whether m equals b exactly. See Equal.
func (m *Dense) Equal(b *Dense) (bool, error) { return Equal(m, b) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// NaN never compares close; equal infinities do.
// Errors: ErrNilMatrix, ErrUninitialized, ErrDimensionMismatch, ErrNaNInf (tolerance).
// Complexity: O(r*c).
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }

// Abs returns |m| element-wise with the same shape.
// Complexity: O(r*c).
func Abs(m *Dense) (*Dense, error) { return ewMap(m, math.Abs, opAbs) }

// Max returns a 1×1 matrix holding the largest element of m.
// Errors: ErrNilMatrix, ErrUninitialized.
// Complexity: O(r*c).
func Max(m *Dense) (*Dense, error) {
	if err := ValidateInitialized(m); err != nil {
		return nil, matrixErrorf(opMax, err)
	}
	best := m.data[0]
	for _, v := range m.data[1:] {
		if v > best {
			best = v
		}
	}
	res := newResult(1, 1)
	res.data[0] = best

	return res, nil
}

// Min returns a 1×1 matrix holding the smallest element of m.
// Errors: ErrNilMatrix, ErrUninitialized.
// Complexity: O(r*c).
func Min(m *Dense) (*Dense, error) {
	if err := ValidateInitialized(m); err != nil {
		return nil, matrixErrorf(opMin, err)
	}
	best := m.data[0]
	for _, v := range m.data[1:] {
		if v < best {
			best = v
		}
	}
	res := newResult(1, 1)
	res.data[0] = best

	return res, nil
}

// Trace returns the sum of the main diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrUninitialized, ErrNonSquare.
// Complexity: O(n).
func Trace(m *Dense) (float64, error) {
	if err := ValidateSquareInitialized(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	s := ZeroSum
	for i := 0; i < m.r; i++ {
		s += m.data[i*m.r+i]
	}

	return s, nil
}

// SPDX-License-Identifier: MIT
// Package matrix - convenience constructors and named aliases.
//
// Everything here forwards to a kernel in impl_*.go or composes two or three
// of them; no element loop lives in this file. The aliases exist for callers
// who prefer a verb (Product, Commutator) over an operator name (Mul, Lie).

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros is NewDense under the name callers search for.
// Complexity: O(rows*cols).
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity returns I_n. Alias of Unit.
// Complexity: O(n^2).
func NewIdentity(n int) (*Dense, error) { return Unit(n) }

// NewFromColMajor allocates a rows×cols matrix and loads buf (column-major).
// Errors: ErrInvalidDimensions, ErrDimensionMismatch.
// Complexity: O(rows*cols).
func NewFromColMajor(rows, cols int, buf []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = m.Load(buf); err != nil {
		return nil, err
	}

	return m, nil
}

// ZerosLike returns a zero matrix shaped like m.
// Complexity: O(rc).
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateInitialized(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.r, m.c)
}

// IdentityLike returns the identity of m's order. m must be square.
// Complexity: O(n^2).
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquareInitialized(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Unit(m.r)
}

// ---------- Linear Algebra aliases ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
func Sum(a, b *Dense) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff(a, b *Dense) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b *Dense) (*Dense, error) { return Mul(a, b) }

// ScaleBy is Scale with the matrix first: m*alpha.
// Complexity: O(rc).
func ScaleBy(m *Dense, alpha float64) (*Dense, error) { return Scale(alpha, m) }

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(rc).
func T(m *Dense) (*Dense, error) { return Transpose(m) }

// Commutator is an alias for Lie: ab − ba.
// Complexity: O(n^3).
func Commutator(a, b *Dense) (*Dense, error) { return Lie(a, b) }

// ---------- Symmetric/antisymmetric split ----------

// Symmetrize returns (m + mᵀ)/2. Composition: Transpose → Add → Scale.
// Requires a square matrix so that m and mᵀ share a shape.
// Complexity: O(rc).
func Symmetrize(m *Dense) (*Dense, error) {
	if err := ValidateSquareInitialized(m); err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}

	return Scale(0.5, sum)
}

// AntiSymmetrize returns (m − mᵀ)/2, the antisymmetric part of a square m.
// Complexity: O(rc).
func AntiSymmetrize(m *Dense) (*Dense, error) {
	if err := ValidateSquareInitialized(m); err != nil {
		return nil, matrixErrorf("AntiSymmetrize", err)
	}
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("AntiSymmetrize", err)
	}
	diff, err := Sub(m, mt)
	if err != nil {
		return nil, matrixErrorf("AntiSymmetrize", err)
	}

	return Scale(0.5, diff)
}

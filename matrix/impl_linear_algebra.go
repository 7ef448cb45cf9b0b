// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic operator suite on Dense:
// element-wise addition and subtraction, negation, scalar scaling, matrix
// multiplication, transpose, integer power, the truncated scalar-base power
// series and the Lie bracket. All kernels perform strict fail-fast
// validation, never mutate their operands, and return a freshly allocated
// result.
//
// Notes:
//   - Free functions are canonical; the method forms on *Dense delegate to them.
//   - All kernels use the central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for inner-product accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opNeg       = "Neg"
	opScale     = "Scale"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opPow       = "Pow"
	opPowSeries = "PowSeries"
	opLie       = "Lie"
	opAbs       = "Abs"
	opMax       = "Max"
	opMin       = "Min"
	opTrace     = "Trace"
	opEqual     = "Equal"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are initialized and have identical shapes.
//   - Stage 2: Single flat loop over the shared column-major layout.
//
// Errors:
//   - ErrNilMatrix, ErrUninitialized, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	return ewZip(a, b, func(x, y float64) float64 { return x + y }, opAdd)
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrUninitialized, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) {
	return ewZip(a, b, func(x, y float64) float64 { return x - y }, opSub)
}

// Neg returns -A (element-wise sign flip) with the same shape.
// Complexity: O(r*c).
func Neg(a *Dense) (*Dense, error) {
	return ewMap(a, func(v float64) float64 { return -v }, opNeg)
}

// Scale returns alpha * A. Scalar multiplication is commutative, so this is
// also A * alpha (see (*Dense).Scale).
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(alpha float64, a *Dense) (*Dense, error) {
	return ewMap(a, func(v float64) float64 { return alpha * v }, opScale)
}

// inner returns Σ_{k<n} x[k*incX] * y[k], the dot product of a strided
// vector x with a contiguous vector y.
// In Mul, x walks a row of the column-major A (stride A.rows) and y is a
// column of B (contiguous).
func inner(x []float64, incX int, y []float64, n int) float64 {
	s := ZeroSum
	var k, ix int
	for k = 0; k < n; k++ {
		s += x[ix] * y[k]
		ix += incX
	}

	return s
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A, B are initialized.
//   - Stage 2: If A.Cols != B.Rows and exactly one operand is 1×1, treat that
//     operand as a scalar and delegate to Scale; otherwise require A.Cols == B.Rows.
//   - Stage 3: C[i,j] = inner(row i of A, column j of B). Result columns are
//     computed in disjoint strips, in parallel above ParallelMinOps.
//
// Behavior highlights:
//   - A 1×1 result is a regular Dense and chains through Mul as a scalar.
//
// Errors:
//   - ErrNilMatrix, ErrUninitialized, ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateInitialized(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateInitialized(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.c != b.r {
		switch {
		case a.r == 1 && a.c == 1:
			return Scale(a.data[0], b)
		case b.r == 1 && b.c == 1:
			return Scale(b.data[0], a)
		}
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, n, cols := a.r, a.c, b.c
	res := newResult(rows, cols)
	forStrips(cols, rows*n*cols, ParallelMinOps, func(lo, hi int) {
		var i, j int
		var bcol []float64
		for j = lo; j < hi; j++ { // this strip owns result columns [lo, hi)
			bcol = b.data[j*n : (j+1)*n]
			for i = 0; i < rows; i++ {
				res.data[j*rows+i] = inner(a.data[i:], rows, bcol, n)
			}
		}
	})

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Element (i,j) of m becomes element (j,i) of the result; m is not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrUninitialized.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateInitialized(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res := newResult(cols, rows) // dims flipped
	var i, j int
	// m.data[j*rows + i] → res.data[i*cols + j]
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			res.data[i*cols+j] = m.data[j*rows+i]
		}
	}

	return res, nil
}

// Pow returns m^n by repeated self-multiplication: m^0 = I, m^k = m^(k-1) × m.
// Implementation:
//   - Stage 1: Validate m is initialized and square; n ≥ 0.
//   - Stage 2: n == 0 → Unit(dim); otherwise left-accumulate n-1 products.
//
// Errors:
//   - ErrNilMatrix, ErrUninitialized, ErrNonSquare, ErrInvalidExponent (n < 0).
//
// Complexity:
//   - Time O(n * d^3), Space O(d^2).
//
// Notes:
//   - Negative exponents would require an inverse, which this package does not
//     provide.
func Pow(m *Dense, n int) (*Dense, error) {
	if err := ValidateSquareInitialized(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if n < 0 {
		return nil, matrixErrorf(opPow, fmt.Errorf("exponent %d: %w", n, ErrInvalidExponent))
	}
	if n == 0 {
		return Unit(m.r)
	}

	res := m.Clone()
	var err error
	for k := 1; k < n; k++ {
		if res, err = Mul(res, m); err != nil {
			return nil, matrixErrorf(opPow, err)
		}
	}

	return res, nil
}

// PowSeries approximates the scalar-base matrix power base^m through the
// truncated exponential series
//
//	base^m = exp(ln(base)·m) ≈ Σ_{k=0}^{ord-1} (ln base)^k · m^k / k!
//
// ord is the number of terms kept (ord = 1 yields the identity). The series is
// not a closed-form matrix exponential: accuracy depends on ‖ln(base)·m‖ and
// on ord, and no convergence check is made.
//
// Implementation:
//   - Stage 1: Validate m initialized and square; base finite and > 0; ord ≥ 1.
//   - Stage 2: term_0 = I; term_k = term_(k-1) × m · (ln base / k); sum terms.
//
// Errors:
//   - ErrNilMatrix, ErrUninitialized, ErrNonSquare,
//     ErrInvalidExponent (base ≤ 0, base NaN/Inf, ord < 1).
//
// Complexity:
//   - Time O(ord · d^3), Space O(d^2).
func PowSeries(base float64, m *Dense, ord int) (*Dense, error) {
	if err := ValidateSquareInitialized(m); err != nil {
		return nil, matrixErrorf(opPowSeries, err)
	}
	if !(base > 0) || math.IsInf(base, 0) {
		return nil, matrixErrorf(opPowSeries, fmt.Errorf("base %g: %w", base, ErrInvalidExponent))
	}
	if ord < 1 {
		return nil, matrixErrorf(opPowSeries, fmt.Errorf("order %d: %w", ord, ErrInvalidExponent))
	}

	lnBase := math.Log(base)
	sum, err := Unit(m.r)
	if err != nil {
		return nil, matrixErrorf(opPowSeries, err)
	}
	term := sum.Clone()
	for k := 1; k < ord; k++ {
		if term, err = Mul(term, m); err != nil {
			return nil, matrixErrorf(opPowSeries, err)
		}
		f := lnBase / float64(k)
		for idx := range term.data {
			term.data[idx] *= f
			sum.data[idx] += term.data[idx]
		}
	}

	return sum, nil
}

// Lie returns the Lie bracket [a, b] = a×b − b×a.
// Both operands must be square with equal dimension.
//
// Errors:
//   - ErrNilMatrix, ErrUninitialized, ErrNonSquare, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(d^3), Space O(d^2).
func Lie(a, b *Dense) (*Dense, error) {
	if err := ValidateSquareInitialized(a); err != nil {
		return nil, matrixErrorf(opLie, err)
	}
	if err := ValidateSquareInitialized(b); err != nil {
		return nil, matrixErrorf(opLie, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opLie, err)
	}

	ab, err := Mul(a, b)
	if err != nil {
		return nil, matrixErrorf(opLie, err)
	}
	ba, err := Mul(b, a)
	if err != nil {
		return nil, matrixErrorf(opLie, err)
	}

	return Sub(ab, ba)
}

// ---------- method forms ----------

// Add returns m + b. See Add.
func (m *Dense) Add(b *Dense) (*Dense, error) { return Add(m, b) }

// Sub returns m - b. See Sub.
func (m *Dense) Sub(b *Dense) (*Dense, error) { return Sub(m, b) }

// Neg returns -m. See Neg.
func (m *Dense) Neg() (*Dense, error) { return Neg(m) }

// Scale returns m * alpha, which equals Scale(alpha, m).
func (m *Dense) Scale(alpha float64) (*Dense, error) { return Scale(alpha, m) }

// Mul returns m × b. See Mul.
func (m *Dense) Mul(b *Dense) (*Dense, error) { return Mul(m, b) }

// T returns mᵀ. See Transpose.
func (m *Dense) T() (*Dense, error) { return Transpose(m) }

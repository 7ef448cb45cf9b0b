// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) to avoid duplicating
//     tight loops across Add/Sub/Neg/Scale/Abs.
//   - Keep all loops deterministic: every output element depends only on the
//     operand elements at the same offset, so layout (column-major) is irrelevant
//     and the flat loop may be split into disjoint strips.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels); public kernels wrap them
//     and supply the operation tag used in error messages.

package matrix

import "math"

// ewMap computes out[k] = f(X[k]) for every offset k.
// Time: O(r*c). Space: O(r*c).
func ewMap(X *Dense, f func(v float64) float64, opTag string) (*Dense, error) {
	if err := ValidateInitialized(X); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := newResult(X.r, X.c)
	n := len(X.data)
	forStrips(n, n, ParallelMinElems, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			out.data[k] = f(X.data[k])
		}
	})

	return out, nil
}

// ewZip computes out[k] = f(A[k], B[k]) for identically shaped A and B.
// Time: O(r*c). Space: O(r*c).
func ewZip(a, b *Dense, f func(x, y float64) float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := newResult(a.r, a.c)
	n := len(a.data)
	forStrips(n, n, ParallelMinElems, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			out.data[k] = f(a.data[k], b.data[k])
		}
	})

	return out, nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be initialized and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func ewAllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var diff float64
	for k := range a.data {
		diff = math.Abs(a.data[k] - b.data[k])
		if !(diff <= atol+rtol*math.Abs(b.data[k])) { // NaN fails the relation
			if a.data[k] == b.data[k] { // equal infinities
				continue
			}
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// Package densemat is a compact dense-matrix toolkit: one value type, its
// arithmetic, and the special matrices that are tedious to build by hand.
//
// What is in the box?
//
//   - matrix/      — Dense (column-major float64 storage with an explicit
//     lifecycle), arithmetic (+, −, ×, scale, transpose, power,
//     Lie bracket, scalar-base power series), exact predicates,
//     and generators (Diag, Unit, Dij, Pij, Randmat)
//   - console/     — interactive element-by-element input and aligned output
//   - cmd/matcalc/ — a command-line calculator over both
//   - examples/    — a runnable power-iteration walkthrough
//
// Storage is column-major: element (r, c) of an R×C matrix lives at offset
// c*R + r of the flat buffer, and every bulk copy-in/copy-out uses that order.
//
// Quick example:
//
//	a, _ := matrix.NewFromColMajor(2, 2, []float64{1, 3, 2, 4}) // [[1 2] [3 4]]
//	p, _ := matrix.Pij(0, 1, 2)                                  // swap rows 0 and 1
//	b, _ := matrix.Mul(p, a)                                     // [[3 4] [1 2]]
//
//	go get github.com/katalvlaran/densemat/matrix
package densemat

// Package matrix implements a small dense-matrix value type with an
// arithmetic operator suite and special-matrix generators.
//
// The matrix package provides:
//
//   - Dense: a resizable rows×cols float64 container stored in a flat
//     column-major buffer (element (r, c) at offset c*rows + r), with an
//     explicit lifecycle: the zero value is uninitialized, Init allocates a
//     zero-filled buffer, Release drops it.
//   - Element access by (row, col), by Index pair, and by linear offset, all
//     bounds-checked and returning sentinel errors instead of panicking.
//   - Arithmetic: Add, Sub, Neg, Scale, Mul, Transpose, Pow, PowSeries, Lie,
//     each returning a fresh matrix; operands are never mutated.
//   - Exact predicates (IsZero, IsSquare, IsUnit, IsSym, IsAntiSym, Equal) and
//     reductions (Abs, Max, Min, Trace).
//   - Generators: Diag, DiagOf, Unit, the Dij and Pij families, Randmat.
//
// Column-major storage is part of the contract: Load expects a column-major
// buffer and Info exposes one. Changing the layout would silently change the
// meaning of every loaded buffer.
//
// Error handling: every failure is one of the sentinels in errors.go
// (ErrUninitialized, ErrDimensionMismatch, ErrNonSquare, ErrOutOfRange,
// ErrInvalidExponent, ...), wrapped with an operation tag; match with
// errors.Is.
//
// Concurrency: a Dense carries no lock. Large Mul and element-wise kernels
// split their output into disjoint strips internally; callers must still not
// mutate an operand while a kernel reads it.
package matrix

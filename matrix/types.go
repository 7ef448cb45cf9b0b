// SPDX-License-Identifier: MIT

// Package matrix: small value types shared by accessors and generators.
// Index and Shape replace the two-element int arrays used to address an
// element or describe a shape in a single argument.
package matrix

// Index addresses one element as {row, col}, zero-based.
type Index [2]int

// Row returns the row component.
func (ix Index) Row() int { return ix[0] }

// Col returns the column component.
func (ix Index) Col() int { return ix[1] }

// Shape describes a matrix as {rows, cols}.
type Shape [2]int

// Rows returns the row count component.
func (s Shape) Rows() int { return s[0] }

// Cols returns the column count component.
func (s Shape) Cols() int { return s[1] }

// ColMajorOffset maps (row, col) to the linear column-major offset col*rows + row.
// It performs no bounds checking; use (*Dense).Offset for a checked transform.
// Complexity: O(1).
func ColMajorOffset(row, col, rows int) int { return col*rows + row }

// ColMajorCoord is the inverse of ColMajorOffset for a matrix with the given
// row count: off = col*rows + row ⇒ row = off % rows, col = off / rows.
// rows must be positive.
// Complexity: O(1).
func ColMajorCoord(off, rows int) (row, col int) { return off % rows, off / rows }

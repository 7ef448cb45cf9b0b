// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major), lifecycle & safe accessors.
//
// Purpose:
//   - Provide a contiguous column-major buffer with the explicit index formula c*rows + r.
//   - Model the explicit lifecycle: zero value (invalid) → Init (valid, zero-filled) → Release.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//
// Complexity quicksheet:
//   - Init/NewDense: O(r*c) zero-init; At/Set/AtIndex/AtOffset: O(1); Clone/CopyFrom/Load: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxInit      = "Init"      // lifecycle tag
	ctxLoad      = "Load"      // bulk copy-in tag
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxAtIndex   = "AtIndex"   // index-pair read
	ctxSetIndex  = "SetIndex"  // index-pair write
	ctxAtOffset  = "AtOffset"  // linear read
	ctxSetOffset = "SetOffset" // linear write
	ctxCopyFrom  = "CopyFrom"  // deep assignment
)

// String() literals.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf tags err with the accessor name and the requested coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// denseOffsetErrorf is the linear-offset counterpart of denseErrorf.
func denseOffsetErrorf(method string, off int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, off, err)
}

// Dense is a concrete column-major matrix.
//   - r,c hold dimensions (rows, cols); both 0 while uninitialized.
//   - data is a flat buffer of length r*c in column-major order (offset = j*r + i).
//   - valid is true iff data != nil && r > 0 && c > 0.
//   - epoch changes whenever the buffer is replaced or dropped; BufferView uses it
//     to refuse reads through a stale borrow.
//
// The zero value is an uninitialized 0×0 matrix; call Init (or use NewDense)
// before any other operation. A Dense is not safe for concurrent mutation.
type Dense struct {
	r, c  int       // row and column counts (0 when invalid)
	data  []float64 // contiguous column-major storage (len == r*c)
	valid bool      // lifecycle flag
	epoch uint64    // buffer generation for BufferView staleness checks
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense returns an initialized rows×cols zero matrix, the same state a
// zero Dense reaches after Init(rows, cols).
// Errors: ErrInvalidDimensions.
func NewDense(rows, cols int) (*Dense, error) {
	m := &Dense{}
	if err := m.Init(rows, cols); err != nil {
		return nil, err
	}

	return m, nil
}

// NewSquare creates an initialized dim×dim zero matrix.
// Complexity: O(dim^2).
func NewSquare(dim int) (*Dense, error) { return NewDense(dim, dim) }

// Init (re)initializes m as a rows×cols zero matrix.
// MAIN DESCRIPTION:
//   - Lifecycle entry point. Any previously held buffer is released first, so
//     re-initializing a valid matrix never leaks nor aliases the old storage.
//
// Implementation:
//   - Stage 1: validate receiver and shape.
//   - Stage 2: drop the old buffer (bumping the epoch) and allocate a new one.
//   - Stage 3: set dimensions and mark valid.
//
// Behavior highlights:
//   - On error the receiver is left untouched.
//   - Views obtained through Info before Init become stale.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Init(rows, cols int) error {
	if m == nil {
		return fmt.Errorf("Dense.%s: %w", ctxInit, ErrNilMatrix)
	}
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("Dense.%s(%d,%d): %w", ctxInit, rows, cols, ErrInvalidDimensions)
	}
	m.Release()
	// make() zero-fills deterministically.
	m.data = make([]float64, rows*cols)
	m.r, m.c = rows, cols
	m.valid = true

	return nil
}

// InitSquare is Init(dim, dim).
func (m *Dense) InitSquare(dim int) error { return m.Init(dim, dim) }

// Release drops the buffer and resets m to the uninitialized 0×0 state.
// Calling Release on a nil or already-released matrix is a no-op.
// Complexity: O(1).
func (m *Dense) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.r, m.c = 0, 0
	m.valid = false
	m.epoch++ // invalidate outstanding views
}

// IsValid reports whether m holds an initialized buffer.
func (m *Dense) IsValid() bool { return m != nil && m.valid }

// Rows returns the row count (0 when uninitialized).
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count (0 when uninitialized).
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows(), Cols()).
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Load copies a caller-supplied column-major buffer into m.
// MAIN DESCRIPTION:
//   - Bulk copy-in. buf[j*rows+i] becomes element (i, j).
//
// Implementation:
//   - Stage 1: validate m is initialized.
//   - Stage 2: require len(buf) == rows*cols.
//   - Stage 3: copy; m never retains buf.
//
// Errors:
//   - ErrNilMatrix, ErrUninitialized, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Load(buf []float64) error {
	if err := ValidateInitialized(m); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxLoad, err)
	}
	if len(buf) != len(m.data) {
		return fmt.Errorf("Dense.%s: got %d values for %dx%d: %w",
			ctxLoad, len(buf), m.r, m.c, ErrDimensionMismatch)
	}
	copy(m.data, buf)

	return nil
}

// Info exposes the shape and a read-only borrowed view of the buffer.
// MAIN DESCRIPTION:
//   - Introspection escape hatch. The view shares storage with m (no copy) and
//     observes later element writes, but refuses every read once m is
//     re-initialized, reassigned via CopyFrom, or released.
//
// Behavior highlights:
//   - An uninitialized matrix reports 0, 0 and an empty view instead of failing.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Info() (rows, cols int, view *BufferView, err error) {
	if err = ValidateNotNil(m); err != nil {
		return 0, 0, nil, fmt.Errorf("Dense.Info: %w", err)
	}

	return m.r, m.c, &BufferView{owner: m, data: m.data, epoch: m.epoch}, nil
}

// Offset computes the column-major offset of (row, col) or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Checked forward index transform; inverse of Coord.
//
// Errors:
//   - ErrNilMatrix, ErrUninitialized, ErrOutOfRange.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Offset(row, col int) (int, error) {
	if err := ValidateInitialized(m); err != nil {
		return 0, err
	}

	return m.indexOf(row, col)
}

// Coord converts a column-major offset back to (row, col).
// Errors: ErrNilMatrix, ErrUninitialized, ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Coord(off int) (row, col int, err error) {
	if err = ValidateInitialized(m); err != nil {
		return 0, 0, err
	}
	if off < 0 || off >= len(m.data) {
		return 0, 0, ErrOutOfRange
	}
	row, col = ColMajorCoord(off, m.r)

	return row, col, nil
}

// indexOf bounds-checks (row, col) against a valid m and returns its
// column-major offset. Callers check the lifecycle first.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Column-major offset: j*r + i.
	return ColMajorOffset(row, col, m.r), nil
}

// At returns element (row, col).
// Errors: ErrNilMatrix, ErrUninitialized, ErrOutOfRange, wrapped with the
// coordinates.
func (m *Dense) At(row, col int) (float64, error) {
	if err := ValidateInitialized(m); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrNilMatrix, ErrUninitialized, ErrOutOfRange (wrapped with coordinates).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if err := ValidateInitialized(m); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// AtIndex is At(ix.Row(), ix.Col()).
func (m *Dense) AtIndex(ix Index) (float64, error) {
	if err := ValidateInitialized(m); err != nil {
		return 0, denseErrorf(ctxAtIndex, ix[0], ix[1], err)
	}
	off, err := m.indexOf(ix[0], ix[1])
	if err != nil {
		return 0, denseErrorf(ctxAtIndex, ix[0], ix[1], err)
	}

	return m.data[off], nil
}

// SetIndex is Set(ix.Row(), ix.Col(), v).
func (m *Dense) SetIndex(ix Index, v float64) error {
	if err := ValidateInitialized(m); err != nil {
		return denseErrorf(ctxSetIndex, ix[0], ix[1], err)
	}
	off, err := m.indexOf(ix[0], ix[1])
	if err != nil {
		return denseErrorf(ctxSetIndex, ix[0], ix[1], err)
	}
	m.data[off] = v

	return nil
}

// AtOffset reads the element stored at linear column-major offset off.
// Errors: ErrNilMatrix, ErrUninitialized, ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) AtOffset(off int) (float64, error) {
	if err := ValidateInitialized(m); err != nil {
		return 0, denseOffsetErrorf(ctxAtOffset, off, err)
	}
	if off < 0 || off >= len(m.data) {
		return 0, denseOffsetErrorf(ctxAtOffset, off, ErrOutOfRange)
	}

	return m.data[off], nil
}

// SetOffset writes v at linear column-major offset off.
func (m *Dense) SetOffset(off int, v float64) error {
	if err := ValidateInitialized(m); err != nil {
		return denseOffsetErrorf(ctxSetOffset, off, err)
	}
	if off < 0 || off >= len(m.data) {
		return denseOffsetErrorf(ctxSetOffset, off, ErrOutOfRange)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same shape and lifecycle state).
// Cloning an uninitialized matrix yields another uninitialized matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	if !m.IsValid() {
		return &Dense{}
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, valid: true}
}

// CopyFrom makes m a deep copy of src (assignment semantics).
// MAIN DESCRIPTION:
//   - Allocates a fresh buffer sized to src and copies every element; m never
//     aliases src. Copying from an uninitialized src releases m.
//
// Behavior highlights:
//   - Self-assignment is a no-op.
//   - Views previously taken on m become stale.
//
// Errors:
//   - ErrNilMatrix when m or src is nil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) CopyFrom(src *Dense) error {
	if m == nil || src == nil {
		return fmt.Errorf("Dense.%s: %w", ctxCopyFrom, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	if !src.valid {
		m.Release()
		return nil
	}
	buf := make([]float64, len(src.data))
	copy(buf, src.data)
	m.Release()
	m.data = buf
	m.r, m.c = src.r, src.c
	m.valid = true

	return nil
}

// Raw returns a copy of the column-major buffer, or nil when uninitialized.
// Complexity: O(r*c).
func (m *Dense) Raw() []float64 {
	if !m.IsValid() {
		return nil
	}
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String renders rows in visual (row-major) order as "[a, b]\n[c, d]\n".
// The buffer itself stays column-major; each element is fetched via j*r + i.
// An uninitialized matrix renders as the empty string.
// Complexity: O(r*c).
func (m *Dense) String() string {
	if !m.IsValid() {
		return ""
	}
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate visual rows
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[j*m.r+i]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// newResult allocates a valid rows×cols result for kernels that already
// validated their operands, so the shape is known to be positive.
func newResult(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), valid: true}
}

// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// BufferView is a non-owning, read-only window onto a Dense buffer, obtained
// from (*Dense).Info. It shares storage with its owner: element writes made
// through the owner are visible here. Once the owner re-initializes, is
// reassigned through CopyFrom, or is released, every read returns
// ErrStaleView rather than exposing a buffer the owner no longer holds.
type BufferView struct {
	owner *Dense    // storage owner
	data  []float64 // column-major buffer at borrow time
	epoch uint64    // owner epoch at borrow time
}

// Valid reports whether the view still refers to its owner's live buffer.
// Complexity: O(1).
func (v *BufferView) Valid() bool {
	return v != nil && v.owner != nil && v.owner.epoch == v.epoch
}

// Len returns the number of elements (rows*cols of the owner at borrow time),
// or 0 for a stale view.
func (v *BufferView) Len() int {
	if !v.Valid() {
		return 0
	}

	return len(v.data)
}

// At reads the element at column-major offset off.
// Errors: ErrStaleView, ErrOutOfRange.
// Complexity: O(1).
func (v *BufferView) At(off int) (float64, error) {
	if !v.Valid() {
		return 0, fmt.Errorf("BufferView.At(%d): %w", off, ErrStaleView)
	}
	if off < 0 || off >= len(v.data) {
		return 0, fmt.Errorf("BufferView.At(%d): %w", off, ErrOutOfRange)
	}

	return v.data[off], nil
}

// CopyTo copies the viewed buffer into dst and returns the number of
// elements copied (min(len(dst), Len())).
// Errors: ErrStaleView.
// Complexity: O(n).
func (v *BufferView) CopyTo(dst []float64) (int, error) {
	if !v.Valid() {
		return 0, fmt.Errorf("BufferView.CopyTo: %w", ErrStaleView)
	}

	return copy(dst, v.data), nil
}

// SPDX-License-Identifier: MIT

// Package matrix - Dense view (contiguous row-major) over a borrowed buffer.
//
// Purpose:
//   - Reinterpret a flat buffer as an nrows×ncols matrix with the explicit index
//     formula i*ncols + j, validated once at Reshape.
//   - Keep every read bounds-checked: At/Row/Col/Sub return errors, never panic.
//   - Delegate addressing to Strided (a Dense is a Strided with stride == ncols)
//     so both families share one implementation of every accessor.
//
// Complexity quicksheet:
//   - Reshape: O(1); At/Row/Col/Sub: O(1); Do/String: O(r*c).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/unsized/core"
)

// Dense is a read-only row-major view.
//   - r,c hold dimensions (rows, cols).
//   - data is the borrowed buffer of length r*c (offset = i*c + j).
type Dense[T any] struct {
	data []T // len == cap == r*c
	r, c int // row and column counts (>= 0)
}

// Compile-time assertions for fmt.Stringer conformance.
var (
	_ fmt.Stringer = Dense[int]{}
	_ fmt.Stringer = Strided[int]{}
	_ fmt.Stringer = Row[int]{}
	_ fmt.Stringer = Col[int]{}
)

// Reshape returns a Dense view of buf with the given shape.
// MAIN DESCRIPTION:
//   - Borrowing constructor: no copy, writes to buf are visible through the view.
//
// Implementation:
//   - Stage 1: validate nrows, ncols >= 0 and len(buf) == nrows*ncols.
//   - Stage 2: cap buf at its length and wrap it.
//
// Inputs:
//   - buf: caller-owned storage in row-major order; must outlive the view.
//   - nrows, ncols: requested shape (zero allowed: 0×k and k×0 are legal).
//
// Returns:
//   - Dense view or ErrShape.
//
// Errors:
//   - ErrShape when the buffer length disagrees with the shape.
//
// Complexity:
//   - Time O(1), Space O(1).
func Reshape[T any](buf []T, nrows, ncols int) (Dense[T], error) {
	if err := validateReshape(len(buf), nrows, ncols); err != nil {
		return Dense[T]{}, fmt.Errorf("Reshape(len=%d, %dx%d): %w", len(buf), nrows, ncols, err)
	}

	return Dense[T]{data: buf[:len(buf):len(buf)], r: nrows, c: ncols}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Strided returns the same region as a Strided view with stride == Cols().
// Complexity: O(1).
func (m Dense[T]) Strided() Strided[T] { return newStrided(m.data, m.r, m.c, m.c) }

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m Dense[T]) At(row, col int) (T, error) { return m.Strided().at(tagDense, row, col) }

// Row returns row r, the contiguous run [r*ncols, r*ncols+ncols).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m Dense[T]) Row(r int) (Row[T], error) { return m.Strided().row(tagDense, r) }

// Col returns column c with stride ncols.
// Errors: ErrOutOfRange. Complexity: O(1).
func (m Dense[T]) Col(c int) (Col[T], error) { return m.Strided().col(tagDense, c) }

// Sub creates a no-copy window rows×cols over the same storage.
// MAIN DESCRIPTION:
//   - Lightweight sub-matrix referencing the base buffer.
//
// Behavior highlights:
//   - The derived stride is this matrix's column count, so Sub agrees with
//     Strided().Sub and with At on the parent.
//
// Errors:
//   - ErrBadRange when either range is inverted or leaves the matrix.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m Dense[T]) Sub(rows, cols core.Range) (Strided[T], error) {
	return m.Strided().sub(tagDense, rows, cols)
}

// Do visits each element (i,j) in row-major order; f returns false to stop.
// Complexity: Time O(r*c), Space O(1).
func (m Dense[T]) Do(f func(i, j int, v T) bool) { m.Strided().Do(f) }

// String renders one row per line, each as "[a, b, c]".
func (m Dense[T]) String() string { return m.Strided().Format() }

// Format renders the matrix with the given options.
func (m Dense[T]) Format(opts ...core.Option) string { return m.Strided().Format(opts...) }

// SPDX-License-Identifier: MIT

// Package sparse - Mat: borrowed CRS view.
//
// Purpose:
//   - Bounds-checked element lookup by search inside a row's stored run.
//   - Row extraction and row-range slicing without copying or rebasing.
//
// Complexity quicksheet:
//   - At/TryAt: O(nnz(row)) linear, O(log nnz(row)) binary; Row/SliceRows: O(1);
//     Do: O(nnz); String: O(nrows*ncols).

package sparse

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/unsized/core"
	"github.com/katalvlaran/unsized/matrix"
)

// Mat is a borrowed view of a CRS matrix (or of a row range of one).
//   - values/colIdx are the owner's full arrays, never rebased.
//   - rowOff is a window of the owner's offsets: len == r+1, entries index
//     straight into values/colIdx.
type Mat[T any] struct {
	values []T    // full stored values of the owning root
	colIdx []int  // full column indices of the owning root
	rowOff []int  // offsets window; nil only for the zero Mat
	r, c   int    // row and column counts
	search Search // lookup strategy inherited from the owning root
}

var (
	_ matrix.Matrix[int] = Mat[int]{}
	_ fmt.Stringer       = Mat[int]{}
	_ fmt.Stringer       = Row[int]{}
	_ fmt.Stringer       = Vector[int]{}
)

// Rows returns the number of rows in the view.
func (m Mat[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m Mat[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols().
func (m Mat[T]) Shape() (rows, cols int) { return m.r, m.c }

// NNZ returns the number of values stored in the view's rows.
func (m Mat[T]) NNZ() int {
	if m.rowOff == nil {
		return 0
	}

	return m.rowOff[m.r] - m.rowOff[0]
}

// vector returns row i as a sparse vector; i must be valid.
func (m Mat[T]) vector(i int) Vector[T] {
	lo, hi := m.rowOff[i], m.rowOff[i+1]

	return Vector[T]{
		values: m.values[lo:hi:hi],
		idx:    m.colIdx[lo:hi:hi],
		n:      m.c,
		search: m.search,
	}
}

// At returns the value stored at (i, j).
// MAIN DESCRIPTION:
//   - Bounds-check both indices, then search row i's stored columns for j.
//
// Errors:
//   - ErrOutOfRange when i >= Rows() or j >= Cols() (or negative).
//   - ErrNotFound when (i, j) is not stored; no implicit zero is returned.
//
// Complexity:
//   - O(nnz(row i)) with Linear, O(log nnz(row i)) with Binary.
func (m Mat[T]) At(i, j int) (T, error) {
	var zero T
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return zero, fmt.Errorf("Sparse.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	v := m.vector(i)
	k, ok := v.find(j)
	if !ok {
		return zero, fmt.Errorf("Sparse.At(%d,%d): %w", i, j, ErrNotFound)
	}

	return v.values[k], nil
}

// TryAt is the non-failing form of At: ok is false when (i, j) is out of range
// or not stored.
func (m Mat[T]) TryAt(i, j int) (T, bool) {
	if i < 0 || i >= m.r {
		var zero T
		return zero, false
	}

	return m.vector(i).TryAt(j)
}

// Row returns row i. Lookups in the returned view use absolute column numbers.
// Errors: ErrOutOfRange. Complexity: O(1).
func (m Mat[T]) Row(i int) (Row[T], error) {
	if i < 0 || i >= m.r {
		return Row[T]{}, fmt.Errorf("Sparse.Row(%d): %w", i, ErrOutOfRange)
	}

	return Row[T]{Vector: m.vector(i)}, nil
}

// SliceRows returns rows [r.Start, r.End) as a view over the same arrays.
// MAIN DESCRIPTION:
//   - Pure view operation: only the offsets window moves.
//
// Implementation:
//   - Stage 1: validate r against Rows() (ErrBadRange) before slicing.
//   - Stage 2: rowOff window = rowOff[Start : End+1]; values/colIdx unchanged.
//
// Behavior highlights:
//   - m.SliceRows(1..3).Row(0) addresses exactly what m.Row(1) addresses.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m Mat[T]) SliceRows(r core.Range) (Mat[T], error) {
	if err := r.Check(m.r); err != nil {
		return Mat[T]{}, fmt.Errorf("Sparse.SliceRows(%s): %w", r, err)
	}
	if m.rowOff == nil {
		return m, nil // zero Mat: only 0..0 passes Check
	}
	out := m
	out.rowOff = m.rowOff[r.Start : r.End+1 : r.End+1]
	out.r = r.Len()

	return out, nil
}

// Do visits stored entries in row-major order and calls f(i, j, v); f returns
// false to stop early. Complexity: O(nnz).
func (m Mat[T]) Do(f func(i, j int, v T) bool) {
	var i, k int
	for i = 0; i < m.r; i++ {
		for k = m.rowOff[i]; k < m.rowOff[i+1]; k++ {
			if !f(i, m.colIdx[k], m.values[k]) {
				return
			}
		}
	}
}

// String renders every row as a dense list, rows separated by newlines.
func (m Mat[T]) String() string { return m.Format() }

// Format renders the matrix with the given options; unset positions show the
// element type's display zero unless core.WithUnsetMarker is given.
// Determinism: fixed row-major traversal. Complexity: O(nrows*ncols).
func (m Mat[T]) Format(opts ...core.Option) string {
	f := core.NewFormat(opts...)
	var b strings.Builder
	f.WriteRows(&b, m.r, func(b *strings.Builder, i int) { m.vector(i).write(b, f) })

	return b.String()
}

// SPDX-License-Identifier: MIT

// Package matrix: the read-only accessor shared by every 2-D view.
package matrix

// Matrix is the shape-aware, read-only element accessor implemented by Dense
// and Strided (and by sparse.Mat, whose At additionally reports unset
// positions).
//
// Complexity notes: all methods are expected O(1) for dense layouts.
type Matrix[T any] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)
}

var (
	_ Matrix[int] = Dense[int]{}
	_ Matrix[int] = Strided[int]{}
)

// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/katalvlaran/unsized/matrix"
)

// FromDense compresses a dense view into a new owning CRS root, storing every
// element that differs from T's zero value.
// MAIN DESCRIPTION:
//   - Construction path that yields sorted column indices by construction.
//
// Implementation:
//   - Stage 1: one row-major pass over m, appending non-zero cells.
//   - Stage 2: close each row by appending the running count to rowOff.
//   - Stage 3: hand the fresh arrays to New (validated like any other input).
//
// Inputs:
//   - m: any strided view (use Dense.Strided() for a Dense). It is only read.
//
// Returns:
//   - *Owned root with m.Rows() rows and m.Cols() columns.
//
// Complexity:
//   - Time O(r*c), Space O(nnz + r).
func FromDense[T comparable](m matrix.Strided[T], opts ...Option) (*Owned[T], error) {
	var zero T
	rows, cols := m.Shape()
	values := make([]T, 0)
	colIdx := make([]int, 0)
	rowOff := make([]int, 1, rows+1) // rowOff[0] == 0

	next := 0 // row whose offset closes next
	m.Do(func(i, j int, v T) bool {
		for ; next < i; next++ {
			rowOff = append(rowOff, len(values))
		}
		if v != zero {
			values = append(values, v)
			colIdx = append(colIdx, j)
		}
		return true
	})
	for ; next < rows; next++ {
		rowOff = append(rowOff, len(values))
	}

	o, err := New(values, colIdx, rowOff, cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("sparse.FromDense: %w", err)
	}

	return o, nil
}

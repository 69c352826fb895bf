// SPDX-License-Identifier: MIT

package sparse

import "fmt"

// validateCRS checks every CRS invariant before the arrays are adopted.
// MAIN DESCRIPTION:
//   - Reject malformed input at construction; nothing is corrected silently.
//
// Implementation:
//   - Stage 1: ncols >= 0, rowOff non-empty, rowOff[0] == 0.
//   - Stage 2: rowOff[last] == len(values) == len(colIdx).
//   - Stage 3: rowOff non-decreasing and bounded by nnz.
//   - Stage 4: per row, column indices strictly increasing within [0, ncols).
//
// Returns:
//   - nil, or ErrShape wrapped with the offending position.
//
// Complexity:
//   - Time O(nrows + nnz), Space O(1).
func validateCRS(nnz int, colIdx, rowOff []int, ncols int) error {
	if ncols < 0 {
		return fmt.Errorf("ncols %d: %w", ncols, ErrShape)
	}
	if len(rowOff) == 0 {
		return fmt.Errorf("empty row offsets: %w", ErrShape)
	}
	if rowOff[0] != 0 {
		return fmt.Errorf("rowOff[0]=%d: %w", rowOff[0], ErrShape)
	}
	last := len(rowOff) - 1
	if rowOff[last] != nnz {
		return fmt.Errorf("rowOff[%d]=%d, nnz=%d: %w", last, rowOff[last], nnz, ErrShape)
	}
	if len(colIdx) != nnz {
		return fmt.Errorf("len(colIdx)=%d, nnz=%d: %w", len(colIdx), nnz, ErrShape)
	}

	var i, k int
	for i = 0; i < last; i++ {
		lo, hi := rowOff[i], rowOff[i+1]
		if hi < lo || hi > nnz {
			return fmt.Errorf("rowOff[%d]=%d, rowOff[%d]=%d: %w", i, lo, i+1, hi, ErrShape)
		}
		for k = lo; k < hi; k++ {
			j := colIdx[k]
			if j < 0 || j >= ncols {
				return fmt.Errorf("row %d: column %d outside [0,%d): %w", i, j, ncols, ErrShape)
			}
			if k > lo && j <= colIdx[k-1] {
				return fmt.Errorf("row %d: columns not strictly increasing at %d: %w", i, k, ErrShape)
			}
		}
	}

	return nil
}

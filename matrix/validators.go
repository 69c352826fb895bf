// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for construction-time shape checks.
//  - Keep constructors minimal by delegating shape arithmetic here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Every check runs before any reslicing so an invalid shape never produces
//    an out-of-bounds slice expression.

package matrix

// maxInt bounds shape products so nrows*ncols cannot overflow.
const maxInt = int(^uint(0) >> 1)

// extent returns how many backing elements an nrows×ncols region with the given
// stride spans, counting from element (0,0): (nrows-1)*stride + ncols, or 0 for
// an empty region.
// Complexity: O(1).
func extent(nrows, ncols, stride int) int {
	if nrows == 0 || ncols == 0 {
		return 0
	}

	return (nrows-1)*stride + ncols
}

// validateReshape checks that a buffer of n elements is exactly nrows×ncols.
//
// Inputs: buffer length, requested shape.
// Returns: nil or ErrShape.
// Complexity: O(1).
func validateReshape(n, nrows, ncols int) error {
	if nrows < 0 || ncols < 0 {
		return ErrShape
	}
	if ncols != 0 && nrows > maxInt/ncols {
		return ErrShape // product would overflow
	}
	if n != nrows*ncols {
		return ErrShape
	}

	return nil
}

// validateStrided checks a strided layout over a buffer of n elements.
//
// Implementation:
//   - Stage 1: non-negative dimensions, stride >= ncols.
//   - Stage 2: overflow guard on (nrows-1)*stride.
//   - Stage 3: buffer covers the extent.
//
// Returns: nil or ErrShape.
// Complexity: O(1).
func validateStrided(n, nrows, ncols, stride int) error {
	if nrows < 0 || ncols < 0 || stride < ncols {
		return ErrShape
	}
	if nrows > 1 && stride != 0 && nrows-1 > (maxInt-ncols)/stride {
		return ErrShape
	}
	if n < extent(nrows, ncols, stride) {
		return ErrShape
	}

	return nil
}

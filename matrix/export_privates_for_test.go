// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private shape arithmetic
//
// Purpose:
//   - Expose the unexported validators to matrix_test ONLY, so boundary and
//     overflow cases can be checked without building huge buffers.
//
// Build Policy:
//   - A _test.go file in package matrix: invisible in production builds.

var (
	// ExportedExtent exposes extent for white-box tests.
	ExportedExtent = extent
	// ExportedValidateReshape exposes validateReshape for white-box tests.
	ExportedValidateReshape = validateReshape
	// ExportedValidateStrided exposes validateStrided for white-box tests.
	ExportedValidateStrided = validateStrided
)

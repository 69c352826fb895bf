// SPDX-License-Identifier: MIT
// Package core: sentinel error set shared by every view family.
// This file defines ONLY package-level sentinel errors. Views in matrix, slice
// and sparse return these sentinels (wrapped with call-site context) and tests
// MUST check them via errors.Is. No public method panics on caller error.

package core

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "core: ..." so the failing layer is visible in
// logs. Public methods wrap these with fmt.Errorf("Type.Method(args): %w", ErrX);
// callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// released root -> shape -> range -> index -> not found.

var (
	// ErrShape is returned when construction input is malformed: a buffer whose
	// length disagrees with the requested shape, a stride narrower than the row,
	// or inconsistent CRS offsets. Always detected at construction time.
	ErrShape = errors.New("core: invalid shape")

	// ErrOutOfRange indicates that an index (row, column or position) is outside
	// the bounds of the view it was applied to.
	ErrOutOfRange = errors.New("core: index out of range")

	// ErrBadRange indicates an inverted or out-of-bounds slicing range. It is
	// detected before any offset is computed.
	ErrBadRange = errors.New("core: invalid range")

	// ErrNotFound signals that a sparse element is not stored. It is distinct
	// from "the element is zero": raw sparse indexing never synthesizes zeros.
	ErrNotFound = errors.New("core: element not set")

	// ErrReleased indicates that an owning root was used after Release.
	ErrReleased = errors.New("core: storage already released")
)

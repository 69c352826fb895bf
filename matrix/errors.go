// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// The matrix views share their sentinels with every other view family, so the
// values below are the core sentinels re-exported under this package's name.
// Tests MUST check them via errors.Is.

package matrix

import "github.com/katalvlaran/unsized/core"

var (
	// ErrShape is returned by Reshape/NewStrided/FromGeneral when the buffer
	// does not match the requested shape or the stride is narrower than a row.
	ErrShape = core.ErrShape

	// ErrOutOfRange indicates that a row, column or element index is outside
	// the view. Public indexers (At/Row/Col) MUST return this, not panic.
	ErrOutOfRange = core.ErrOutOfRange

	// ErrBadRange indicates an inverted or out-of-bounds Sub/Slice range.
	ErrBadRange = core.ErrBadRange
)


// SPDX-License-Identifier: MIT

package sparse

import "github.com/katalvlaran/unsized/core"

// Sentinels re-exported from core so callers can match without importing it.
var (
	// ErrShape: inconsistent CRS arrays at construction.
	ErrShape = core.ErrShape

	// ErrOutOfRange: row or column index outside the matrix.
	ErrOutOfRange = core.ErrOutOfRange

	// ErrBadRange: inverted or out-of-bounds SliceRows range.
	ErrBadRange = core.ErrBadRange

	// ErrNotFound: the requested element is not stored.
	ErrNotFound = core.ErrNotFound

	// ErrReleased: the owning root was used after Release.
	ErrReleased = core.ErrReleased
)

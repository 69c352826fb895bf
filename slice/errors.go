// SPDX-License-Identifier: MIT

package slice

import "github.com/katalvlaran/unsized/core"

// Sentinels re-exported from core so callers can match without importing it.
var (
	ErrOutOfRange = core.ErrOutOfRange
	ErrBadRange   = core.ErrBadRange
	ErrReleased   = core.ErrReleased
)

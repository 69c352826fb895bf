// SPDX-License-Identifier: MIT

package core

import "fmt"

// Range is a half-open interval [Start, End) of row, column or element indices.
// The zero Range is empty and valid for every view.
type Range struct {
	Start int // first index included
	End   int // first index excluded
}

// Span builds the half-open Range [start, end).
// No validation happens here; views call Check before using it.
func Span(start, end int) Range { return Range{Start: start, End: end} }

// Len returns End-Start. It is meaningful only for a Range that passed Check.
func (r Range) Len() int { return r.End - r.Start }

// Check validates r against an extent of n indices.
// MAIN DESCRIPTION:
//   - Reject inverted ranges and ranges that leave [0, n].
//
// Implementation:
//   - Stage 1: Start must be non-negative and not past End.
//   - Stage 2: End must not exceed n.
//
// Returns:
//   - nil, or ErrBadRange (unwrapped; callers add their own context).
//
// Complexity:
//   - Time O(1), Space O(1).
func (r Range) Check(n int) error {
	if r.Start < 0 || r.Start > r.End {
		return ErrBadRange
	}
	if r.End > n {
		return ErrBadRange
	}

	return nil
}

// String renders r as "start..end", the notation used in error messages.
func (r Range) String() string { return fmt.Sprintf("%d..%d", r.Start, r.End) }

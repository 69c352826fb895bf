// SPDX-License-Identifier: MIT

// Package slice - View: borrowed, bounds-checked 1-D run.
//
// Purpose:
//   - Reinterpret a caller-owned buffer as a read-only sequence without copying.
//   - Guarantee safety at the public surface: At/Slice return errors, never panic.
//
// Complexity quicksheet:
//   - Of: O(1); At: O(1); Slice: O(1); AppendTo/String: O(n).

package slice

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/unsized/core"
)

// View is a borrowed window over contiguous elements.
// The backing slice is capped at its length so appends through AppendTo can
// never reach storage outside the window.
type View[T any] struct {
	data []T // len == cap == view length
}

// Of returns a View borrowing buf. The view must not outlive buf's owner's
// intent for it; writes to buf are visible through the view.
// Complexity: O(1).
func Of[T any](buf []T) View[T] {
	return View[T]{data: buf[:len(buf):len(buf)]}
}

// Len returns the number of elements in the view.
func (v View[T]) Len() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
// Complexity: O(1).
func (v View[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, fmt.Errorf("View.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Slice returns the sub-view [r.Start, r.End) sharing the same storage.
// MAIN DESCRIPTION:
//   - Narrow a view without copying.
//
// Implementation:
//   - Stage 1: validate r against Len (before any reslicing).
//   - Stage 2: reslice with a capped three-index expression.
//
// Errors:
//   - ErrBadRange for inverted or out-of-bounds ranges.
//
// Complexity:
//   - Time O(1), Space O(1).
func (v View[T]) Slice(r core.Range) (View[T], error) {
	if err := r.Check(len(v.data)); err != nil {
		return View[T]{}, fmt.Errorf("View.Slice(%s): %w", r, err)
	}

	return View[T]{data: v.data[r.Start:r.End:r.End]}, nil
}

// Do visits elements in order; f returns false to stop early.
// Complexity: O(n).
func (v View[T]) Do(f func(i int, x T) bool) {
	for i, x := range v.data {
		if !f(i, x) {
			return
		}
	}
}

// AppendTo appends a copy of the elements to dst and returns the result.
// This is the only way to get the elements out as a plain slice; the view
// never hands out its backing storage.
func (v View[T]) AppendTo(dst []T) []T { return append(dst, v.data...) }

// String renders the view as "[a, b, c]" with default options.
func (v View[T]) String() string { return v.Format() }

// Format renders the view as a list using the given options.
func (v View[T]) Format(opts ...core.Option) string {
	f := core.NewFormat(opts...)
	var b strings.Builder
	f.WriteList(&b, len(v.data), func(i int) string { return f.Elem(v.data[i]) })

	return b.String()
}

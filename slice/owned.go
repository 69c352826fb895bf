// SPDX-License-Identifier: MIT

package slice

import "fmt"

// Owned holds exclusive responsibility for a buffer. It is the only type in
// this package with Release; Views handed out by it cannot release anything.
//
// After Release the buffer reference is dropped and every method returns
// ErrReleased. Views obtained earlier stay valid (the garbage collector keeps
// their storage alive), which is exactly the borrow-outlives-owner case the
// ownership rule forbids callers from relying on.
type Owned[T any] struct {
	data     []T
	released bool
}

// Box takes ownership of buf. The caller must not use buf afterwards.
// Complexity: O(1).
func Box[T any](buf []T) *Owned[T] {
	return &Owned[T]{data: buf}
}

// Len returns the number of owned elements, or 0 after Release.
func (o *Owned[T]) Len() int { return len(o.data) }

// View borrows the whole buffer.
func (o *Owned[T]) View() (View[T], error) {
	if o.released {
		return View[T]{}, fmt.Errorf("Owned.View: %w", ErrReleased)
	}

	return Of(o.data), nil
}

// Release drops the buffer. The first call succeeds; every later call returns
// ErrReleased, so a buffer can never be released twice.
// Complexity: O(1).
func (o *Owned[T]) Release() error {
	if o.released {
		return fmt.Errorf("Owned.Release: %w", ErrReleased)
	}
	o.data = nil // drop the only owning reference
	o.released = true

	return nil
}

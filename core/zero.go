// SPDX-License-Identifier: MIT

package core

// Zeroer is the optional "zero" capability of an element type.
// Only formatting consults it: sparse views render unset positions with Zero()
// when the element type implements it. Indexing and slicing never require it.
type Zeroer[T any] interface {
	Zero() T
}

// ZeroOf returns the display zero for T: Zero() when T implements Zeroer[T],
// otherwise Go's zero value.
// Complexity: O(1).
func ZeroOf[T any]() T {
	var zero T
	if z, ok := any(zero).(Zeroer[T]); ok {
		return z.Zero()
	}

	return zero
}

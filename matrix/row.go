// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/unsized/core"
	"github.com/katalvlaran/unsized/slice"
)

// Row is a borrowed view of one matrix row: a contiguous run of Cols()
// elements. Indexing, iteration and copy-out come from slice.View.
type Row[T any] struct {
	slice.View[T]
}

// Slice narrows the row to r without copying.
// Errors: ErrBadRange. Complexity: O(1).
func (r Row[T]) Slice(rg core.Range) (Row[T], error) {
	v, err := r.View.Slice(rg)
	if err != nil {
		return Row[T]{}, fmt.Errorf("Row.Slice: %w", err)
	}

	return Row[T]{View: v}, nil
}

// String renders the row as "Row([a, b, c])".
func (r Row[T]) String() string { return r.Format() }

// Format renders the row with the given options.
func (r Row[T]) Format(opts ...core.Option) string {
	return "Row(" + r.View.Format(opts...) + ")"
}

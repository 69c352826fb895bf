// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/unsized/core"
)

// Col is a borrowed view of one matrix column: n elements, element i at
// data[i*stride].
type Col[T any] struct {
	data   []T // len == cap == (n-1)*stride + 1; nil when n == 0
	n      int // element count
	stride int // distance between consecutive elements
}

// newCol caps buf at the column's extent. Callers guarantee
// len(buf) >= (n-1)*stride + 1 when n > 0.
func newCol[T any](buf []T, n, stride int) Col[T] {
	if n == 0 {
		return Col[T]{stride: stride}
	}
	need := (n-1)*stride + 1

	return Col[T]{data: buf[:need:need], n: n, stride: stride}
}

// Len returns the number of elements in the column.
func (c Col[T]) Len() int { return c.n }

// Stride returns the distance between consecutive elements in the backing storage.
func (c Col[T]) Stride() int { return c.stride }

// At returns element i (at base + i*stride) or ErrOutOfRange.
// Complexity: O(1).
func (c Col[T]) At(i int) (T, error) {
	if i < 0 || i >= c.n {
		var zero T
		return zero, fmt.Errorf("Col.At(%d): %w", i, ErrOutOfRange)
	}

	return c.data[i*c.stride], nil
}

// Slice narrows the column to elements [r.Start, r.End) without copying.
// Errors: ErrBadRange. Complexity: O(1).
func (c Col[T]) Slice(r core.Range) (Col[T], error) {
	if err := r.Check(c.n); err != nil {
		return Col[T]{}, fmt.Errorf("Col.Slice(%s): %w", r, err)
	}
	if r.Len() == 0 {
		return Col[T]{stride: c.stride}, nil
	}

	return newCol(c.data[r.Start*c.stride:], r.Len(), c.stride), nil
}

// Do visits elements top to bottom; f returns false to stop early.
func (c Col[T]) Do(f func(i int, v T) bool) {
	for i := 0; i < c.n; i++ {
		if !f(i, c.data[i*c.stride]) {
			return
		}
	}
}

// AppendTo appends a copy of the column to dst.
func (c Col[T]) AppendTo(dst []T) []T {
	c.Do(func(_ int, v T) bool {
		dst = append(dst, v)
		return true
	})

	return dst
}

// String renders the column as "Col([a, b, c])".
func (c Col[T]) String() string { return c.Format() }

// Format renders the column with the given options.
func (c Col[T]) Format(opts ...core.Option) string {
	f := core.NewFormat(opts...)
	var b strings.Builder
	b.WriteString("Col(")
	f.WriteList(&b, c.n, func(i int) string { return f.Elem(c.data[i*c.stride]) })
	b.WriteString(")")

	return b.String()
}

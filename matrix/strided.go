// SPDX-License-Identifier: MIT

// Package matrix - Strided view (row stride may exceed the column count).
//
// Purpose:
//   - Address an nrows×ncols region whose row r starts stride elements after row r-1.
//   - Carve sub-matrices out of a parent without copying: the child keeps the
//     parent's stride and starts rowStart*stride + colStart elements in.
//   - Guarantee safety at the public surface: every accessor bounds-checks.
//
// Complexity quicksheet:
//   - NewStrided: O(1); At/Row/Col/Sub: O(1); Do/String/Compact: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/unsized/core"
	"github.com/katalvlaran/unsized/slice"
)

// ---------- error context tags ----------

const (
	tagStrided = "Strided" // type tag used in error wrappers
	tagDense   = "Dense"   // type tag used in error wrappers

	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
	ctxCol = "Col" // method tag used in error wrappers
	ctxSub = "Sub" // method tag used in error wrappers
)

// viewErrorf wraps an error with a uniform "<Type>.<method>(args): %w" context.
func viewErrorf(typ, method, args string, err error) error {
	return fmt.Errorf("%s.%s(%s): %w", typ, method, args, err)
}

// Strided is a read-only view of an nrows×ncols region.
//   - data starts at element (0,0) and is capped at the region's extent.
//   - element (i,j) lives at data[i*stride + j].
//   - stride >= c always; a Dense view is the special case stride == c.
type Strided[T any] struct {
	data   []T // len == cap == extent(r, c, stride); nil for empty regions
	r, c   int // row and column counts (>= 0)
	stride int // distance between row starts (>= c)
}

// NewStrided views buf as an nrows×ncols matrix whose rows start stride apart.
// MAIN DESCRIPTION:
//   - Borrowing constructor for layouts produced elsewhere (BLAS-style buffers,
//     padded images, sub-regions of larger allocations).
//
// Implementation:
//   - Stage 1: validate shape/stride against len(buf) (validateStrided).
//   - Stage 2: cap the buffer at the extent so nothing past the last row leaks.
//
// Inputs:
//   - buf: caller-owned storage; must outlive the view.
//   - nrows, ncols: region shape (zero allowed).
//   - stride: elements between row starts; must be >= ncols.
//
// Returns:
//   - Strided view or ErrShape.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewStrided[T any](buf []T, nrows, ncols, stride int) (Strided[T], error) {
	if err := validateStrided(len(buf), nrows, ncols, stride); err != nil {
		return Strided[T]{}, fmt.Errorf("NewStrided(len=%d, %dx%d, stride=%d): %w", len(buf), nrows, ncols, stride, err)
	}

	return newStrided(buf, nrows, ncols, stride), nil
}

// newStrided builds a view without validation; callers guarantee the layout.
func newStrided[T any](buf []T, nrows, ncols, stride int) Strided[T] {
	n := extent(nrows, ncols, stride)
	if n == 0 {
		return Strided[T]{r: nrows, c: ncols, stride: stride}
	}

	return Strided[T]{data: buf[:n:n], r: nrows, c: ncols, stride: stride}
}

// Rows returns the row count. Complexity: O(1).
func (m Strided[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m Strided[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m Strided[T]) Shape() (rows, cols int) { return m.r, m.c }

// Stride returns the distance between consecutive row starts.
func (m Strided[T]) Stride() int { return m.stride }

// IsContiguous reports whether the rows are packed back to back, i.e. the view
// is reinterpretable as a Dense without copying.
func (m Strided[T]) IsContiguous() bool { return m.stride == m.c || m.r <= 1 }

// At returns element (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m Strided[T]) At(row, col int) (T, error) { return m.at(tagStrided, row, col) }

func (m Strided[T]) at(typ string, row, col int) (T, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		var zero T
		return zero, viewErrorf(typ, ctxAt, fmt.Sprintf("%d,%d", row, col), ErrOutOfRange)
	}

	return m.data[row*m.stride+col], nil
}

// Row returns row r as a contiguous Row view.
// MAIN DESCRIPTION:
//   - Borrow the run [r*stride, r*stride+ncols) of the backing storage.
//
// Errors:
//   - ErrOutOfRange when r is not a valid row.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m Strided[T]) Row(r int) (Row[T], error) { return m.row(tagStrided, r) }

func (m Strided[T]) row(typ string, r int) (Row[T], error) {
	if r < 0 || r >= m.r {
		return Row[T]{}, viewErrorf(typ, ctxRow, fmt.Sprint(r), ErrOutOfRange)
	}
	if m.c == 0 {
		return Row[T]{}, nil
	}
	off := r * m.stride

	return Row[T]{View: slice.Of(m.data[off : off+m.c])}, nil
}

// Col returns column c as a Col view with the matrix stride.
// Errors: ErrOutOfRange when c is not a valid column.
// Complexity: O(1).
func (m Strided[T]) Col(c int) (Col[T], error) { return m.col(tagStrided, c) }

func (m Strided[T]) col(typ string, c int) (Col[T], error) {
	if c < 0 || c >= m.c {
		return Col[T]{}, viewErrorf(typ, ctxCol, fmt.Sprint(c), ErrOutOfRange)
	}
	if m.r == 0 {
		return Col[T]{stride: m.stride}, nil
	}

	return newCol(m.data[c:], m.r, m.stride), nil
}

// Sub returns the sub-matrix rows×cols as a new view over the same storage.
// MAIN DESCRIPTION:
//   - No-copy window; the child keeps this view's stride, so Sub composes:
//     m.Sub(a..b, c..d).Sub(0..k, 0..l) addresses m.Sub(a..a+k, c..c+l).
//
// Implementation:
//   - Stage 1: validate both ranges (ErrBadRange) before any offset arithmetic.
//   - Stage 2: offset the base by rows.Start*stride + cols.Start.
//   - Stage 3: cap the child at its own extent.
//
// Inputs:
//   - rows: half-open row range within [0, Rows()].
//   - cols: half-open column range within [0, Cols()].
//
// Returns:
//   - Strided view of shape rows.Len()×cols.Len(), or ErrBadRange.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m Strided[T]) Sub(rows, cols core.Range) (Strided[T], error) {
	return m.sub(tagStrided, rows, cols)
}

func (m Strided[T]) sub(typ string, rows, cols core.Range) (Strided[T], error) {
	if err := rows.Check(m.r); err != nil {
		return Strided[T]{}, viewErrorf(typ, ctxSub, rows.String()+", "+cols.String(), err)
	}
	if err := cols.Check(m.c); err != nil {
		return Strided[T]{}, viewErrorf(typ, ctxSub, rows.String()+", "+cols.String(), err)
	}
	nr, nc := rows.Len(), cols.Len()
	if nr == 0 || nc == 0 {
		return Strided[T]{r: nr, c: nc, stride: m.stride}, nil // empty window owns no storage
	}
	off := rows.Start*m.stride + cols.Start

	return newStrided(m.data[off:], nr, nc, m.stride), nil
}

// AsDense reinterprets a contiguous view as Dense without copying.
// Returns ErrShape when rows are padded (stride > cols with more than one row);
// use Compact for a copying conversion.
func (m Strided[T]) AsDense() (Dense[T], error) {
	if !m.IsContiguous() {
		return Dense[T]{}, fmt.Errorf("Strided.AsDense(stride=%d, cols=%d): %w", m.stride, m.c, ErrShape)
	}

	return Dense[T]{data: m.data, r: m.r, c: m.c}, nil
}

// Compact copies the region into a fresh contiguous buffer.
// MAIN DESCRIPTION:
//   - The only allocating operation on views; the result owns its storage and
//     no longer aliases the parent.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m Strided[T]) Compact() Dense[T] {
	buf := make([]T, 0, m.r*m.c)
	for i := 0; i < m.r && m.c > 0; i++ {
		off := i * m.stride
		buf = append(buf, m.data[off:off+m.c]...)
	}

	return Dense[T]{data: buf, r: m.r, c: m.c}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m Strided[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.stride // row start in the backing buffer
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders one row per line, each as "[a, b, c]".
func (m Strided[T]) String() string { return m.Format() }

// Format renders the view with the given options.
// Determinism: fixed row-major traversal. Complexity: O(r*c).
func (m Strided[T]) Format(opts ...core.Option) string {
	f := core.NewFormat(opts...)
	var b strings.Builder
	f.WriteRows(&b, m.r, func(b *strings.Builder, i int) {
		base := i * m.stride
		f.WriteList(b, m.c, func(j int) string { return f.Elem(m.data[base+j]) })
	})

	return b.String()
}

// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/katalvlaran/unsized/core"
)

// Owned is the owning root of a CRS matrix: the only type that can release
// the values, column-index and row-offset arrays.
//
// Views (Mat, Row, Vector) borrow from it and carry no release capability.
// Release runs at most once; afterwards every method reports ErrReleased.
// Owned is not safe for concurrent Release; it has a single owner.
type Owned[T any] struct {
	m         Mat[T]
	onRelease func(Stats)
	released  bool
}

// New adopts the three CRS arrays as a new owning root.
// MAIN DESCRIPTION:
//   - Validate once, take ownership without copying.
//
// Implementation:
//   - Stage 1: validateCRS (offsets, lengths, sorted in-range columns).
//   - Stage 2: nrows = len(rowOff)-1; cap every array at its length.
//   - Stage 3: resolve options (search strategy, release hook).
//
// Inputs:
//   - values: stored elements, row by row.
//   - colIdx: column of each stored element.
//   - rowOff: len nrows+1 offsets into values/colIdx.
//   - ncols : logical column count.
//
// Returns:
//   - *Owned root or ErrShape.
//
// Notes:
//   - Ownership transfers to the root: the caller must not read or write the
//     arrays afterwards.
//
// Complexity:
//   - Time O(nrows + nnz), Space O(1).
func New[T any](values []T, colIdx, rowOff []int, ncols int, opts ...Option) (*Owned[T], error) {
	if err := validateCRS(len(values), colIdx, rowOff, ncols); err != nil {
		return nil, fmt.Errorf("sparse.New: %w", err)
	}
	o := gatherOptions(opts)

	return &Owned[T]{
		m: Mat[T]{
			values: values[:len(values):len(values)],
			colIdx: colIdx[:len(colIdx):len(colIdx)],
			rowOff: rowOff[:len(rowOff):len(rowOff)],
			r:      len(rowOff) - 1,
			c:      ncols,
			search: o.search,
		},
		onRelease: o.onRelease,
	}, nil
}

// errReleased wraps ErrReleased with the method name.
func errReleased(method string) error {
	return fmt.Errorf("Owned.%s: %w", method, ErrReleased)
}

// View borrows the whole matrix.
func (o *Owned[T]) View() (Mat[T], error) {
	if o.released {
		return Mat[T]{}, errReleased("View")
	}

	return o.m, nil
}

// Released reports whether Release has run.
func (o *Owned[T]) Released() bool { return o.released }

// Rows returns the row count, or 0 after Release.
func (o *Owned[T]) Rows() int { return o.m.r }

// Cols returns the column count, or 0 after Release.
func (o *Owned[T]) Cols() int { return o.m.c }

// NNZ returns the number of stored values, or 0 after Release.
func (o *Owned[T]) NNZ() int { return o.m.NNZ() }

// At is Mat.At on the whole matrix; ErrReleased after Release.
func (o *Owned[T]) At(i, j int) (T, error) {
	if o.released {
		var zero T
		return zero, errReleased("At")
	}

	return o.m.At(i, j)
}

// TryAt is Mat.TryAt on the whole matrix; ok is false after Release.
func (o *Owned[T]) TryAt(i, j int) (T, bool) { return o.m.TryAt(i, j) }

// Row is Mat.Row on the whole matrix; ErrReleased after Release.
func (o *Owned[T]) Row(i int) (Row[T], error) {
	if o.released {
		return Row[T]{}, errReleased("Row")
	}

	return o.m.Row(i)
}

// SliceRows is Mat.SliceRows on the whole matrix; ErrReleased after Release.
func (o *Owned[T]) SliceRows(r core.Range) (Mat[T], error) {
	if o.released {
		return Mat[T]{}, errReleased("SliceRows")
	}

	return o.m.SliceRows(r)
}

// String renders the matrix; a released root renders as "Owned(released)".
func (o *Owned[T]) String() string { return o.Format() }

// Format renders the matrix with the given options.
func (o *Owned[T]) Format(opts ...core.Option) string {
	if o.released {
		return "Owned(released)"
	}

	return o.m.Format(opts...)
}

// Release drops the three arrays and fires the release hook.
// MAIN DESCRIPTION:
//   - Exactly-once teardown of the owning root.
//
// Implementation:
//   - Stage 1: refuse a second call with ErrReleased.
//   - Stage 2: snapshot Stats, clear the view (dropping every array reference).
//   - Stage 3: invoke the hook, if any.
//
// Notes:
//   - Views borrowed earlier keep their arrays reachable; reading through them
//     after Release breaks the borrowing rule and is the caller's bug.
//
// Complexity:
//   - Time O(1).
func (o *Owned[T]) Release() error {
	if o.released {
		return errReleased("Release")
	}
	st := Stats{NRows: o.m.r, NCols: o.m.c, NNZ: o.m.NNZ()}
	o.m = Mat[T]{} // drop values, colIdx and rowOff together
	o.released = true
	if o.onRelease != nil {
		o.onRelease(st)
	}

	return nil
}

// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/unsized/core"
)

// Vector is a borrowed sparse vector of logical length n: NNZ stored values and
// their strictly increasing positions. Positions are absolute (column numbers),
// never re-indexed from zero.
type Vector[T any] struct {
	values []T    // stored values of this run
	idx    []int  // positions of values; same length, strictly increasing
	n      int    // logical length (ncols of the parent matrix)
	search Search // lookup strategy inherited from the owning root
}

// Len returns the logical length.
func (v Vector[T]) Len() int { return v.n }

// NNZ returns the number of stored values.
func (v Vector[T]) NNZ() int { return len(v.values) }

// find locates position j among the stored indices.
// Implementation:
//   - Linear: scan, stop once a stored position exceeds j (sorted invariant).
//   - Binary: bisect with slices.BinarySearch.
//
// Complexity: O(nnz) linear, O(log nnz) binary.
func (v Vector[T]) find(j int) (int, bool) {
	if v.search == Binary {
		return slices.BinarySearch(v.idx, j)
	}
	for k, p := range v.idx {
		if p > j {
			break // sorted: j cannot appear later
		}
		if p == j {
			return k, true
		}
	}

	return 0, false
}

// At returns the value stored at position j.
// Errors:
//   - ErrOutOfRange when j is outside [0, Len()).
//   - ErrNotFound when nothing is stored at j (no implicit zero).
func (v Vector[T]) At(j int) (T, error) {
	var zero T
	if j < 0 || j >= v.n {
		return zero, fmt.Errorf("Vector.At(%d): %w", j, ErrOutOfRange)
	}
	k, ok := v.find(j)
	if !ok {
		return zero, fmt.Errorf("Vector.At(%d): %w", j, ErrNotFound)
	}

	return v.values[k], nil
}

// TryAt is the non-failing form of At: ok is false when j is out of range or
// not stored.
func (v Vector[T]) TryAt(j int) (T, bool) {
	var zero T
	if j < 0 || j >= v.n {
		return zero, false
	}
	k, ok := v.find(j)
	if !ok {
		return zero, false
	}

	return v.values[k], true
}

// Do visits stored entries in increasing position; f returns false to stop.
// Complexity: O(nnz).
func (v Vector[T]) Do(f func(j int, x T) bool) {
	for k, x := range v.values {
		if !f(v.idx[k], x) {
			return
		}
	}
}

// String renders the dense picture "[a, 0, b]" with default options.
func (v Vector[T]) String() string { return v.Format() }

// Format renders all Len() positions.
// MAIN DESCRIPTION:
//   - Merge the sorted stored positions with 0..Len()-1 in one pass.
//
// Implementation:
//   - Stage 1: resolve options and the fill cell (unset marker or display zero).
//   - Stage 2: for each position, emit the stored value when the cursor's
//     index matches and advance the cursor; otherwise emit the fill cell.
//
// Behavior highlights:
//   - Total: never fails on a valid vector.
//
// Complexity:
//   - Time O(Len()), Space O(1) beyond the builder.
func (v Vector[T]) Format(opts ...core.Option) string {
	f := core.NewFormat(opts...)
	var b strings.Builder
	v.write(&b, f)

	return b.String()
}

// write renders into b; shared with Mat.Format so a matrix dump is the rows'
// dumps joined by the row separator.
func (v Vector[T]) write(b *strings.Builder, f core.Format) {
	fill, ok := f.Unset()
	if !ok {
		fill = f.Elem(core.ZeroOf[T]())
	}
	k := 0 // cursor into the stored run
	f.WriteList(b, v.n, func(j int) string {
		if k < len(v.idx) && v.idx[k] == j {
			k++
			return f.Elem(v.values[k-1])
		}

		return fill
	})
}

// Row is a borrowed view of one row of a sparse matrix.
type Row[T any] struct {
	Vector[T]
}

// String renders the row as "Row([a, 0, b])".
func (r Row[T]) String() string { return r.Format() }

// Format renders the row with the given options.
func (r Row[T]) Format(opts ...core.Option) string {
	return "Row(" + r.Vector.Format(opts...) + ")"
}

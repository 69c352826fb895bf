// SPDX-License-Identifier: MIT

// Package matrix - zero-copy bridges to gonum.
//
// blas64.General is the same fat pointer as Strided[float64]: {Rows, Cols,
// Stride, Data}. The functions below translate between the two without
// copying, so a view can be handed to gonum (and a gonum slice viewed here)
// while both sides alias one buffer.

package matrix

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// errNilGonum marks a nil *mat.Dense passed to FromGonum.
var errNilGonum = errors.New("matrix: nil gonum matrix")

// FromGeneral views a BLAS general matrix as Strided[float64].
// Errors: ErrShape when the fields describe an impossible layout.
// Complexity: O(1).
func FromGeneral(g blas64.General) (Strided[float64], error) {
	m, err := NewStrided(g.Data, g.Rows, g.Cols, g.Stride)
	if err != nil {
		return Strided[float64]{}, fmt.Errorf("FromGeneral: %w", err)
	}

	return m, nil
}

// ToGeneral exposes m as a BLAS general matrix sharing m's storage.
// Complexity: O(1).
func ToGeneral(m Strided[float64]) blas64.General {
	return blas64.General{
		Rows:   m.r,
		Cols:   m.c,
		Data:   m.data,
		Stride: m.stride,
	}
}

// FromGonum views a gonum Dense (including one obtained from Dense.Slice,
// whose stride exceeds its width) as Strided[float64].
// Errors: ErrShape for a nil matrix or an impossible raw layout.
func FromGonum(d *mat.Dense) (Strided[float64], error) {
	if d == nil {
		return Strided[float64]{}, fmt.Errorf("FromGonum: %w: %w", ErrShape, errNilGonum)
	}

	return FromGeneral(d.RawMatrix())
}

// ToGonum wraps m in a gonum Dense that aliases m's storage.
// MAIN DESCRIPTION:
//   - Hand a view to gonum without copying; gonum mutations are visible to
//     every view over the same buffer.
//
// Errors:
//   - ErrShape for empty views (gonum has no zero-sized matrices).
//
// Complexity:
//   - Time O(1), Space O(1).
func ToGonum(m Strided[float64]) (*mat.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("ToGonum(%dx%d): %w", m.r, m.c, ErrShape)
	}
	d := new(mat.Dense)
	d.SetRawMatrix(ToGeneral(m)) // no copy: d aliases m.data

	return d, nil
}

// SPDX-License-Identifier: MIT
// Package sparse_test contains shared fixtures.
//
// The 4×6 fixture:
//
//	[1, 2, 0, 0, 0, 0]
//	[0, 3, 0, 4, 0, 0]
//	[0, 0, 5, 6, 7, 0]
//	[0, 0, 0, 0, 0, 8]

package sparse_test

import (
	"testing"

	"github.com/katalvlaran/unsized/sparse"
)

const fixtureCols = 6

// fixture returns fresh CRS arrays for the 4×6 matrix above.
func fixture() (values []int, colIdx, rowOff []int) {
	return []int{1, 2, 3, 4, 5, 6, 7, 8},
		[]int{0, 1, 1, 3, 2, 3, 4, 5},
		[]int{0, 2, 4, 7, 8}
}

// mustFixture builds an owning root over the fixture and fails the test on error.
func mustFixture(tb testing.TB, opts ...sparse.Option) *sparse.Owned[int] {
	tb.Helper()
	values, colIdx, rowOff := fixture()
	o, err := sparse.New(values, colIdx, rowOff, fixtureCols, opts...)
	if err != nil {
		tb.Fatalf("sparse.New(fixture): %v", err)
	}

	return o
}

// mustView borrows the whole matrix from o.
func mustView[T any](tb testing.TB, o *sparse.Owned[T]) sparse.Mat[T] {
	tb.Helper()
	m, err := o.View()
	if err != nil {
		tb.Fatalf("View: %v", err)
	}

	return m
}

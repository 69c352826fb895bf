// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for view tests.
//   • Keep every fixture's element value equal to its flat offset, so an
//     address computation can be checked by reading the value back.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/unsized/matrix"
)

// demo is the 3×5 fixture used throughout the package tests and examples.
var demo = []int{
	0, 1, 2, 3, 4,
	5, 6, 7, 8, 9,
	8, 7, 6, 5, 4,
}

// seq RETURNS []int{0, 1, ..., n-1}; element k equals its own offset.
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// mustReshape wraps matrix.Reshape and fails the test (fatal) on error.
// Implementation:
//   - Stage 1: call matrix.Reshape(buf, r, c).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Complexity:
//   - Time O(1), Space O(1).
func mustReshape[T any](tb testing.TB, buf []T, r, c int) matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.Reshape(buf, r, c)
	if err != nil {
		tb.Fatalf("Reshape(len=%d, %dx%d): %v", len(buf), r, c, err)
	}

	return m
}

// mustStrided wraps matrix.NewStrided and fails the test on error.
func mustStrided[T any](tb testing.TB, buf []T, r, c, stride int) matrix.Strided[T] {
	tb.Helper()
	m, err := matrix.NewStrided(buf, r, c, stride)
	if err != nil {
		tb.Fatalf("NewStrided(len=%d, %dx%d, %d): %v", len(buf), r, c, stride, err)
	}

	return m
}

// mustAt reads (i,j) from any Matrix and fails the test on error.
func mustAt[T any](tb testing.TB, m matrix.Matrix[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

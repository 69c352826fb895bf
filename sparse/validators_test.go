package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unsized/sparse"
)

// TestNewRejectsMalformed walks every construction check; each case must fail
// with ErrShape and must not return a root.
func TestNewRejectsMalformed(t *testing.T) {
	cases := []struct {
		name   string
		values []int
		colIdx []int
		rowOff []int
		ncols  int
	}{
		{"empty offsets", nil, nil, nil, 3},
		{"offsets not from zero", []int{1}, []int{0}, []int{1, 1}, 3},
		{"last offset short", []int{1, 2}, []int{0, 1}, []int{0, 1}, 3},
		{"last offset long", []int{1}, []int{0}, []int{0, 2}, 3},
		{"colIdx length", []int{1, 2}, []int{0}, []int{0, 2}, 3},
		{"negative ncols", nil, nil, []int{0}, -1},
		{"decreasing offsets", []int{1, 2}, []int{0, 1}, []int{0, 2, 1, 2}, 3},
		{"offset past nnz", []int{1, 2}, []int{0, 1}, []int{0, 3, 2}, 3},
		{"column out of range", []int{1}, []int{3}, []int{0, 1}, 3},
		{"negative column", []int{1}, []int{-1}, []int{0, 1}, 3},
		{"unsorted columns", []int{1, 2}, []int{2, 1}, []int{0, 2}, 3},
		{"duplicate column", []int{1, 2}, []int{1, 1}, []int{0, 2}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := sparse.New(tc.values, tc.colIdx, tc.rowOff, tc.ncols)
			require.ErrorIs(t, err, sparse.ErrShape)
			require.Nil(t, o)
		})
	}
}

// TestNewAcceptsEdgeShapes covers zero rows, zero columns and empty rows.
func TestNewAcceptsEdgeShapes(t *testing.T) {
	o, err := sparse.New[int](nil, nil, []int{0}, 4)
	require.NoError(t, err)
	require.Equal(t, 0, o.Rows())
	require.Equal(t, 4, o.Cols())
	require.Equal(t, "", o.String())

	o, err = sparse.New[int](nil, nil, []int{0, 0, 0}, 0)
	require.NoError(t, err)
	require.Equal(t, "[]\n[]", o.String())

	o, err = sparse.New([]int{9}, []int{2}, []int{0, 0, 1, 1}, 3)
	require.NoError(t, err)
	require.Equal(t, 1, o.NNZ())
	require.Equal(t, "[0, 0, 0]\n[0, 0, 9]\n[0, 0, 0]", o.String())
}

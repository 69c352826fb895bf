package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unsized/core"
	"github.com/katalvlaran/unsized/matrix"
	"github.com/katalvlaran/unsized/sparse"
)

// TestFromDenseRoundTrip compresses the dense picture of the fixture and
// checks it renders back identically.
func TestFromDenseRoundTrip(t *testing.T) {
	dense := []int{
		1, 2, 0, 0, 0, 0,
		0, 3, 0, 4, 0, 0,
		0, 0, 5, 6, 7, 0,
		0, 0, 0, 0, 0, 8,
	}
	d, err := matrix.Reshape(dense, 4, 6)
	require.NoError(t, err)

	o, err := sparse.FromDense(d.Strided())
	require.NoError(t, err)
	require.Equal(t, 8, o.NNZ())
	require.Equal(t, mustFixture(t).String(), o.String())
	require.Equal(t, d.String(), o.String())
}

// TestFromDenseStridedTail covers trailing all-zero rows and a padded view.
func TestFromDenseStridedTail(t *testing.T) {
	buf := []int{
		0, 7, 99,
		0, 0, 99,
		0, 0,
	}
	m, err := matrix.NewStrided(buf, 3, 2, 3)
	require.NoError(t, err)

	o, err := sparse.FromDense(m, sparse.WithSearch(sparse.Binary))
	require.NoError(t, err)
	require.Equal(t, 3, o.Rows())
	require.Equal(t, 1, o.NNZ())
	x, err := o.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 7, x)
	_, err = o.At(2, 1)
	require.ErrorIs(t, err, sparse.ErrNotFound)
}

// TestFromDenseEmpty handles a sub-matrix with no rows.
func TestFromDenseEmpty(t *testing.T) {
	d, err := matrix.Reshape([]int{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	sm, err := d.Sub(core.Span(1, 1), core.Span(0, 2))
	require.NoError(t, err)

	o, err := sparse.FromDense(sm)
	require.NoError(t, err)
	require.Equal(t, 0, o.Rows())
	require.Equal(t, 2, o.Cols())
}

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unsized/core"
	"github.com/katalvlaran/unsized/matrix"
)

// TestNewStridedShapeErrors covers every construction failure.
func TestNewStridedShapeErrors(t *testing.T) {
	cases := []struct {
		name                  string
		n, rows, cols, stride int
	}{
		{"stride below cols", 20, 2, 5, 4},
		{"buffer too short", 12, 3, 4, 5}, // needs (3-1)*5+4 = 14
		{"negative rows", 10, -1, 2, 2},
		{"negative stride", 10, 1, 0, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewStrided(seq(tc.n), tc.rows, tc.cols, tc.stride)
			require.ErrorIs(t, err, matrix.ErrShape)
		})
	}
}

// TestNewStridedTightBuffer accepts a buffer that ends at the last row's last column.
func TestNewStridedTightBuffer(t *testing.T) {
	m := mustStrided(t, seq(14), 3, 4, 5)
	require.Equal(t, 5, m.Stride())
	require.False(t, m.IsContiguous())
	require.Equal(t, 13, mustAt[int](t, m, 2, 3))
}

// TestStridedAddressing checks element (i,j) == buf[i*stride+j].
func TestStridedAddressing(t *testing.T) {
	const rows, cols, stride = 4, 3, 7
	buf := seq(rows * stride)
	m := mustStrided(t, buf, rows, cols, stride)

	m.Do(func(i, j int, v int) bool {
		require.Equal(t, buf[i*stride+j], v)
		return true
	})

	row, err := m.Row(2)
	require.NoError(t, err)
	require.Equal(t, []int{14, 15, 16}, row.AppendTo(nil))

	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 8, 15, 22}, col.AppendTo(nil))
}

// TestStridedSubMatchesParent is the sub-matrix addressing property over every
// window of a 4×5 matrix padded to stride 6.
func TestStridedSubMatchesParent(t *testing.T) {
	m := mustStrided(t, seq(4*6), 4, 5, 6)
	for r0 := 0; r0 <= 4; r0++ {
		for r1 := r0; r1 <= 4; r1++ {
			for c0 := 0; c0 <= 5; c0++ {
				for c1 := c0; c1 <= 5; c1++ {
					rows, cols := core.Span(r0, r1), core.Span(c0, c1)
					sm, err := m.Sub(rows, cols)
					require.NoError(t, err)
					require.Equal(t, rows.Len(), sm.Rows())
					require.Equal(t, cols.Len(), sm.Cols())
					require.Equal(t, 6, sm.Stride())
					sm.Do(func(i, j int, v int) bool {
						require.Equal(t, mustAt[int](t, m, r0+i, c0+j), v)
						return true
					})
				}
			}
		}
	}
}

// TestStridedSubComposes checks m.Sub(a..b, c..d).Sub(0..k, 0..l) == m.Sub(a..a+k, c..c+l).
func TestStridedSubComposes(t *testing.T) {
	m := mustReshape(t, seq(6*8), 6, 8)
	const a, b, c, d, k, l = 1, 5, 2, 7, 3, 4

	outer, err := m.Sub(core.Span(a, b), core.Span(c, d))
	require.NoError(t, err)
	inner, err := outer.Sub(core.Span(0, k), core.Span(0, l))
	require.NoError(t, err)
	direct, err := m.Sub(core.Span(a, a+k), core.Span(c, c+l))
	require.NoError(t, err)

	require.Equal(t, direct.String(), inner.String())
	require.Equal(t, direct.Stride(), inner.Stride())
	for i := 0; i < k; i++ {
		for j := 0; j < l; j++ {
			require.Equal(t, mustAt[int](t, direct, i, j), mustAt[int](t, inner, i, j))
		}
	}
}

// TestStridedEmptyWindows ensures zero-area windows are legal and hold no storage.
func TestStridedEmptyWindows(t *testing.T) {
	m := mustReshape(t, demo, 3, 5)

	e, err := m.Sub(core.Span(3, 3), core.Span(0, 5))
	require.NoError(t, err)
	require.Equal(t, 0, e.Rows())
	require.Equal(t, "", e.String())

	e, err = m.Sub(core.Span(0, 3), core.Span(5, 5))
	require.NoError(t, err)
	require.Equal(t, "[]\n[]\n[]", e.String())
	_, err = e.Col(0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	row, err := e.Row(2)
	require.NoError(t, err)
	require.Equal(t, 0, row.Len())

	wide := mustStrided[int](t, nil, 0, 3, 3)
	col, err := wide.Col(1)
	require.NoError(t, err)
	require.Equal(t, 0, col.Len())
}

// TestStridedOutOfRange mirrors the Dense bounds checks with Strided context.
func TestStridedOutOfRange(t *testing.T) {
	m := mustStrided(t, seq(14), 3, 4, 5)
	_, err := m.At(0, 4) // column 4 exists in the buffer padding but not in the view
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorContains(t, err, "Strided.At(0,4)")
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestStridedAsDenseAndCompact covers the zero-copy and copying conversions.
func TestStridedAsDenseAndCompact(t *testing.T) {
	buf := seq(14)
	m := mustStrided(t, buf, 3, 4, 5)

	_, err := m.AsDense()
	require.ErrorIs(t, err, matrix.ErrShape)

	d := m.Compact()
	require.Equal(t, m.String(), d.String())
	buf[0] = 99 // compact copy is independent
	require.Equal(t, 0, mustAt[int](t, d, 0, 0))
	require.Equal(t, 99, mustAt[int](t, m, 0, 0))

	one, err := m.Sub(core.Span(1, 2), core.Span(0, 4))
	require.NoError(t, err)
	require.True(t, one.IsContiguous())
	od, err := one.AsDense()
	require.NoError(t, err)
	require.Equal(t, "[5, 6, 7, 8]", od.String())
}

// TestDenseIsStrided confirms a Dense reads identically through its Strided form.
func TestDenseIsStrided(t *testing.T) {
	m := mustReshape(t, demo, 3, 5)
	s := m.Strided()
	require.True(t, s.IsContiguous())
	require.Equal(t, m.String(), s.String())
	back, err := s.AsDense()
	require.NoError(t, err)
	require.Equal(t, fmt.Sprint(m), fmt.Sprint(back))
}

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tmmbench/matrix"
	"github.com/stretchr/testify/require"
)

// TestFillUpperTriangularPattern checks j+1 above and on the diagonal, zero below.
func TestFillUpperTriangularPattern(t *testing.T) {
	const n = 6
	a := MustDense(t, n)
	b := MustDense(t, n)
	require.NoError(t, matrix.FillUpperTriangular(a, b))

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := float32(0)
			if i <= j {
				want = float32(j + 1)
			}
			require.Equal(t, want, a.Raw()[matrix.Index(i, j, n)], "a(%d,%d)", i, j)
			require.Equal(t, want, b.Raw()[matrix.Index(i, j, n)], "b(%d,%d)", i, j)
		}
	}
	require.True(t, matrix.IsUpperTriangular(a))
	require.True(t, matrix.IsUpperTriangular(b))
}

// TestFillUpperTriangularThreeByThree pins the worked n=3 inputs.
func TestFillUpperTriangularThreeByThree(t *testing.T) {
	a := MustDense(t, 3)
	b := MustDense(t, 3)
	require.NoError(t, matrix.FillUpperTriangular(a, b))
	require.Equal(t, []float32{1, 2, 3, 0, 2, 3, 0, 0, 3}, a.Raw())
	require.Equal(t, a.Raw(), b.Raw())
}

// TestFillUpperTriangularErrors covers nil and mismatched operands.
func TestFillUpperTriangularErrors(t *testing.T) {
	a := MustDense(t, 3)
	require.ErrorIs(t, matrix.FillUpperTriangular(a, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.FillUpperTriangular(nil, a), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.FillUpperTriangular(a, MustDense(t, 4)), matrix.ErrDimensionMismatch)
}

// TestIsUpperTriangular detects a nonzero below the diagonal.
func TestIsUpperTriangular(t *testing.T) {
	m := MustDense(t, 3)
	require.True(t, matrix.IsUpperTriangular(m))
	require.NoError(t, m.Set(2, 1, 1))
	require.False(t, matrix.IsUpperTriangular(m))
	require.False(t, matrix.IsUpperTriangular(nil))
}

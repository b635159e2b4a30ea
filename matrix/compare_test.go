package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/denselu/matrix"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := a.Clone()
	require.True(t, matrix.Equal(a, b))
	require.True(t, matrix.Equal(a, hide{b}))

	MustSet(t, b, 1, 1, 4.0000001)
	require.False(t, matrix.Equal(a, b))
	require.False(t, matrix.Equal(hide{a}, b))

	// same data, different shape
	flat := MustDense(t, 1, 4, a.Data())
	require.False(t, matrix.Equal(a, flat))

	require.False(t, matrix.Equal(a, nil))

	nan := MustDense(t, 1, 1, []float64{math.NaN()})
	require.False(t, matrix.Equal(nan, nan.Clone()))
}

func TestAllClose(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2}, {3, math.Inf(1)}})
	b := FromRows(t, [][]float64{{1 + 1e-12, 2}, {3, math.Inf(1)}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)

	// negative tolerances are normalized
	ok, err = matrix.AllClose(hide{a}, b, -1e-9, -1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 1, 4, make([]float64, 4)), 0, 0)
	require.ErrorIs(t, err, matrix.ErrSizeMismatch)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrOperationNotPermitted)
}

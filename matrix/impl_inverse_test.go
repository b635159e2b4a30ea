package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/denselu/matrix"
	"github.com/stretchr/testify/require"
)

// TestInvertFourByFour: X*M ≈ I for a 4x4 with fractional multipliers.
func TestInvertFourByFour(t *testing.T) {
	M := MustDense(t, 4, 4, []float64{3, 2, 3, 1, 6, 5, 4, -5, -9, -6, -8, -1, 12, 8, 12, 5})

	X, err := matrix.Invert(M)
	require.NoError(t, err)

	XM, err := matrix.Mul(X, M)
	require.NoError(t, err)
	CompareClose(t, XM, IdentityDense(t, 4), rtolTight, atolTight)

	MX, err := matrix.Mul(M, X)
	require.NoError(t, err)
	CompareClose(t, MX, IdentityDense(t, 4), rtolTight, atolTight)
}

func TestInvertExactSmall(t *testing.T) {
	// rows [4,7],[2,6]: det 10
	A := FromRows(t, [][]float64{{4, 7}, {2, 6}})
	X, err := matrix.Inverse(A)
	require.NoError(t, err)
	CompareClose(t, X, FromRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}), 1e-12, 1e-12)

	D := FromRows(t, [][]float64{{2, 0}, {0, 4}})
	X, err = matrix.Invert(D)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.5, 0}, {0, 0.25}}, X)
}

func TestInvertIdentity(t *testing.T) {
	for _, n := range []int{1, 2, 7} {
		X, err := matrix.Invert(IdentityDense(t, n))
		require.NoError(t, err)
		require.True(t, matrix.Equal(IdentityDense(t, n), X))
	}
}

// TestInvertPropagatesDecomposeErrors: Invert returns Decompose's error unchanged.
func TestInvertPropagatesDecomposeErrors(t *testing.T) {
	for _, A := range []*matrix.Dense{
		MustDense(t, 2, 3, make([]float64, 6)),     // non-square
		FromRows(t, [][]float64{{0, 1}, {1, 0}}), // zero leading pivot
	} {
		_, _, decErr := matrix.Decompose(A)
		require.Error(t, decErr)

		_, invErr := matrix.Invert(A)
		require.Error(t, invErr)
		require.Equal(t, decErr.Error(), invErr.Error())
		require.Equal(t, matrix.KindOf(decErr), matrix.KindOf(invErr))
	}
}

// TestInvertSingularLastPivot: the last diagonal of U is never a divisor in
// Decompose, so a singular matrix decomposes and Invert must report Singular.
func TestInvertSingularLastPivot(t *testing.T) {
	A := FromRows(t, [][]float64{{1, 2}, {2, 4}})

	_, U, err := matrix.Decompose(A)
	require.NoError(t, err)
	require.Equal(t, 0.0, MustAt(t, U, 1, 1))

	_, err = matrix.Invert(A)
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.Equal(t, matrix.Singular, matrix.KindOf(err))
}

func TestInvertProperties(t *testing.T) {
	for _, n := range []int{2, 3, 6, 12} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			A := DiagDominant(t, n, int64(100+n))
			X, err := matrix.Invert(A)
			require.NoError(t, err)

			XA, err := matrix.Mul(X, A)
			require.NoError(t, err)
			CompareClose(t, XA, IdentityDense(t, n), rtolTight, atolTight)

			// fallback path yields the same inverse
			Y, err := matrix.Invert(hide{A})
			require.NoError(t, err)
			require.Equal(t, X.Data(), Y.Data())
		})
	}
}

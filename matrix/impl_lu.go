// SPDX-License-Identifier: MIT

package matrix

// Decompose computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: Validate m (not nil, square); U = copy of m, L = identity(n, n).
//   - Stage 2: For i=1..n-1, for j=0..i-1 ascending, eliminate U[i,j] with the
//     row operation row_i ← row_i − (U[i,j]/U[j,j])·row_j, recording the
//     multiplier in L[i,j].
//
// Behavior highlights:
//   - The row operation is applied in place, columns j+1..n-1 only: columns < j
//     of row j are already zero, and U[i,j] is stored as an exact zero, so U is
//     exactly upper-triangular.
//   - A zero pivot is always fatal; there is no row swap fallback.
//
// Inputs:
//   - m: square Matrix (n×n). Read-only.
//
// Returns:
//   - *Dense: L (unit lower triangular).
//   - *Dense: U (upper triangular).
//
// Errors:
//   - OperationNotPermitted (nil or non-square m).
//   - FailedToDecompose (U[j,j] == 0 when row i needs elimination at column j).
//
// Determinism:
//   - Fixed i→j→col order; identical inputs give bit-identical factors.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - U[n-1,n-1] is never used as a divisor here, so a singular matrix may
//     decompose successfully; Invert reports that case as Singular.
func Decompose(m Matrix) (*Dense, *Dense, error) {
	if err := validateSquare(opDecompose, m); err != nil {
		return nil, nil, err
	}
	src, err := toDense(opDecompose, m)
	if err != nil {
		return nil, nil, err
	}

	n := src.r
	U := src.clone()
	L := identityDense(n, n)
	u, l := U.data, L.data // column-major: (r,c) at c*n+r

	var (
		i, j, col           int
		numerator, pivot    float64
		multiplier, rowJVal float64
	)
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			numerator = u[j*n+i]
			pivot = u[j*n+j]
			if pivot == ZeroPivot {
				return nil, nil, newError(FailedToDecompose,
					"%s: zero pivot U[%d,%d] while eliminating (%d,%d)", opDecompose, j, j, i, j)
			}
			multiplier = numerator / pivot
			l[j*n+i] = multiplier

			// row_i ← row_i − multiplier·row_j
			u[j*n+i] = 0
			for col = j + 1; col < n; col++ {
				rowJVal = u[col*n+j]
				u[col*n+i] -= multiplier * rowJVal
			}
		}
	}

	return L, U, nil
}

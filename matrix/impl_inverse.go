// SPDX-License-Identifier: MIT

package matrix

// Invert computes A^{-1} from the Doolittle factors of Decompose.
// The input must be non-nil, square and decomposable without pivoting.
// Produces a new Dense; does not mutate the input.
//
// Implementation:
//   - Stage 1: (L, U) = Decompose(m); its error is returned unchanged.
//   - Stage 2: Forward substitution L·Y = I, column by column. Y starts as the
//     identity and only strictly-lower entries are written:
//     Y[r,c] = −L[r,c] − Σ_{i=c+1}^{r-1} L[r,i]·Y[i,c]   for r = c+1..n-1.
//   - Stage 3: Back substitution U·X = Y, column by column, rows bottom-up:
//     X[r,c] = (Y[r,c] − Σ_{i=r+1}^{n-1} U[r,i]·X[i,c]) / U[r,r].
//
// Errors:
//   - Any Decompose error (OperationNotPermitted, FailedToDecompose).
//   - Singular when U[r,r] == 0 during back substitution.
//
// Determinism:
//   - Fixed loop orders (col↑, forward r↑, backward r↓); no pivoting.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Without pivoting, accuracy degrades on ill-conditioned inputs; callers
//     that care should check X·A against the identity (see AllClose).
func Invert(m Matrix) (*Dense, error) {
	L, U, err := Decompose(m)
	if err != nil {
		return nil, err
	}

	Y := forwardSubstitute(L)

	return backSubstitute(U, Y)
}

// forwardSubstitute solves L·Y = I for a unit lower-triangular L.
// Cannot fail: the unit diagonal is never divided by.
func forwardSubstitute(L *Dense) *Dense {
	n := L.r
	Y := identityDense(n, n)
	l, y := L.data, Y.data

	var r, c, i int
	var acc float64
	for c = 0; c < n; c++ {
		for r = c + 1; r < n; r++ {
			acc = ZeroSum - l[c*n+r] // keeps +0 where L[r,c] == 0
			for i = c + 1; i < r; i++ {
				acc -= l[i*n+r] * y[c*n+i]
			}
			y[c*n+r] = acc
		}
	}

	return Y
}

// backSubstitute solves U·X = Y for an upper-triangular U.
// Returns a Singular error instead of dividing by a zero diagonal entry.
func backSubstitute(U, Y *Dense) (*Dense, error) {
	n := U.r
	X := newDense(n, n)
	u, y, x := U.data, Y.data, X.data

	var r, c, i int
	var sum, pivot float64
	for c = 0; c < n; c++ {
		for r = n - 1; r >= 0; r-- {
			sum = ZeroSum
			for i = r + 1; i < n; i++ {
				sum += u[i*n+r] * x[c*n+i]
			}
			pivot = u[r*n+r]
			if pivot == ZeroPivot {
				return nil, newError(Singular, "%s: zero diagonal U[%d,%d] in back substitution", opInvert, r, r)
			}
			x[c*n+r] = (y[c*n+r] - sum) / pivot
		}
	}

	return X, nil
}

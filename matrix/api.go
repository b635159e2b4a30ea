// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors ----------

// NewZeros returns a rows×cols matrix of zeros.
// Errors: FailedToInitialize for non-positive or overflowing dimensions.
// Complexity: O(r*c).
func NewZeros(rows, cols int) (*Dense, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, err
	}

	return newDense(rows, cols), nil
}

// NewIdentity returns a rows×cols matrix with 1.0 where i == j and 0.0 elsewhere.
// Non-square shapes are allowed: the result is the generalized identity
// pattern, not necessarily invertible.
// Errors: FailedToInitialize for non-positive or overflowing dimensions.
// Complexity: O(r*c) zeroing + O(min(r,c)) diagonal writes.
func NewIdentity(rows, cols int) (*Dense, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, err
	}

	return identityDense(rows, cols), nil
}

// NewSquareIdentity returns I_n.
func NewSquareIdentity(n int) (*Dense, error) { return NewIdentity(n, n) }

// identityDense builds the identity pattern for an already-validated shape.
func identityDense(rows, cols int) *Dense {
	I := newDense(rows, cols)
	for d := 0; d < rows && d < cols; d++ {
		I.data[d*rows+d] = 1.0
	}

	return I
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := validateNotNil(opZerosLike, m); err != nil {
		return nil, err
	}

	return NewZeros(m.Rows(), m.Cols())
}

// ---------- Aliases (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transpose.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: alpha*m.
func ScaleBy(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// LU is an alias for Decompose: returns (L, U) with unit diagonal on L.
func LU(m Matrix) (*Dense, *Dense, error) { return Decompose(m) }

// Inverse is an alias for Invert.
func Inverse(m Matrix) (*Dense, error) { return Invert(m) }

// SPDX-License-Identifier: MIT
// Package matrix provides arithmetic on any Matrix implementation:
// element-wise addition and subtraction, scalar scaling, matrix
// multiplication and transpose. All functions validate fail-fast and
// return *Error values on dimension mismatches.
//
// Purpose:
//   - Define operation tags and shared constants for determinism and error reporting.
//   - Implement the arithmetic kernels. Each kernel has a *Dense fast path over
//     the flat column-major slices and an At/Set fallback with the same
//     accumulation order, so both paths return bit-identical results.

package matrix

// ZeroSum is the initial value for dot-product accumulation.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in Decompose/Invert.
const ZeroPivot = 0.0

// Operation name constants used as message prefixes in *Error values.
const (
	opAt        = "At"
	opSet       = "Set"
	opRow       = "Row"
	opColumn    = "Column"
	opSetRow    = "SetRow"
	opSetColumn = "SetColumn"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opDecompose = "Decompose"
	opInvert    = "Invert"
	opEqual     = "Equal"
	opAllClose  = "AllClose"
	opZerosLike = "ZerosLike"
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: validateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed j→i order.
//
// Errors:
//   - OperationNotPermitted (nil operand), SizeMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := validateBinarySameShape(opTag, a, b); err != nil {
		return nil, err
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDense(rows, cols)

	// Fast path: *Dense with *Dense → single flat loop (same layout on both sides).
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path, column by column to follow storage order.
	var i, j int
	var av, bv float64
	var err error
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			if av, err = a.At(i, j); err != nil {
				return nil, err
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, err
			}
			res.data[j*rows+i] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
//
// Errors:
//   - OperationNotPermitted (nil input), SizeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense.
//
// Errors:
//   - OperationNotPermitted (nil input), SizeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Never fails for a non-nil m; NaN/Inf in alpha propagate.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := validateNotNil(opScale, m); err != nil {
		return nil, err
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(rows, cols)

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = v * alpha
		}

		return res, nil
	}

	var i, j int
	var v float64
	var err error
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			res.data[j*rows+i] = v * alpha
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use j→k→i over column-major strides;
//     otherwise use j→i→k via At. Each C[i,j] accumulates k in ascending
//     order starting from ZeroSum on both paths.
//
// Errors:
//   - OperationNotPermitted (nil input), SizeMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := validateMulCompatible(opMul, a, b); err != nil {
		return nil, err
	}

	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDense(aRows, bCols)
	var (
		i, j, k int
		av, bv  float64
		sum     float64
		err     error
	)

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: k*aRows + i   (column k of A)
			// db.data layout: j*inner + k   (column j of B)
			var colR, colA []float64
			for j = 0; j < bCols; j++ {
				colR = res.data[j*aRows : (j+1)*aRows]
				for k = 0; k < inner; k++ {
					bv = db.data[j*inner+k]
					colA = da.data[k*aRows : (k+1)*aRows]
					for i = 0; i < aRows; i++ {
						colR[i] += colA[i] * bv
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop.
	for j = 0; j < bCols; j++ {
		for i = 0; i < aRows; i++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, err
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, err
				}
				sum += av * bv
			}
			res.data[j*aRows+i] = sum
		}
	}

	return res, nil
}

// Transpose returns a new cols×rows matrix with T[j,i] = m[i,j].
// Never fails for a non-nil m. Transpose(Transpose(m)) equals m exactly.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := validateNotNil(opTranspose, m); err != nil {
		return nil, err
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(cols, rows) // dims flipped

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// source (i,j) at j*rows+i → destination (j,i) at i*cols+j
		for j = 0; j < cols; j++ {
			for i = 0; i < rows; i++ {
				res.data[i*cols+j] = dm.data[j*rows+i]
			}
		}

		return res, nil
	}

	var v float64
	var err error
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// toDense returns m itself when it is already *Dense, else a Dense copy read via At.
// Kernels that need flat-slice access to an arbitrary Matrix go through here.
func toDense(op string, m Matrix) (*Dense, error) {
	if err := validateNotNil(op, m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	rows, cols := m.Rows(), m.Cols()
	if err := validateDims(rows, cols); err != nil {
		return nil, newError(OperationNotPermitted, "%s: %s", op, err.(*Error).Message)
	}
	out := newDense(rows, cols)
	var v float64
	var err error
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[j*rows+i] = v
		}
	}

	return out, nil
}

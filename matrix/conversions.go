// SPDX-License-Identifier: MIT
// Package matrix: converters between *Dense and gonum's mat package.
//
// gonum stores row-major; this package stores column-major. Converters copy
// element by element so positions (i,j) are preserved on both sides and no
// storage is shared.

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies m into a new row-major *mat.Dense.
// Errors: OperationNotPermitted for a nil m; any At error from a non-Dense m.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	src, err := toDense(opToGonum, m)
	if err != nil {
		return nil, err
	}

	rows, cols := src.r, src.c
	rowMajor := make([]float64, rows*cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			rowMajor[i*cols+j] = src.data[j*rows+i]
		}
	}

	return mat.NewDense(rows, cols, rowMajor), nil
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
// Errors: OperationNotPermitted for a nil source, FailedToInitialize for an
// empty (0×n or n×0) source.
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, newError(OperationNotPermitted, "%s: nil matrix", opFromGonum)
	}
	rows, cols := src.Dims()
	if err := validateDims(rows, cols); err != nil {
		return nil, err
	}

	out := newDense(rows, cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			out.data[j*rows+i] = src.At(i, j)
		}
	}

	return out, nil
}

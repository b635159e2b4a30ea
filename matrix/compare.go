// SPDX-License-Identifier: MIT

package matrix

import "math"

// Equal reports whether a and b have the same shape and exactly equal elements.
// NaN is never equal to anything; +0 == -0. Nil operands compare unequal.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	if validateBinarySameShape(opEqual, a, b) != nil {
		return false
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx, v := range da.data {
				if v != db.data[idx] {
					return false
				}
			}

			return true
		}
	}

	rows, cols := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if av != bv {
				return false
			}
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (else SizeMismatch /
//     OperationNotPermitted).
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected
//     with OperationNotPermitted.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, newError(OperationNotPermitted, "%s: tolerances must be finite", opAllClose)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := validateBinarySameShape(opAllClose, a, b); err != nil {
		return false, err
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	rows, cols := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if av, err = a.At(i, j); err != nil {
				return false, err
			}
			if bv, err = b.At(i, j); err != nil {
				return false, err
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough applies the AllClose relation to one pair.
func closeEnough(a, b, rtol, atol float64) bool {
	if a == b { // covers matching infinities
		return true
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

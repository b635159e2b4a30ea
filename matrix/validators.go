// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/index checks here.
//  - Return *Error values whose message starts with the operation tag, so every
//    kernel reports failures with the same "<Op>: <detail>" shape.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and O(1).
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import "math"

// validateDims checks a requested shape. Used by constructors only.
// rows*cols must fit in int, otherwise the buffer length would wrap.
func validateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return newError(FailedToInitialize, "rows and cols must be positive: %dx%d", rows, cols)
	}
	if rows > math.MaxInt/cols {
		return newError(FailedToInitialize, "rows*cols overflows: %dx%d", rows, cols)
	}

	return nil
}

// validateIndex checks 0 ≤ row < rows and 0 ≤ col < cols (half-open).
func validateIndex(op string, row, col, rows, cols int) error {
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return newError(OutOfBoundary, "%s: (%d,%d) outside %dx%d", op, row, col, rows, cols)
	}

	return nil
}

// validateAxisIndex checks 0 ≤ idx < dim for a whole row or column.
// axis names the dimension in the message ("row" or "column").
func validateAxisIndex(op string, idx, dim int, axis string) error {
	if idx < 0 || idx >= dim {
		return newError(OutOfBoundary, "%s: %s %d outside [0,%d)", op, axis, idx, dim)
	}

	return nil
}

// validateNotNil rejects a nil interface and a typed nil *Dense.
func validateNotNil(op string, m Matrix) error {
	if m == nil {
		return newError(OperationNotPermitted, "%s: nil matrix", op)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return newError(OperationNotPermitted, "%s: nil matrix", op)
	}

	return nil
}

// validateBinarySameShape – Composite: NotNil(a) → NotNil(b) → identical shapes.
// Used by Add/Sub/AllClose.
func validateBinarySameShape(op string, a, b Matrix) error {
	if err := validateNotNil(op, a); err != nil {
		return err
	}
	if err := validateNotNil(op, b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return newError(SizeMismatch, "%s: %dx%d vs %dx%d", op, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	return nil
}

// validateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
func validateMulCompatible(op string, a, b Matrix) error {
	if err := validateNotNil(op, a); err != nil {
		return err
	}
	if err := validateNotNil(op, b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return newError(SizeMismatch, "%s: a.Cols()=%d != b.Rows()=%d", op, a.Cols(), b.Rows())
	}

	return nil
}

// validateSquare – Composite: NotNil → Rows == Cols.
// A non-square operand is OperationNotPermitted, not SizeMismatch: there is
// no second operand to mismatch against.
func validateSquare(op string, m Matrix) error {
	if err := validateNotNil(op, m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return newError(OperationNotPermitted, "%s: matrix is not square: %dx%d", op, m.Rows(), m.Cols())
	}

	return nil
}

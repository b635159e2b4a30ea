// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major) & safe accessors.
//
// Purpose:
//   - Provide a contiguous column-major buffer with the explicit index formula col*rows + row.
//   - Guarantee safety at the public surface: At/Set/Row/Column return errors instead of panicking.
//   - Keep value semantics: constructors copy their input, every getter returning
//     storage (Data, Row, Column, Clone) hands out an independent copy.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) copy; At/Set: O(1); Row/Column: O(c)/O(r); Clone/Data: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Axis names used in row/column index errors.
const (
	axisNameRow    = "row"
	axisNameColumn = "column"
)

// Dense is a concrete column-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in column-major order (offset = j*r + i).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous column-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates a rows×cols matrix from column-major data.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation; data is copied.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and that rows*cols fits in int.
//   - Stage 2: validate len(data) == rows*cols.
//   - Stage 3: copy data into a fresh buffer.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - data: column-major values; element (i,j) is data[j*rows+i].
//
// Errors:
//   - FailedToInitialize (non-positive dimension, overflowing rows*cols, or
//     wrong data length).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, data []float64) (*Dense, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, newError(FailedToInitialize,
			"Size of data != rows * cols: %d != %d", len(data), rows*cols)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// newDense allocates a zero rows×cols Dense without validation.
// Callers guarantee rows>0 && cols>0 (shapes derived from validated operands).
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the column-major offset or returns an OutOfBoundary error.
// It is the single place that maps (row, col) onto the flat buffer.
//
// Bounds are half-open: row ∈ [0, r), col ∈ [0, c).
func (m *Dense) indexOf(op string, row, col int) (int, error) {
	if err := validateIndex(op, row, col, m.r, m.c); err != nil {
		return 0, err
	}

	// Column-major offset: j*r + i.
	return col*m.r + row, nil
}

// At returns the value at (row, col).
// Errors: OutOfBoundary when the index is outside the half-open range.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(opAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: OutOfBoundary when the index is outside the half-open range.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// Row returns a new 1×cols copy of row i.
// Errors: OutOfBoundary when i is outside [0, rows).
// Complexity: O(c).
func (m *Dense) Row(i int) (*Dense, error) {
	if err := validateAxisIndex(opRow, i, m.r, axisNameRow); err != nil {
		return nil, err
	}
	out := newDense(1, m.c)
	for j := 0; j < m.c; j++ {
		out.data[j] = m.data[j*m.r+i] // strided read across columns
	}

	return out, nil
}

// Column returns a new rows×1 copy of column j.
// Errors: OutOfBoundary when j is outside [0, cols).
// Complexity: O(r).
func (m *Dense) Column(j int) (*Dense, error) {
	if err := validateAxisIndex(opColumn, j, m.c, axisNameColumn); err != nil {
		return nil, err
	}
	out := newDense(m.r, 1)
	copy(out.data, m.data[j*m.r:(j+1)*m.r]) // columns are contiguous

	return out, nil
}

// SetRow overwrites row i with values in place.
// Errors: OutOfBoundary for a bad index, SizeMismatch when len(values) != cols.
// Complexity: O(c).
func (m *Dense) SetRow(i int, values []float64) error {
	if err := validateAxisIndex(opSetRow, i, m.r, axisNameRow); err != nil {
		return err
	}
	if len(values) != m.c {
		return newError(SizeMismatch, "%s: len(values)=%d != cols=%d", opSetRow, len(values), m.c)
	}
	for j, v := range values {
		m.data[j*m.r+i] = v
	}

	return nil
}

// SetColumn overwrites column j with values in place.
// Errors: OutOfBoundary for a bad index, SizeMismatch when len(values) != rows.
// Complexity: O(r).
func (m *Dense) SetColumn(j int, values []float64) error {
	if err := validateAxisIndex(opSetColumn, j, m.c, axisNameColumn); err != nil {
		return err
	}
	if len(values) != m.r {
		return newError(SizeMismatch, "%s: len(values)=%d != rows=%d", opSetColumn, len(values), m.r)
	}
	copy(m.data[j*m.r:(j+1)*m.r], values)

	return nil
}

// Data returns a copy of the column-major backing slice.
// Complexity: O(r*c).
func (m *Dense) Data() []float64 {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return cp
}

// Clone returns a deep copy (new buffer).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.clone() }

// clone is the typed variant of Clone used by kernels.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders rows as lines with comma-separated values, for diagnostics.
// Not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[j*m.r+i]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

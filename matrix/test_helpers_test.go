// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/denselu/matrix"
)

// Tolerances shared by floating-point assertions.
const (
	rtolTight = 1e-9
	atolTight = 1e-9
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the At/Set fallback path in code under test.
type hide struct{ matrix.Matrix }

// MustDense BUILDS an r×c *Dense from column-major values or fails the test.
func MustDense(t testing.TB, r, c int, colMajor []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, colMajor)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// FromRows BUILDS a *Dense from a row-major 2D literal, which reads more
// naturally in tests than column-major data.
func FromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	r, c := len(rows), len(rows[0])
	m, err := matrix.NewZeros(r, c)
	if err != nil {
		t.Fatalf("NewZeros(%d,%d): %v", r, c, err)
	}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			t.Fatalf("FromRows: row %d has %d values; want %d", i, len(rows[i]), c)
		}
		if err = m.SetRow(i, rows[i]); err != nil {
			t.Fatalf("SetRow(%d): %v", i, err)
		}
	}

	return m
}

// IdentityDense RETURNS I_n or fails the test.
func IdentityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSquareIdentity(n)
	if err != nil {
		t.Fatalf("NewSquareIdentity(%d): %v", n, err)
	}

	return m
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return MustDense(t, r, c, data)
}

// DiagDominant RETURNS an n×n random matrix with |a_ii| > Σ_{j≠i} |a_ij|.
// Such matrices never hit a zero pivot under elimination without pivoting.
func DiagDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandFilledDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		MustSet(t, m, i, i, float64(n)+1)
	}

	return m
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact ASSERTS strict equality between matrix and a row-major 2D literal.
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	for i := 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols = %d; want %d", c, len(want[i]))
		}
		for j := 0; j < c; j++ {
			if v := MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose ASSERTS AllClose(a,b) under (rtol, atol).
func CompareClose(t testing.TB, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose err: %v", err)
	}
	if !ok {
		t.Fatalf("AllClose=false (rtol=%g, atol=%g)\n got:\n%v\nwant:\n%v", rtol, atol, a, b)
	}
}

// IsUnitLowerTriangular reports diag == 1 and zeros strictly above the diagonal.
func IsUnitLowerTriangular(t testing.TB, m matrix.Matrix) bool {
	t.Helper()
	n := m.Rows()
	for i := 0; i < n; i++ {
		if MustAt(t, m, i, i) != 1 {
			return false
		}
		for j := i + 1; j < n; j++ {
			if MustAt(t, m, i, j) != 0 {
				return false
			}
		}
	}

	return true
}

// IsUpperTriangular reports zeros strictly below the diagonal.
func IsUpperTriangular(t testing.TB, m matrix.Matrix) bool {
	t.Helper()
	n := m.Rows()
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if MustAt(t, m, i, j) != 0 {
				return false
			}
		}
	}

	return true
}

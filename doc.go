// Package denselu is a small dense linear-algebra module built around an
// exact, non-pivoting LU factorization.
//
// What lives where:
//
//	• matrix:     column-major *Dense storage, element access, row/column
//	              copies, Add/Sub/Scale/Mul/Transpose, Doolittle LU
//	              (Decompose) and inversion (Invert), gonum interop
//	• cmd/luinv:  command-line front end for decompose / invert / check
//
// Guarantees:
//
//   - Value semantics: every constructor and accessor copies; results never
//     alias their inputs.
//   - Typed errors: every failure is a *matrix.Error whose Kind can be tested
//     with errors.Is against the matrix.Err* sentinels.
//   - Deterministic: fixed loop orders, no pivoting, no goroutines.
//
// Quick start:
//
//	a, _ := matrix.NewDense(2, 2, []float64{4, 6, 3, 3}) // column-major
//	L, U, err := matrix.Decompose(a)
//	x, err := matrix.Invert(a)
package denselu

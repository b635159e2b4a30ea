// Package matrix is a dense float64 matrix library with LU decomposition and
// inversion.
//
// The matrix package provides:
//
//   - Dense, a fixed-shape column-major container (element (i,j) lives at
//     flat index j*rows + i) with bounds-checked accessors and row/column
//     copies and writers.
//   - Arithmetic kernels returning fresh matrices: Add, Sub, Scale, Mul,
//     Transpose.
//   - Decompose: Doolittle LU factorization without pivoting. A zero pivot
//     fails with FailedToDecompose; there is no row-swap fallback.
//   - Invert: forward substitution on L, back substitution on U.
//   - Equal/AllClose comparison and converters to and from gonum's mat.Dense.
//
// Every fallible operation returns a *Error carrying an ErrorKind and a
// message, rendered as "<kind> error: <message>". Match kinds with
// errors.Is(err, matrix.ErrSizeMismatch) and friends.
//
// Distinct matrices may be used from different goroutines; a single *Dense
// has no internal locking and must not be mutated concurrently.
package matrix

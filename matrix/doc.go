// SPDX-License-Identifier: MIT

// Package matrix implements Dense, a rectangular float64 matrix value type.
//
// The package provides:
//
//   - Ownership discipline: NewDense allocates one contiguous row-major buffer;
//     Clone and CopyFrom deep-copy, MoveFrom transfers the buffer and empties the
//     source, Release drops it, Resize reshapes keeping overlapping cells. The
//     zero value is the empty 0×0 state.
//   - Bounds-checked element access (At, Set, Ref) that returns errors, never panics.
//   - In-place arithmetic (Add, Sub, Scale, Mul) and value-producing facades
//     (Sum, Diff, Product, Scaled).
//   - Structural transforms built on minor extraction: Transpose, Minor,
//     Determinant, Cofactors, Adjugate, Inverse.
//   - Tolerance-based comparison (Equal, EqualApprox).
//   - Conversions to and from gonum's mat package.
//
// Determinant uses first-row cofactor expansion and runs in O(n!) time; the
// package targets small matrices and makes no attempt at blocking or pivoting.
//
// Errors are *OpError values wrapping one sentinel (ErrInvalidDimension,
// ErrDimensionMismatch, ErrNotSquare, ErrSingularOrDegenerate,
// ErrSingularMatrix, ErrIndexOutOfRange, ErrNilMatrix, ErrNaNInf); match them
// with errors.Is.
//
// Multiplication follows the standard rule a.Cols == b.Rows. The stricter
// rule that also demands a.Rows == b.Cols is available with WithStrictMulShape.
//
// A Dense is not safe for concurrent mutation.
package matrix

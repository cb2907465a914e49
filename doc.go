// Package cofactor is a small, dependency-light library for dense float64
// matrices with exact, textbook linear algebra.
//
// 🚀 What is in the box?
//
//	matrix/: Dense, a rectangular row-major matrix value type:
//		• Ownership: NewDense, Clone, CopyFrom, MoveFrom, Resize, Release
//		• Access: bounds-checked At, Set, Ref
//		• Arithmetic: Add, Sub, Scale, Mul and the Sum/Diff/Product/Scaled facades
//		• Structure: Transpose, Minor (1-based), Determinant, Cofactors,
//		  Adjugate, Inverse
//		• Interop: ToRows, ToGonum, FromGonum
//
// ✨ Guarantees
//
//   - No panics on user input: every failure is an *matrix.OpError wrapping a
//     sentinel you can match with errors.Is.
//   - Determinism: fixed loop orders, identical inputs give identical bits.
//   - A failed operation leaves its receiver untouched.
//
// Determinant and Inverse use cofactor expansion (O(n!)); they target small
// matrices. For large systems use gonum, which matrix converts to and from.
//
// See examples/inverse_roundtrip for a runnable walk-through.
package cofactor

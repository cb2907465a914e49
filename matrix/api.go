// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Value-producing counterparts of the in-place methods: the receiver is
//     copied, the in-place kernel runs on the copy, neither operand is mutated.
//   - Literal-friendly constructors for callers and tests.
//
// Determinism & Policy:
//   - Facades never change loop orders; results inherit the left operand's policy.
//   - Validation lives in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors ----------

// NewFromRows builds a Dense from a rectangular row literal, copying the values.
//
// Errors:
//   - ErrInvalidDimension when rows is empty or the first row is empty.
//   - ErrDimensionMismatch when a row length differs from the first row
//     (Row in the OpError names the offending row).
//
// Complexity: Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return nil, shapeErr(opFromRows, 0, 0, ErrInvalidDimension)
	}
	c := len(rows[0])
	if err := validateShape(opFromRows, r, c); err != nil {
		return nil, err
	}
	out := newDenseWithOptions(r, c, gatherOptions(opts...))
	for i, row := range rows {
		if len(row) != c {
			return nil, &OpError{
				Op: opFromRows, Rows: r, Cols: c,
				OtherRows: noIndex, OtherCols: noIndex,
				Row: i, Col: len(row),
				Err: ErrDimensionMismatch,
			}
		}
		copy(out.data[i*c:], row)
	}

	return out, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
//
// Errors:
//   - ErrInvalidDimension when n <= 0.
//
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	id, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// ---------- Value-producing operators ----------

// Sum returns a + b as a new matrix (operator +).
func Sum(a, b *Dense) (*Dense, error) {
	return binary(a, b, (*Dense).Add, opAdd)
}

// Diff returns a − b as a new matrix (operator −).
func Diff(a, b *Dense) (*Dense, error) {
	return binary(a, b, (*Dense).Sub, opSub)
}

// Product returns a × b as a new matrix (operator * by matrix).
// Compatibility follows a's policy (see WithStrictMulShape).
func Product(a, b *Dense) (*Dense, error) {
	return binary(a, b, (*Dense).Mul, opMul)
}

// Scaled returns alpha·a as a new matrix (operator * by scalar).
//
// Errors:
//   - ErrNilMatrix when a is nil.
func Scaled(a *Dense, alpha float64) (*Dense, error) {
	if a == nil {
		return nil, shapeErr(opScale, 0, 0, ErrNilMatrix)
	}
	out := a.Clone()
	out.Scale(alpha)

	return out, nil
}

// T returns aᵀ (short alias of Transpose for discoverability).
func T(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, shapeErr(opTranspose, 0, 0, ErrNilMatrix)
	}

	return a.Transpose(), nil
}

// InverseOf returns a⁻¹; see (*Dense).Inverse.
func InverseOf(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, shapeErr(opInverse, 0, 0, ErrNilMatrix)
	}

	return a.Inverse()
}

// binary clones a and applies the in-place kernel with b.
// Operands are checked for nil before cloning.
func binary(a, b *Dense, inPlace func(*Dense, *Dense) error, op string) (*Dense, error) {
	if err := validateNotNil(op, a, b); err != nil {
		return nil, err
	}
	out := a.Clone()
	if err := inPlace(out, b); err != nil {
		return nil, err
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Package matrix provides the structural kernels of Dense: in-place matrix
// multiplication, transpose, minor extraction, and the cofactor-expansion
// family (determinant, cofactors, adjugate, inverse).
//
// Purpose:
//   - Build every structural algorithm on one primitive: minor extraction.
//   - Keep loop orders fixed so identical inputs give bit-identical outputs.
//
// Notes:
//   - Determinant is classic first-row Laplace expansion: O(n!) time, meant
//     for small matrices. There is no LU fallback.
//   - Derived matrices inherit the receiver's numeric policy.

package matrix

import (
	"errors"
	"math"
)

const (
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opMinor       = "Minor"
	opDeterminant = "Determinant"
	opCofactors   = "Cofactors"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// zeroDeterminant is the exact value Inverse rejects. No tolerance is applied.
const zeroDeterminant = 0.0

// Mul replaces m with the product m × other.
// MAIN DESCRIPTION:
//   - In-place matrix multiplication; the receiver's shape becomes r × other.c.
//
// Implementation:
//   - Stage 1: validate non-nil, non-empty and compatible shapes.
//   - Stage 2: accumulate into a fresh buffer with i→k→j strides, reading only
//     the original values of m (so m.Mul(m) is well defined).
//   - Stage 3: install the buffer via reset.
//
// Behavior highlights:
//   - Compatibility: m.Cols == other.Rows. Under WithStrictMulShape the symmetric
//     rule additionally requires m.Rows == other.Cols.
//   - Handles previously returned by Ref are invalidated.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension (empty operand), ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense) Mul(other *Dense) error {
	if err := validateMulCompatible(opMul, m, other); err != nil {
		return err
	}
	m.reset(m.r, other.c, mulKernel(m, other))

	return nil
}

// mulKernel returns the row-major buffer of a×b. Shapes are pre-validated.
func mulKernel(a, b *Dense) []float64 {
	aRows, aCols, bCols := a.r, a.c, b.c
	out := make([]float64, aRows*bCols)
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				out[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return out
}

// Transpose returns a new c×r matrix with out(i,j) = m(j,i).
// Never fails; the empty state transposes to the empty state.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Transpose() *Dense {
	rows, cols := m.r, m.c
	res := newDenseWithOptions(cols, rows, m.opts)
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// Minor returns the (r-1)×(c-1) matrix obtained by deleting row `row` and
// column `col`, where both positions are 1-BASED: Minor(1, 1) drops the first
// row and first column, Minor(Rows(), Cols()) drops the last ones. The
// remaining cells keep their relative order.
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrInvalidDimension when the receiver is smaller than 2×2.
//   - ErrIndexOutOfRange when row ∉ [1, Rows()] or col ∉ [1, Cols()].
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func (m *Dense) Minor(row, col int) (*Dense, error) {
	if m == nil {
		return nil, shapeErr(opMinor, 0, 0, ErrNilMatrix)
	}
	if m.r < 2 || m.c < 2 {
		return nil, shapeErr(opMinor, m.r, m.c, ErrInvalidDimension)
	}
	if row < 1 || row > m.r || col < 1 || col > m.c {
		return nil, indexErr(opMinor, m, row, col, ErrIndexOutOfRange)
	}

	return m.minor(row-1, col-1), nil
}

// minor is the unchecked 0-based kernel behind Minor.
// Each surviving source row contributes two contiguous runs: [0,skipCol) and
// (skipCol,c), copied straight into the next free slot of the result.
func (m *Dense) minor(skipRow, skipCol int) *Dense {
	out := newDenseWithOptions(m.r-1, m.c-1, m.opts)
	var i, base, dst int
	for i = 0; i < m.r; i++ {
		if i == skipRow {
			continue
		}
		base = i * m.c
		dst += copy(out.data[dst:], m.data[base:base+skipCol])
		dst += copy(out.data[dst:], m.data[base+skipCol+1:base+m.c])
	}

	return out
}

// Determinant returns det(m) by cofactor expansion along the first row.
// MAIN DESCRIPTION:
//   - 1×1: the sole element. 2×2: ad − bc.
//   - n≥3: Σ_i m(0,i) · (−1)^i · det(minor(0,i)).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension (empty state), ErrNotSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) live minors along the recursion.
func (m *Dense) Determinant() (float64, error) {
	if err := validateSquare(opDeterminant, m); err != nil {
		return 0, err
	}

	return determinant(m), nil
}

// determinant is the unchecked recursive kernel; m is square and non-empty.
func determinant(m *Dense) float64 {
	switch m.r {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}
	var sum float64
	for i := 0; i < m.c; i++ {
		sum += m.data[i] * paritySign(i) * determinant(m.minor(0, i))
	}

	return sum
}

// paritySign returns (−1)^k.
func paritySign(k int) float64 {
	if k%2 != 0 {
		return -1
	}

	return 1
}

// Cofactors returns the matrix of cofactors C with
// C(i,j) = (−1)^(i+j) · det(Minor(i+1, j+1)).
// For a 1×1 input the result is [[1]] unless |m(0,0)| < eps, which is
// reported as ErrSingularOrDegenerate.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension (empty state), ErrNotSquare,
//     ErrSingularOrDegenerate.
//
// Complexity:
//   - Time O(n² · (n−1)!), Space O(n²).
func (m *Dense) Cofactors() (*Dense, error) {
	if err := validateSquare(opCofactors, m); err != nil {
		return nil, err
	}
	n := m.r
	res := newDenseWithOptions(n, n, m.opts)
	if n == 1 {
		if math.Abs(m.data[0]) < m.opts.Epsilon() {
			return nil, shapeErr(opCofactors, n, n, ErrSingularOrDegenerate)
		}
		res.data[0] = 1

		return res, nil
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = paritySign(i+j) * determinant(m.minor(i, j))
		}
	}

	return res, nil
}

// Adjugate returns adj(m) = Cofactors(m)ᵀ.
//
// Errors:
//   - Same as Cofactors, tagged with the Adjugate operation.
func (m *Dense) Adjugate() (*Dense, error) {
	cof, err := m.Cofactors()
	if err != nil {
		return nil, retag(opAdjugate, err)
	}

	return cof.Transpose(), nil
}

// Inverse returns m⁻¹ = adj(m) / det(m).
// MAIN DESCRIPTION:
//   - Stage 1: det := Determinant(); reject det == 0 exactly.
//   - Stage 2: build the cofactor matrix and write its transpose divided by det.
//
// Behavior highlights:
//   - The singularity check is exact: a tiny non-zero determinant is accepted
//     and yields a numerically unstable result.
//   - A 1×1 input with 0 < |a| < eps passes the determinant check but fails in
//     Cofactors with ErrSingularOrDegenerate.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension, ErrNotSquare, ErrSingularMatrix,
//     ErrSingularOrDegenerate.
//
// Complexity:
//   - Time O(n² · (n−1)!), Space O(n²).
func (m *Dense) Inverse() (*Dense, error) {
	det, err := m.Determinant()
	if err != nil {
		return nil, retag(opInverse, err)
	}
	if det == zeroDeterminant {
		return nil, shapeErr(opInverse, m.r, m.c, ErrSingularMatrix)
	}
	cof, err := m.Cofactors()
	if err != nil {
		return nil, retag(opInverse, err)
	}
	n := m.r
	res := newDenseWithOptions(n, n, m.opts)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = cof.data[j*n+i] / det
		}
	}

	return res, nil
}

// retag rewrites the operation tag of an *OpError raised by a nested call so
// the caller-facing op is reported. Every kernel error is an *OpError.
func retag(op string, err error) error {
	var oe *OpError
	if !errors.As(err, &oe) {
		return err
	}
	cp := *oe
	cp.Op = op

	return &cp
}

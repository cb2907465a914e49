// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape/nil/square checks.
//  - Keep kernels minimal by delegating guards here.
//  - Return ready-to-surface *OpError values tagged with the caller's op.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Empty → Shape),
//    which is also the documented error priority.

package matrix

// validateNotNil ensures both receiver and operand are non-nil.
// Complexity: O(1).
func validateNotNil(op string, m, other *Dense) error {
	if m == nil {
		return shapeErr(op, 0, 0, ErrNilMatrix)
	}
	if other == nil {
		return pairErr(op, m, nil, ErrNilMatrix)
	}

	return nil
}

// validateSameShape ensures m and other have identical extents.
// Assumes both are non-nil.
// Complexity: O(1).
func validateSameShape(op string, m, other *Dense) error {
	if m.r != other.r || m.c != other.c {
		return pairErr(op, m, other, ErrDimensionMismatch)
	}

	return nil
}

// validateMulCompatible checks a.Cols == b.Rows and, under the strict policy
// of the receiver, also a.Rows == b.Cols. Empty operands are rejected.
// Complexity: O(1).
func validateMulCompatible(op string, a, b *Dense) error {
	if err := validateNotNil(op, a, b); err != nil {
		return err
	}
	if a.isEmpty() || b.isEmpty() {
		return pairErr(op, a, b, ErrInvalidDimension)
	}
	if a.c != b.r {
		return pairErr(op, a, b, ErrDimensionMismatch)
	}
	if a.opts.strictMul && a.r != b.c {
		return pairErr(op, a, b, ErrDimensionMismatch)
	}

	return nil
}

// validateSquare ensures m is non-nil, populated and square.
// Priority: nil → empty → square.
// Complexity: O(1).
func validateSquare(op string, m *Dense) error {
	if m == nil {
		return shapeErr(op, 0, 0, ErrNilMatrix)
	}
	if m.isEmpty() {
		return shapeErr(op, m.r, m.c, ErrInvalidDimension)
	}
	if m.r != m.c {
		return shapeErr(op, m.r, m.c, ErrNotSquare)
	}

	return nil
}

// validateShape rejects non-positive extents at construction time.
func validateShape(op string, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return shapeErr(op, rows, cols, ErrInvalidDimension)
	}

	return nil
}

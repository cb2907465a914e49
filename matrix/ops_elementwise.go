// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - In-place element-wise kernels on the receiver: Add, Sub, Scale.
//   - Tolerance-based comparison: Equal, EqualApprox.
//
// Design:
//   - Validation runs to completion before the first write, so a failed call
//     leaves the receiver untouched.
//   - Single flat loop 0..n-1 over the row-major buffer; shapes are equal, so
//     offsets coincide in both operands.

package matrix

import "math"

const (
	opAdd   = "Add"
	opSub   = "Sub"
	opScale = "Scale"
)

// addSubInPlace computes m = m + sign*other for sign ∈ {+1, -1}.
// other may alias m (A.Add(A) doubles A).
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) addSubInPlace(other *Dense, sign float64, opTag string) error {
	if err := validateNotNil(opTag, m, other); err != nil {
		return err
	}
	if err := validateSameShape(opTag, m, other); err != nil {
		return err
	}
	n := len(m.data)
	for idx := 0; idx < n; idx++ {
		m.data[idx] += sign * other.data[idx]
	}

	return nil
}

// Add adds other into m element by element (m += other).
//
// Errors:
//   - ErrNilMatrix (nil receiver or operand).
//   - ErrDimensionMismatch (shapes differ).
//
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Add(other *Dense) error { return m.addSubInPlace(other, +1, opAdd) }

// Sub subtracts other from m element by element (m -= other).
//
// Errors:
//   - ErrNilMatrix (nil receiver or operand).
//   - ErrDimensionMismatch (shapes differ).
//
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Sub(other *Dense) error { return m.addSubInPlace(other, -1, opSub) }

// Scale multiplies every cell by alpha in place (m *= alpha). It has no
// failure mode on a non-nil receiver; NaN/Inf propagate regardless of policy.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Scale(alpha float64) {
	n := len(m.data)
	for idx := 0; idx < n; idx++ {
		m.data[idx] *= alpha
	}
}

// Equal reports whether m and other have the same shape and every pair of
// corresponding cells differs by at most eps, where eps is the smaller of the
// two operands' tolerances (DefaultEpsilon unless overridden). Taking the
// stricter one keeps a.Equal(b) == b.Equal(a) under mixed policies.
// A nil operand is never equal; NaN never compares equal.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return false
	}

	return m.EqualApprox(other, math.Min(m.opts.Epsilon(), other.opts.Epsilon()))
}

// EqualApprox is Equal with an explicit absolute tolerance.
// Negative eps never matches a non-empty matrix.
func (m *Dense) EqualApprox(other *Dense, eps float64) bool {
	if m == nil || other == nil {
		return false
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	n := len(m.data)
	for idx := 0; idx < n; idx++ {
		// Negated form so that NaN differences fail the check.
		if !(math.Abs(m.data[idx]-other.data[idx]) <= eps) {
			return false
		}
	}

	return true
}

// SPDX-License-Identifier: MIT
// Package matrix provides converters between Dense and plain slices or
// gonum matrices. Every converter copies: no result aliases its source.
package matrix

import (
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// ToRows returns an independent [][]float64 copy of m, one slice per row.
// The empty state yields an empty (non-nil) slice.
//
// Time Complexity: O(r*c)
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// ToGonum returns an independent copy of m as a *mat.Dense.
// gonum forbids zero-sized dense matrices, so the empty state yields nil.
//
// Time Complexity: O(r*c)
func (m *Dense) ToGonum() *mat.Dense {
	if m.isEmpty() {
		return nil
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}

// FromGonum copies any gonum matrix into a new Dense with the given policy.
//
// Errors:
//   - ErrNilMatrix when src is nil, including a typed nil pointer such as
//     (*mat.Dense)(nil).
//   - ErrInvalidDimension when src has a zero extent.
//
// Time Complexity: O(r*c)
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if isNilMatrix(src) {
		return nil, shapeErr(opFromGonum, 0, 0, ErrNilMatrix)
	}
	r, c := src.Dims()
	if err := validateShape(opFromGonum, r, c); err != nil {
		return nil, err
	}
	out := newDenseWithOptions(r, c, gatherOptions(opts...))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = src.At(i, j)
		}
	}

	return out, nil
}

// isNilMatrix reports an untyped nil or a nil pointer behind the interface.
func isNilMatrix(src mat.Matrix) bool {
	if src == nil {
		return true
	}
	v := reflect.ValueOf(src)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

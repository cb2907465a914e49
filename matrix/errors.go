// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the OpError context carrier.
// Every failure surfaced by this package is an *OpError wrapping exactly one
// of the sentinels below, so callers match the kind with errors.Is and
// recover shape/index context with errors.As.
// No operation panics on user-triggered conditions; panics are reserved for
// nonsensical Option arguments (programmer error, see options.go).

package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every sentinel message is prefixed with "matrix: " for easy grepping.
// Checks run before any mutation: a returned error means the receiver is
// exactly as it was before the call.

var (
	// ErrInvalidDimension is returned when a requested shape has a non-positive
	// extent, or when an operation needs a populated matrix and gets the empty state.
	ErrInvalidDimension = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible shapes between operands
	// (Add/Sub with different shapes, Mul with incompatible inner extents,
	// ragged row literals).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrSingularOrDegenerate is returned by Cofactors for a 1×1 matrix whose
	// only element is within eps of zero.
	ErrSingularOrDegenerate = errors.New("matrix: degenerate 1x1 matrix")

	// ErrSingularMatrix is returned by Inverse when the determinant is exactly zero.
	ErrSingularMatrix = errors.New("matrix: singular matrix")

	// ErrIndexOutOfRange indicates that a row or column index is outside valid bounds.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value written while the finite-only
	// policy (WithValidateNaNInf) is enabled.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// noIndex marks OpError.Row/Col as "not applicable".
const noIndex = -1

// OpError carries the diagnostic context of a failed operation.
//   - Op is the operation tag (op* constants, e.g. "Mul", "At").
//   - Rows/Cols is the receiver shape at the time of failure.
//   - OtherRows/OtherCols is the operand shape for binary ops (-1 when absent).
//   - Row/Col is the offending index for access errors (-1 when absent).
//   - Err is the sentinel kind.
type OpError struct {
	Op                   string
	Rows, Cols           int
	OtherRows, OtherCols int
	Row, Col             int
	Err                  error
}

// Error renders "Dense.<Op>[ctx]: <sentinel>".
func (e *OpError) Error() string {
	var b strings.Builder
	b.WriteString("Dense.")
	b.WriteString(e.Op)
	b.WriteString(fmt.Sprintf("[%dx%d", e.Rows, e.Cols))
	if e.OtherRows != noIndex {
		b.WriteString(fmt.Sprintf(" with %dx%d", e.OtherRows, e.OtherCols))
	}
	if e.Row != noIndex || e.Col != noIndex {
		b.WriteString(fmt.Sprintf(" at (%d,%d)", e.Row, e.Col))
	}
	b.WriteString("]: ")
	b.WriteString(e.Err.Error())

	return b.String()
}

// Unwrap exposes the sentinel to errors.Is.
func (e *OpError) Unwrap() error { return e.Err }

// shapeErr builds an OpError for a unary shape violation.
func shapeErr(op string, rows, cols int, err error) error {
	return &OpError{
		Op: op, Rows: rows, Cols: cols,
		OtherRows: noIndex, OtherCols: noIndex,
		Row: noIndex, Col: noIndex,
		Err: err,
	}
}

// pairErr builds an OpError for a binary shape violation.
func pairErr(op string, m, other *Dense, err error) error {
	e := &OpError{
		Op: op, Rows: m.r, Cols: m.c,
		OtherRows: noIndex, OtherCols: noIndex,
		Row: noIndex, Col: noIndex,
		Err: err,
	}
	if other != nil {
		e.OtherRows, e.OtherCols = other.r, other.c
	}

	return e
}

// indexErr builds an OpError for an element-level violation at (row, col).
func indexErr(op string, m *Dense, row, col int, err error) error {
	return &OpError{
		Op: op, Rows: m.r, Cols: m.c,
		OtherRows: noIndex, OtherCols: noIndex,
		Row: row, Col: col,
		Err: err,
	}
}

// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), ownership discipline & safe accessors.
//
// Purpose:
//   - Provide one contiguous owned buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Centralize every storage swap in release/reset so no path leaves a dangling state.
//
// Ownership model:
//   - Each Dense exclusively owns data; no two instances alias the same buffer.
//   - Clone/CopyFrom deep-copy, MoveFrom transfers the buffer and empties the source.
//   - The zero value Dense{} is the empty state (0×0, nil buffer).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Ref: O(1); Clone/CopyFrom: O(r*c); MoveFrom/Release: O(1).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- operation tags ----------

const (
	opNew       = "New"
	opAt        = "At"
	opSet       = "Set"
	opRef       = "Ref"
	opApply     = "Apply"
	opCopyFrom  = "CopyFrom"
	opMoveFrom  = "MoveFrom"
	opFromRows  = "FromRows"
	opFromGonum = "FromGonum"
	opResize    = "Resize"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix of float64 values.
//   - r,c hold dimensions (rows, cols); both zero only in the empty state.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - opts is the numeric policy (see options.go), inherited by derived matrices.
//
// A Dense is not safe for concurrent mutation; synchronize externally or work
// on independent clones.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
	opts Options   // per-instance numeric policy
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and optional policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimension.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: resolve options into the instance policy.
//
// Inputs:
//   - rows, cols: positive extents.
//   - opts: numeric policy setters (WithEpsilon, WithStrictMulShape, ...).
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimension (rows<=0 or cols<=0).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if err := validateShape(opNew, rows, cols); err != nil {
		return nil, err
	}

	return newDenseWithOptions(rows, cols, gatherOptions(opts...)), nil
}

// newDenseWithOptions is the unchecked internal constructor; callers guarantee
// rows,cols >= 0. Used by kernels to produce results carrying the receiver policy.
func newDenseWithOptions(rows, cols int, o Options) *Dense {
	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]float64, rows*cols), // make() zero-fills deterministically
		opts: o,
	}
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Options returns a copy of the instance numeric policy.
func (m *Dense) Options() Options { return m.opts }

// IsEmpty reports whether m is in the empty state (zero value, released or moved-from).
func (m *Dense) IsEmpty() bool { return m == nil || m.isEmpty() }

func (m *Dense) isEmpty() bool { return m.r == 0 || m.c == 0 }

// ---------- lifecycle ----------

// release drops the owned buffer and resets the shape. Idempotent.
// The policy is kept: it describes the instance, not the storage.
func (m *Dense) release() {
	m.data = nil
	m.r, m.c = 0, 0
}

// reset installs a new buffer after releasing the current one.
// The caller hands over ownership of data; len(data) must equal rows*cols.
func (m *Dense) reset(rows, cols int, data []float64) {
	m.release()
	m.r, m.c = rows, cols
	m.data = data
}

// Release is the explicit destructor: it drops the storage exactly once and
// leaves m in the empty state. Safe on the empty state and on nil.
// Complexity: O(1).
func (m *Dense) Release() {
	if m == nil {
		return
	}
	m.release()
}

// Clone returns a deep copy (new buffer, same policy).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, opts: m.opts}
}

// CopyFrom is copy assignment: m becomes an independent deep copy of src,
// including its policy.
// MAIN DESCRIPTION:
//   - Release current storage, then install a fresh copy of src's contents.
//
// Implementation:
//   - Stage 1: nil guards; self-assignment is a no-op.
//   - Stage 2: copy src into a new buffer BEFORE touching m.
//   - Stage 3: reset m with the new buffer.
//
// Errors:
//   - ErrNilMatrix when m or src is nil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) CopyFrom(src *Dense) error {
	if err := validateNotNil(opCopyFrom, m, src); err != nil {
		return err
	}
	if m == src {
		return nil
	}
	buf := make([]float64, len(src.data))
	copy(buf, src.data)
	m.reset(src.r, src.c, buf)
	m.opts = src.opts

	return nil
}

// MoveFrom is move assignment: m takes ownership of src's buffer, shape and
// policy without copying elements; src is left in the empty state.
// Self-move is a no-op.
//
// Errors:
//   - ErrNilMatrix when m or src is nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) MoveFrom(src *Dense) error {
	if err := validateNotNil(opMoveFrom, m, src); err != nil {
		return err
	}
	if m == src {
		return nil
	}
	m.reset(src.r, src.c, src.data)
	m.opts = src.opts
	src.release()

	return nil
}

// Resize reshapes m to rows×cols. Cells inside both the old and the new
// extents keep their values; new cells are zero. The new buffer is installed
// through reset, so handles from Ref are invalidated. Resizing the empty state
// allocates a zero matrix.
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrInvalidDimension when rows<=0 or cols<=0 (m is left unchanged).
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense) Resize(rows, cols int) error {
	if m == nil {
		return shapeErr(opResize, 0, 0, ErrNilMatrix)
	}
	if err := validateShape(opResize, rows, cols); err != nil {
		return err
	}
	if !m.opts.resolved {
		m.opts = defaultOptions()
	}
	buf := make([]float64, rows*cols)
	keepRows, keepCols := min(rows, m.r), min(cols, m.c)
	for i := 0; i < keepRows; i++ {
		copy(buf[i*cols:i*cols+keepCols], m.data[i*m.c:i*m.c+keepCols])
	}
	m.reset(rows, cols, buf)

	return nil
}

// ---------- element access ----------

// indexOf computes the row-major offset or returns ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfRange.
// A nil receiver reports ErrNilMatrix.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if m == nil {
		return 0, shapeErr(opAt, 0, 0, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, indexErr(opAt, m, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrIndexOutOfRange for bounds.
//   - ErrNaNInf for non-finite v when the policy enables validation.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if m == nil {
		return shapeErr(opSet, 0, 0, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return indexErr(opSet, m, row, col, err)
	}
	if m.opts.validateNaNInf && isNonFinite(v) {
		return indexErr(opSet, m, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Ref returns a mutable handle to cell (row, col): callers may read and write
// through it. The handle bypasses the NaN/Inf policy.
//
// The pointer refers to the current buffer and is invalidated by any call that
// installs new storage (Mul, Resize, CopyFrom, MoveFrom, Release).
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrIndexOutOfRange for bounds.
func (m *Dense) Ref(row, col int) (*float64, error) {
	if m == nil {
		return nil, shapeErr(opRef, 0, 0, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, indexErr(opRef, m, row, col, err)
	}

	return &m.data[off], nil
}

// String renders rows as lines with comma-separated %g values.
// The empty state and nil render as "".
// Complexity: O(r*c).
func (m *Dense) String() string {
	if m.IsEmpty() {
		return ""
	}
	var b strings.Builder
	last := m.c - 1
	m.Do(func(_, j int, v float64) bool {
		if j == 0 {
			b.WriteString(_fmtRowOpen)
		} else {
			b.WriteString(_fmtSep)
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		if j == last {
			b.WriteString(_fmtRowClose)
		}

		return true
	})

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Nil and empty matrices visit nothing.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	if m.IsEmpty() {
		return
	}
	for off, v := range m.data {
		if !f(off/m.c, off%m.c, v) {
			return
		}
	}
}

// Apply replaces each element with f(i,j,v) in place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - All-or-nothing: values are computed into a scratch buffer and installed
//     only when every result passes the NaN/Inf policy.
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrNaNInf when f produced a non-finite value under validation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	if m == nil {
		return shapeErr(opApply, 0, 0, ErrNilMatrix)
	}
	out := make([]float64, len(m.data))
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.opts.validateNaNInf && isNonFinite(nv) {
				return indexErr(opApply, m, i, j, ErrNaNInf)
			}
			out[base+j] = nv
		}
	}
	copy(m.data, out)

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the per-instance numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Policy travels with the data: Clone/CopyFrom/MoveFrom and every matrix
//     derived from a receiver (Transpose, Minor, Cofactors, Inverse...) inherit it.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by Equal and by the 1×1
	// degeneracy check in Cofactors.
	DefaultEpsilon = 1e-6

	// DefaultStrictMulShape selects the multiplication compatibility rule.
	// false ⇒ standard rule a.Cols == b.Rows.
	// true  ⇒ symmetric rule a.Cols == b.Rows && a.Rows == b.Cols.
	DefaultStrictMulShape = false

	// DefaultValidateNaNInf toggles finite-only validation in Set and Apply.
	DefaultValidateNaNInf = false
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	strictMul      bool    // DefaultStrictMulShape
	validateNaNInf bool    // DefaultValidateNaNInf
	resolved       bool    // false only for the zero value of Dense
}

// Epsilon reports the resolved equality tolerance. The zero Options (held by
// a zero-value Dense) reports DefaultEpsilon.
func (o Options) Epsilon() float64 {
	if !o.resolved {
		return DefaultEpsilon
	}

	return o.eps
}

// StrictMulShape reports whether the symmetric multiplication rule is active.
func (o Options) StrictMulShape() bool { return o.strictMul }

// ValidateNaNInf reports whether non-finite writes are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithEpsilon sets the absolute tolerance used by Equal and by the 1×1
// degeneracy guard in Cofactors.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Inverse never consults eps: its singularity check is exact-zero.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithStrictMulShape selects the symmetric compatibility rule for Mul/Product,
// which additionally demands a.Rows == b.Cols. Under it a 2×3 by 3×4 product
// is rejected with ErrDimensionMismatch.
func WithStrictMulShape() Option {
	return func(o *Options) { o.strictMul = true }
}

// WithStandardMulShape selects the standard a.Cols == b.Rows rule (the default).
func WithStandardMulShape() Option {
	return func(o *Options) { o.strictMul = false }
}

// WithValidateNaNInf makes Set and Apply reject NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf accepts any float64 in Set and Apply (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins; pure function.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		strictMul:      DefaultStrictMulShape,
		validateNaNInf: DefaultValidateNaNInf,
		resolved:       true,
	}
}

// gatherOptions applies user setters on top of defaults, in order.
// Nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED options and the panic contract to matrix_test ONLY.
//   - Lives in a _test.go file, so it never ships in production builds.
//
// Provided Surface:
//   - PanicEpsilonInvalid_TestOnly: stable panic message of WithEpsilon.
//   - OptionsSnapshot + GatherOptionsSnapshot_TestOnly: read-only view of
//     the resolved policy.

// PanicEpsilonInvalid_TestOnly is the message WithEpsilon panics with.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// OptionsSnapshot mirrors the internal Options fields for assertions.
type OptionsSnapshot struct {
	Eps            float64
	StrictMul      bool
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts the same way constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, StrictMul: o.strictMul, ValidateNaNInf: o.validateNaNInf}
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the Dense kernels.
//   - Keep all data finite so the NaN/Inf policy never interferes.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/cofactor/matrix"
)

// exactTol is the tolerance for results that are exact in float64
// (integer-valued inputs, no division).
const exactTol = 0.0

// algebraTol is the tolerance for results that went through division or
// long accumulation chains.
const algebraTol = 1e-9

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense from a row literal or fails the test.
func MustFromRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes v to m[i,j] or fails the test.
func MustSet(t testing.TB, m *matrix.Dense, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// RandFilledDense returns a new r×c Dense filled with deterministic U(-1,1).
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}

	return m
}

// DiagDominant returns an n×n strictly diagonally dominant matrix, hence
// non-singular: off-diagonal U(-1,1), diagonal = row |sum| + 1.
func DiagDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandFilledDense(t, n, n, seed)
	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		sum = 0
		for j = 0; j < n; j++ {
			if i != j {
				sum += math.Abs(MustAt(t, m, i, j))
			}
		}
		MustSet(t, m, i, i, sum+1)
	}

	return m
}

// RequireRows compares m against want cell by cell within tol, printing a
// go-cmp diff on mismatch.
func RequireRows(t testing.TB, want [][]float64, m *matrix.Dense, tol float64) {
	t.Helper()
	if m == nil {
		t.Fatalf("RequireRows: got nil matrix, want %v", want)
	}
	if diff := cmp.Diff(want, m.ToRows(), cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

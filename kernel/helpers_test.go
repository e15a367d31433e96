// SPDX-License-Identifier: MIT
// Package kernel_test contains shared fixtures for kernel tests.

package kernel_test

import (
	"testing"

	"github.com/katalvlaran/tmmbench/matrix"
)

// filledInputs allocates a, b, c of dimension n and applies the benchmark pattern to a and b.
func filledInputs(tb testing.TB, n int) (a, b, c *matrix.Dense) {
	tb.Helper()
	var err error
	if a, err = matrix.NewDense(n); err != nil {
		tb.Fatalf("NewDense(%d): %v", n, err)
	}
	if b, err = matrix.NewDense(n); err != nil {
		tb.Fatalf("NewDense(%d): %v", n, err)
	}
	if c, err = matrix.NewDense(n); err != nil {
		tb.Fatalf("NewDense(%d): %v", n, err)
	}
	if err = matrix.FillUpperTriangular(a, b); err != nil {
		tb.Fatalf("FillUpperTriangular: %v", err)
	}

	return a, b, c
}

// expectedCell is the closed-form product of the benchmark pattern:
// Σ_{k=i..j} (k+1)(j+1) for i ≤ j, zero below the diagonal.
func expectedCell(i, j int) float32 {
	if i > j {
		return 0
	}
	var sum int
	for k := i; k <= j; k++ {
		sum += (k + 1) * (j + 1)
	}

	return float32(sum)
}

// fillGarbage overwrites every cell of m with a nonzero value.
func fillGarbage(m *matrix.Dense) {
	raw := m.Raw()
	for idx := range raw {
		raw[idx] = float32(idx%7) - 3.5
	}
}

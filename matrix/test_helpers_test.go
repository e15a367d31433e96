// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tmmbench/matrix"
)

// MustDense allocates an n×n *Dense or fails the test.
func MustDense(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(n)
	if err != nil {
		tb.Fatalf("NewDense(%d): %v", n, err)
	}

	return m
}

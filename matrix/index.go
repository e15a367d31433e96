// SPDX-License-Identifier: MIT

package matrix

// Index maps the coordinate (i, j) of an n×n row-major matrix to its flat
// offset i*n + j.
//
// Callers guarantee 0 ≤ i, j < n. Out-of-range arguments are not detected:
// Index sits inside the innermost multiplication loop and must stay a single
// multiply-add so the compiler inlines it. Use Dense.At / Dense.Set when the
// coordinates come from untrusted input.
//
// For fixed n, Index is a bijection from [0,n)×[0,n) onto [0, n²).
func Index(i, j, n int) int {
	return i*n + j
}

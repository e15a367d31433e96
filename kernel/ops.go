// SPDX-License-Identifier: MIT

package kernel

// OpCount is a number of scalar floating-point operations attributed to a
// multiplication. A fused multiply-add step counts as two.
type OpCount uint64

// TriangularOps returns the operation count the Triangular kernel reports
// for dimension n: 2·Σ_{i≤j}(j−i+1), which simplifies to n(n+1)(n+2)/3.
//
// The kernel itself does not call this; it counts inside its loop. The closed
// form exists for callers that need the expected figure up front.
func TriangularOps(n int) OpCount {
	if n <= 0 {
		return 0
	}
	u := uint64(n)

	return OpCount(u * (u + 1) * (u + 2) / 3)
}

// DenseOps returns 2·n³, the work of a full dense n×n product.
func DenseOps(n int) OpCount {
	if n <= 0 {
		return 0
	}
	u := uint64(n)

	return OpCount(2 * u * u * u)
}

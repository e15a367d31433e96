// Package matrix provides the storage layer for triangular matrix benchmarks.
//
// What & Why:
//
//	Dense is a square n×n float32 matrix backed by one contiguous row-major
//	buffer of length n². The benchmark treats its inputs as upper-triangular
//	(only cells with row ≤ column carry meaningful values), but the storage is
//	always fully allocated: the dense BLAS path reads the whole square, and the
//	cells below the diagonal are simply zero by convention.
//
//	Index is the single source of truth for address computation. Every
//	component that touches a flat buffer (initializer, kernels, BLAS glue)
//	goes through it, so the initializer and the multipliers can never disagree
//	about where (i, j) lives.
//
// Complexity:
//
//	Index, At and Set run in O(1).
//	NewDense, Zero and Clone run in O(n²).
//	FillUpperTriangular runs in O(n²/2) writes per matrix.
package matrix

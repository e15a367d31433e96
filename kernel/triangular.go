// SPDX-License-Identifier: MIT

package kernel

import "github.com/katalvlaran/tmmbench/matrix"

// Triangular is the naive upper-triangular kernel. It is single-threaded,
// keeps no state between calls and never allocates.
type Triangular struct{}

// NewTriangular returns the naive triangular kernel.
func NewTriangular() *Triangular { return &Triangular{} }

// Name implements Multiplier.
func (*Triangular) Name() string { return VariantTriangular }

// Multiply computes c[i,j] = Σ_{k=i..j} a[i,k]·b[k,j] for every cell.
// Implementation:
//   - Stage 1: check operands once (nil, equal dimension).
//   - Stage 2: run the unchecked kernel over the raw buffers.
//
// Behavior highlights:
//   - Every output cell is reset to zero before accumulation, so stale
//     contents of c never leak into the result and repeated calls agree.
//   - Cells below the diagonal end up zero: their k-range [i, j] is empty.
//   - Only the upper triangles of a and b are read.
//
// Returns:
//   - OpCount: two per executed inner step, measured inside the loop.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³/6), Space O(1).
func (t *Triangular) Multiply(a, b, c *matrix.Dense) (OpCount, error) {
	if err := matrix.SameSize(a, b, c); err != nil {
		return 0, kernelErrorf(t.Name(), err)
	}

	return multiplyTriangular(a.Raw(), b.Raw(), c.Raw(), a.N()), nil
}

// multiplyTriangular is the unchecked kernel. a, b and c must each hold n²
// elements. Loop order is row i, column j, then k over [i, j].
func multiplyTriangular(a, b, c []float32, n int) OpCount {
	var (
		ops        OpCount
		i, j, k, o int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			o = matrix.Index(i, j, n)
			c[o] = 0
			for k = i; k < j+1; k++ {
				c[o] += a[matrix.Index(i, k, n)] * b[matrix.Index(k, j, n)]
				ops += 2
			}
		}
	}

	return ops
}

// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies m into a new float64 gonum matrix of the same shape.
// The result is independent of m. Useful as an oracle: gonum's dense
// product of two converted inputs is an exact reference for small,
// integer-valued benchmark patterns.
//
// Complexity: O(n²).
func ToGonum(m *Dense) *mat.Dense {
	buf := make([]float64, len(m.data))
	for i, v := range m.data {
		buf[i] = float64(v)
	}

	return mat.NewDense(m.n, m.n, buf)
}

// FromGonum copies a square gonum matrix into a new Dense.
// Errors:
//   - ErrInvalidDimensions for empty matrices.
//   - ErrDimensionMismatch for non-square input.
func FromGonum(g mat.Matrix) (*Dense, error) {
	r, c := g.Dims()
	if r != c {
		return nil, ErrDimensionMismatch
	}
	m, err := NewDense(r)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.data[Index(i, j, r)] = float32(g.At(i, j))
		}
	}

	return m, nil
}

// SPDX-License-Identifier: MIT

package matrix

// FillUpperTriangular populates the upper triangle of a and b with the
// deterministic benchmark pattern: every (i, j) with i ≤ j receives j+1
// (the 1-based column index) in both matrices.
// Implementation:
//   - Stage 1: validate both operands are non-nil and share one dimension.
//   - Stage 2: walk rows i, then columns j ∈ [i, n), writing through Index.
//
// Behavior highlights:
//   - Cells below the diagonal are not touched; they keep whatever they held,
//     which is zero for freshly allocated matrices.
//   - No randomness: the same n always yields the same inputs, so expected
//     products have a closed form.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from SameSize).
//
// Complexity:
//   - Time O(n²/2), Space O(1).
func FillUpperTriangular(a, b *Dense) error {
	if err := SameSize(a, b); err != nil {
		return err
	}

	n := a.n
	ad, bd := a.data, b.data
	var i, j, off int
	var v float32
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			off = Index(i, j, n)
			v = float32(j + 1)
			ad[off] = v
			bd[off] = v
		}
	}

	return nil
}

// IsUpperTriangular reports whether every cell strictly below the diagonal is zero.
// Complexity: O(n²/2).
func IsUpperTriangular(m *Dense) bool {
	if m == nil {
		return false
	}
	for i := 1; i < m.n; i++ {
		for j := 0; j < i; j++ {
			if m.data[Index(i, j, m.n)] != 0 {
				return false
			}
		}
	}

	return true
}

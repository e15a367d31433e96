// SPDX-License-Identifier: MIT

// Package matrix - Dense square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide one contiguous float32 buffer of length n² addressed only via Index.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose the raw buffer to kernels and BLAS glue, which address it through Index.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Zero/Clone: O(n²).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a square n×n matrix of float32 values in row-major order.
//   - n is the dimension (rows == cols == n).
//   - data holds exactly n*n elements; cell (i, j) lives at Index(i, j, n).
//
// Cells below the diagonal are allocated like every other cell. Triangular
// structure is a convention of the data, never of the storage.
type Dense struct {
	n    int       // dimension
	data []float32 // flat backing storage, len == n*n
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an n×n Dense matrix initialized to zeros.
// Implementation:
//   - Stage 1: validate n > 0 (ErrInvalidDimensions).
//   - Stage 2: reject n whose square overflows int (ErrBadShape).
//   - Stage 3: allocate the zero-filled flat buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape.
//
// Complexity:
//   - Time O(n²), Space O(n²).
//
// Notes:
//   - A request that fits into int but not into memory is a fatal runtime
//     error of the allocator and is not recovered.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	if n > math.MaxInt/n {
		return nil, fmt.Errorf("NewDense(%d): %w", n, ErrBadShape)
	}

	return &Dense{n: n, data: make([]float32, n*n)}, nil
}

// N returns the dimension of the matrix.
// Complexity: O(1).
func (m *Dense) N() int { return m.n }

// Len returns the length of the backing buffer (n²).
// Complexity: O(1).
func (m *Dense) Len() int { return len(m.data) }

// Raw returns the backing buffer without copying.
// Writes through the returned slice are visible in m. Address it with
// Index(i, j, m.N()) only.
func (m *Dense) Raw() []float32 { return m.data }

// indexOf bounds-checks (row, col) and computes the flat offset via Index.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	return Index(row, col, m.n), nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float32, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float32) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Zero resets every cell, including the lower triangle, to 0.
// Complexity: O(n²).
func (m *Dense) Zero() {
	clear(m.data)
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	cp := make([]float32, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// String renders the matrix row by row for diagnostics.
// Not for hot paths; large matrices produce large strings.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.n; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[Index(i, j, m.n)]))
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// SameSize reports whether all given matrices are non-nil and share one dimension.
// Errors:
//   - ErrNilMatrix if any argument is nil.
//   - ErrDimensionMismatch if dimensions differ.
func SameSize(ms ...*Dense) error {
	var n int
	for idx, m := range ms {
		if m == nil {
			return fmt.Errorf("operand %d: %w", idx, ErrNilMatrix)
		}
		if idx == 0 {
			n = m.n
			continue
		}
		if m.n != n {
			return fmt.Errorf("operand %d is %d×%d, want %d×%d: %w", idx, m.n, m.n, n, n, ErrDimensionMismatch)
		}
	}

	return nil
}

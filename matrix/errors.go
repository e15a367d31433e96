// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and checked accessors return these sentinels and tests
// match them via errors.Is. Hot loops never return errors; they rely on the
// shape checks performed once at the public surface.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at outer boundaries; callers still
// match with errors.Is.
var (
	// ErrInvalidDimensions indicates that the requested dimension is not positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when n² does not fit into an int.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of different dimension.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// denseErrorf wraps a sentinel with the Dense method name and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"

	"github.com/katalvlaran/tmmbench/matrix"
)

// Strategy names accepted by New.
const (
	VariantTriangular  = "triangular"
	VariantAccelerated = "accelerated"
)

// Multiplier is the contract shared by every strategy.
//
// Multiply computes c from a and b, which must be non-nil and share one
// dimension, and returns the number of floating-point operations attributed
// to the call. a and b are read only. c is owned by the call for its
// duration.
type Multiplier interface {
	Name() string
	Multiply(a, b, c *matrix.Dense) (OpCount, error)
}

var (
	_ Multiplier = (*Triangular)(nil)
	_ Multiplier = (*Accelerated)(nil)
)

// New returns the strategy registered under variant.
// Options configure the accelerated strategy and are ignored by the
// triangular one.
//
// Errors:
//   - ErrUnknownVariant for unrecognized names.
//   - Any error from NewAccelerated (ErrBackendUnavailable, ErrInvalidThreads, ...).
func New(variant string, opts ...Option) (Multiplier, error) {
	switch variant {
	case VariantTriangular:
		return NewTriangular(), nil
	case VariantAccelerated:
		return NewAccelerated(opts...)
	default:
		return nil, fmt.Errorf("%q: %w", variant, ErrUnknownVariant)
	}
}

// Variants lists the names accepted by New.
func Variants() []string {
	return []string{VariantTriangular, VariantAccelerated}
}

// SPDX-License-Identifier: MIT
// Package kernel: sentinel error set.

package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVariant is returned by New for an unrecognized strategy name.
	ErrUnknownVariant = errors.New("kernel: unknown variant")

	// ErrBackendUnavailable signals that the requested BLAS backend is not
	// registered in this build. The accelerated variant cannot run without it.
	ErrBackendUnavailable = errors.New("kernel: BLAS backend unavailable")

	// ErrInvalidThreads indicates a worker count below one.
	ErrInvalidThreads = errors.New("kernel: thread count must be > 0")

	// ErrInvalidScalar indicates a NaN or ±Inf alpha/beta.
	ErrInvalidScalar = errors.New("kernel: alpha and beta must be finite")
)

// kernelErrorf attaches the strategy name to an error returned by Multiply.
func kernelErrorf(variant string, err error) error {
	return fmt.Errorf("%s.Multiply: %w", variant, err)
}

// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas"

	"github.com/katalvlaran/tmmbench/matrix"
)

// Accelerated multiplies through an optimized BLAS sgemm, treating both
// inputs as fully dense. It is the "more work, faster per operation"
// reference point for the triangular kernel.
type Accelerated struct {
	backend Backend
	threads int
	alpha   float32
	beta    float32
}

// NewAccelerated resolves the BLAS backend and validates the configuration.
// Implementation:
//   - Stage 1: gather defaults and user options.
//   - Stage 2: validate thread count and scalars.
//   - Stage 3: look the backend up in the registry.
//
// Errors:
//   - ErrInvalidThreads, ErrInvalidScalar.
//   - ErrBackendUnavailable when the backend is not part of this build.
//     Callers treat this as a startup failure.
func NewAccelerated(opts ...Option) (*Accelerated, error) {
	o := gatherOptions(opts...)
	if o.threads < 1 {
		return nil, fmt.Errorf("threads=%d: %w", o.threads, ErrInvalidThreads)
	}
	if !isFinite32(o.alpha) || !isFinite32(o.beta) {
		return nil, fmt.Errorf("alpha=%v beta=%v: %w", o.alpha, o.beta, ErrInvalidScalar)
	}
	be, err := LookupBackend(o.backend)
	if err != nil {
		return nil, err
	}

	return &Accelerated{backend: be, threads: o.threads, alpha: o.alpha, beta: o.beta}, nil
}

// Name implements Multiplier.
func (*Accelerated) Name() string { return VariantAccelerated }

// Backend returns the name of the BLAS provider in use.
func (m *Accelerated) Backend() string { return m.backend.Name() }

// Threads returns the configured worker count.
func (m *Accelerated) Threads() int { return m.threads }

// Multiply computes c := alpha·a·b + beta·c with the backend's sgemm.
// Implementation:
//   - Stage 1: check operands once (nil, equal dimension).
//   - Stage 2: apply the worker count, call sgemm (row-major, no transpose,
//     stride n), restore the previous worker count.
//   - Stage 3: report 2·n³ operations.
//
// Behavior highlights:
//   - The triangular convention is ignored: every k in [0, n) contributes,
//     including the structurally zero lower triangles.
//   - The operation count is analytic. sgemm internals are opaque, so
//     nothing is measured.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³) arithmetic, parallel across the configured workers.
func (m *Accelerated) Multiply(a, b, c *matrix.Dense) (OpCount, error) {
	if err := matrix.SameSize(a, b, c); err != nil {
		return 0, kernelErrorf(m.Name(), err)
	}
	n := a.N()

	restore := m.backend.SetThreads(m.threads)
	defer restore()
	m.backend.Sgemm(blas.NoTrans, blas.NoTrans, n, n, n,
		m.alpha, a.Raw(), n,
		b.Raw(), n,
		m.beta, c.Raw(), n)

	return DenseOps(n), nil
}

func isFinite32(v float32) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

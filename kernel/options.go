// SPDX-License-Identifier: MIT

// Package kernel: functional configuration for the accelerated strategy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper that applies defaults then user setters.
//
// Setters never panic; NewAccelerated validates the gathered values and
// returns sentinel errors.
package kernel

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBackend is the BLAS provider used when none is requested.
	// The pure-Go gonum implementation is available in every build.
	DefaultBackend = BackendGonum

	// DefaultAlpha scales the product term of C := alpha·A·B + beta·C.
	DefaultAlpha float32 = 1

	// DefaultBeta scales the prior contents of C. With a zero-filled C the
	// result is the plain product; with a reused C the product accumulates.
	DefaultBeta float32 = 1
)

// DefaultThreads returns the worker count used when none is requested: one
// per logical CPU.
func DefaultThreads() int { return runtime.NumCPU() }

// ---------- Public option type (functional) ----------

// Option mutates internal options. Later options override earlier ones.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	threads int     // worker count for the duration of one call
	backend string  // registry name of the BLAS provider
	alpha   float32 // DefaultAlpha
	beta    float32 // DefaultBeta
}

// WithThreads sets the number of parallel workers the BLAS backend may use
// while a Multiply call is running. The previous process setting is restored
// when the call returns.
func WithThreads(n int) Option {
	return func(o *Options) { o.threads = n }
}

// WithBackend selects the BLAS provider by registry name (see Backends).
func WithBackend(name string) Option {
	return func(o *Options) { o.backend = name }
}

// WithAlpha sets alpha in C := alpha·A·B + beta·C.
func WithAlpha(alpha float32) Option {
	return func(o *Options) { o.alpha = alpha }
}

// WithBeta sets beta in C := alpha·A·B + beta·C.
// Use 0 to make the result independent of the prior contents of C.
func WithBeta(beta float32) Option {
	return func(o *Options) { o.beta = beta }
}

// gatherOptions applies defaults, then user setters in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		threads: DefaultThreads(),
		backend: DefaultBackend,
		alpha:   DefaultAlpha,
		beta:    DefaultBeta,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

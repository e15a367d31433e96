// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/tmmbench/kernel"
	"github.com/katalvlaran/tmmbench/matrix"
)

// Config selects what a single run measures.
type Config struct {
	Variant string  // kernel.VariantTriangular or kernel.VariantAccelerated
	Size    int     // matrix dimension n
	Threads int     // worker count; accelerated variant only
	Backend string  // BLAS backend name; accelerated variant only
	Alpha   float32 // sgemm alpha; accelerated variant only
	Beta    float32 // sgemm beta; accelerated variant only
}

// DefaultConfig returns the triangular variant with the kernel package
// defaults for every accelerated setting. Size is left unset.
func DefaultConfig() Config {
	return Config{
		Variant: kernel.VariantTriangular,
		Threads: kernel.DefaultThreads(),
		Backend: kernel.DefaultBackend,
		Alpha:   kernel.DefaultAlpha,
		Beta:    kernel.DefaultBeta,
	}
}

// Validate checks the fields the harness relies on. Kernel-level settings
// (backend, scalars) are validated by kernel.New.
func (c Config) Validate() error {
	if !slices.Contains(kernel.Variants(), c.Variant) {
		return fmt.Errorf("variant %q: %w", c.Variant, ErrInvalidConfig)
	}
	if c.Size <= 0 {
		return fmt.Errorf("size %d: %w", c.Size, ErrInvalidConfig)
	}
	if c.Variant == kernel.VariantAccelerated && c.Threads <= 0 {
		return fmt.Errorf("threads %d: %w", c.Threads, ErrInvalidConfig)
	}

	return nil
}

func (c Config) options() []kernel.Option {
	return []kernel.Option{
		kernel.WithThreads(c.Threads),
		kernel.WithBackend(c.Backend),
		kernel.WithAlpha(c.Alpha),
		kernel.WithBeta(c.Beta),
	}
}

// Runner executes measured runs. It is not safe for concurrent use: runs
// are meant to happen one at a time so they do not compete for CPUs.
type Runner struct {
	log zerolog.Logger
}

// NewRunner returns a Runner that logs through log. Pass zerolog.Nop() to
// silence it.
func NewRunner(log zerolog.Logger) *Runner {
	return &Runner{log: log}
}

// Run performs one benchmark run.
// Implementation:
//   - Stage 1: validate cfg and build the multiplier (backend resolution
//     happens here, so an unavailable BLAS fails before any allocation).
//   - Stage 2: allocate a, b, c (n² float32 each) and fill a and b.
//   - Stage 3: start the stopwatch, call Multiply once, stop the stopwatch.
//   - Stage 4: derive throughput and return the report.
//
// Errors:
//   - ErrInvalidConfig, kernel and matrix sentinels, wrapped with context.
func (r *Runner) Run(cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	mul, err := kernel.New(cfg.Variant, cfg.options()...)
	if err != nil {
		return Report{}, fmt.Errorf("build %s multiplier: %w", cfg.Variant, err)
	}
	backend, threads := "", 1
	if acc, ok := mul.(*kernel.Accelerated); ok {
		backend, threads = acc.Backend(), acc.Threads()
	}

	r.log.Debug().Int("n", cfg.Size).Int("elements", cfg.Size*cfg.Size).Msg("allocating matrices")
	a, b, c, err := allocate(cfg.Size)
	if err != nil {
		return Report{}, err
	}
	if err = matrix.FillUpperTriangular(a, b); err != nil {
		return Report{}, fmt.Errorf("fill inputs: %w", err)
	}

	r.log.Debug().Str("variant", mul.Name()).Str("backend", backend).Int("threads", threads).Msg("multiplying")
	sw := StartStopwatch()
	ops, err := mul.Multiply(a, b, c)
	el := sw.Stop()
	if err != nil {
		return Report{}, fmt.Errorf("multiply: %w", err)
	}

	rep := NewReport(mul.Name(), backend, cfg.Size, threads, ops, el)
	r.log.Info().EmbedObject(rep).Msg("run complete")

	return rep, nil
}

// Sweep runs every combination of sizes and thread counts with fresh
// buffers per run, stopping at the first failure. Thread counts only vary
// for the accelerated variant. Empty lists fall back to base.Size and
// base.Threads.
func (r *Runner) Sweep(base Config, sizes, threads []int) ([]Report, error) {
	if len(sizes) == 0 {
		sizes = []int{base.Size}
	}
	if len(threads) == 0 || base.Variant != kernel.VariantAccelerated {
		threads = []int{base.Threads}
	}

	reports := make([]Report, 0, len(sizes)*len(threads))
	for _, n := range sizes {
		for _, th := range threads {
			cfg := base
			cfg.Size, cfg.Threads = n, th
			rep, err := r.Run(cfg)
			if err != nil {
				return reports, fmt.Errorf("n=%d threads=%d: %w", n, th, err)
			}
			reports = append(reports, rep)
		}
	}

	return reports, nil
}

func allocate(n int) (a, b, c *matrix.Dense, err error) {
	if a, err = matrix.NewDense(n); err != nil {
		return nil, nil, nil, fmt.Errorf("allocate a: %w", err)
	}
	if b, err = matrix.NewDense(n); err != nil {
		return nil, nil, nil, fmt.Errorf("allocate b: %w", err)
	}
	if c, err = matrix.NewDense(n); err != nil {
		return nil, nil, nil, fmt.Errorf("allocate c: %w", err)
	}

	return a, b, c, nil
}

// Package tmmbench benchmarks multiplication of upper-triangular matrices
// stored in dense row-major layout.
//
// What is measured?
//
//	Two strategies over the same inputs:
//		• triangular:  a naive kernel that only sums k ∈ [i, j], skipping
//		                products that are structurally zero
//		• accelerated: a BLAS sgemm that treats the inputs as fully dense,
//		                doing 2·n³ work on as many threads as requested
//
//	Each run reports wall and CPU time, the operation count and the
//	resulting throughput, so "less work, naive code" can be compared with
//	"more work, tuned code".
//
// Under the hood, everything is organized under three packages:
//
//	matrix/: Dense n×n float32 storage, the Index addressing function and
//	          the deterministic upper-triangular input pattern
//	kernel/: the Multiplier contract, both strategies and BLAS backends
//	bench/:  stopwatch, throughput, reports, runner and stdin prompts
//
// The command lives in cmd/tmmbench:
//
//	echo 1024 | go run ./cmd/tmmbench
//	go run ./cmd/tmmbench -variant accelerated -n 2048 -threads 8
//
// Build with "-tags openblas" (cgo, libopenblas) to add the OpenBLAS backend.
package tmmbench

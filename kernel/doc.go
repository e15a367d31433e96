// Package kernel implements the two interchangeable multiplication strategies
// compared by the benchmark.
//
//   - Triangular is the naive kernel. It restricts the reduction index k to
//     [i, j], so entries that are structurally zero in upper-triangular inputs
//     are never read, and it counts two operations (one multiply, one add) per
//     executed inner step.
//   - Accelerated hands the same buffers to an optimized single-precision
//     GEMM (sgemm) as if they were fully dense. It performs the full n³ work,
//     so its operation count is computed analytically as 2·n³ instead of
//     being measured.
//
// Both satisfy Multiplier and are selected by name through New. BLAS
// providers plug in as Backends; the pure-Go gonum implementation is always
// registered, an OpenBLAS binding is registered when built with
// "-tags openblas" and cgo enabled.
package kernel

// Package bench is the timing and reporting harness around a kernel.Multiplier.
//
// A Runner allocates three n×n matrices, fills the two inputs with the
// deterministic upper-triangular pattern, brackets exactly one Multiply call
// with a Stopwatch (wall clock and process CPU clock) and turns the elapsed
// time plus the reported operation count into a Report.
//
// Reports are observational: nothing in a Report feeds back into the
// computation, and nothing is persisted. A failed run yields an error and no
// report. There are no retries.
package bench

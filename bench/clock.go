// SPDX-License-Identifier: MIT

package bench

import "time"

// Elapsed holds the two clocks measured around one call.
//   - Wall is monotonic wall-clock time.
//   - CPU is user+system time consumed by the whole process, summed across
//     threads, so a parallel call can report more CPU than wall time. It is
//     zero on platforms without a process CPU clock.
type Elapsed struct {
	Wall time.Duration
	CPU  time.Duration
}

// Stopwatch captures both clocks at start.
type Stopwatch struct {
	wall time.Time
	cpu  time.Duration
}

// StartStopwatch reads both clocks. Call it immediately before the measured call.
func StartStopwatch() Stopwatch {
	return Stopwatch{cpu: processCPUTime(), wall: time.Now()}
}

// Stop reads both clocks again and returns the differences. Call it
// immediately after the measured call returns. Negative readings (clock
// anomalies) are clamped to zero.
func (s Stopwatch) Stop() Elapsed {
	wall := time.Since(s.wall)
	cpu := processCPUTime() - s.cpu
	if cpu < 0 {
		cpu = 0
	}
	if wall < 0 {
		wall = 0
	}

	return Elapsed{Wall: wall, CPU: cpu}
}

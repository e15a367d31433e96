// SPDX-License-Identifier: MIT

package bench

import (
	"math"
	"time"

	"github.com/katalvlaran/tmmbench/kernel"
)

// Throughput returns ops per second over d.
//
// For d > 0 the result is finite and non-negative. A zero or negative d
// (a call faster than the clock resolution) never divides by zero: the result
// is +Inf when any work was done and 0 when none was.
func Throughput(ops kernel.OpCount, d time.Duration) float64 {
	if d <= 0 {
		if ops == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return float64(ops) / d.Seconds()
}

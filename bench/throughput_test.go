package bench_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tmmbench/bench"
	"github.com/katalvlaran/tmmbench/kernel"
)

func TestThroughput(t *testing.T) {
	cases := []struct {
		name string
		ops  kernel.OpCount
		d    time.Duration
		want float64
	}{
		{name: "one second", ops: 1000, d: time.Second, want: 1000},
		{name: "half second", ops: 54, d: 500 * time.Millisecond, want: 108},
		{name: "no work", ops: 0, d: time.Second, want: 0},
		{name: "zero elapsed no work", ops: 0, d: 0, want: 0},
		{name: "zero elapsed", ops: 20, d: 0, want: math.Inf(1)},
		{name: "negative elapsed", ops: 20, d: -time.Nanosecond, want: math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, bench.Throughput(tc.ops, tc.d))
		})
	}
}

// TestThroughputFiniteForPositiveElapsed holds for any positive duration.
func TestThroughputFiniteForPositiveElapsed(t *testing.T) {
	for _, d := range []time.Duration{1, time.Microsecond, time.Hour} {
		v := bench.Throughput(kernel.DenseOps(1000), d)
		require.False(t, math.IsInf(v, 0), "d=%v", d)
		require.False(t, math.IsNaN(v), "d=%v", d)
		require.GreaterOrEqual(t, v, 0.0, "d=%v", d)
	}
}

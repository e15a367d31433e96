package bench_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tmmbench/bench"
	"github.com/katalvlaran/tmmbench/kernel"
)

func TestRunTriangular(t *testing.T) {
	cfg := bench.DefaultConfig()
	cfg.Size = 3

	rep, err := bench.NewRunner(zerolog.Nop()).Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, kernel.VariantTriangular, rep.Variant)
	assert.Empty(t, rep.Backend)
	assert.Equal(t, 1, rep.Threads)
	assert.Equal(t, kernel.OpCount(20), rep.Ops)
	assert.GreaterOrEqual(t, rep.FLOPS, 0.0)
}

func TestRunAccelerated(t *testing.T) {
	cfg := bench.DefaultConfig()
	cfg.Variant = kernel.VariantAccelerated
	cfg.Size = 3
	cfg.Threads = 2

	rep, err := bench.NewRunner(zerolog.Nop()).Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, kernel.VariantAccelerated, rep.Variant)
	assert.Equal(t, kernel.BackendGonum, rep.Backend)
	assert.Equal(t, 2, rep.Threads)
	assert.Equal(t, kernel.OpCount(54), rep.Ops)
}

// TestRunLogsReport checks the structured completion event.
func TestRunLogsReport(t *testing.T) {
	var logs bytes.Buffer
	cfg := bench.DefaultConfig()
	cfg.Size = 4

	_, err := bench.NewRunner(zerolog.New(&logs).Level(zerolog.InfoLevel)).Run(cfg)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 1)
	var ev map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ev))
	assert.Equal(t, "run complete", ev["message"])
	assert.Equal(t, "triangular", ev["variant"])
	assert.Equal(t, 4.0, ev["n"])
	assert.Equal(t, float64(kernel.TriangularOps(4)), ev["ops"])
}

func TestRunInvalidConfig(t *testing.T) {
	runner := bench.NewRunner(zerolog.Nop())

	cfg := bench.DefaultConfig()
	_, err := runner.Run(cfg)
	require.ErrorIs(t, err, bench.ErrInvalidConfig)

	cfg.Size = 3
	cfg.Variant = "blocked"
	_, err = runner.Run(cfg)
	require.ErrorIs(t, err, bench.ErrInvalidConfig)

	cfg.Variant = kernel.VariantAccelerated
	cfg.Threads = 0
	_, err = runner.Run(cfg)
	require.ErrorIs(t, err, bench.ErrInvalidConfig)
}

// TestRunBackendUnavailable fails before any measurement.
func TestRunBackendUnavailable(t *testing.T) {
	cfg := bench.DefaultConfig()
	cfg.Variant = kernel.VariantAccelerated
	cfg.Size = 3
	cfg.Backend = "mkl"

	_, err := bench.NewRunner(zerolog.Nop()).Run(cfg)
	require.ErrorIs(t, err, kernel.ErrBackendUnavailable)
}

func TestSweepAccelerated(t *testing.T) {
	base := bench.DefaultConfig()
	base.Variant = kernel.VariantAccelerated

	reps, err := bench.NewRunner(zerolog.Nop()).Sweep(base, []int{2, 3}, []int{1, 2})
	require.NoError(t, err)
	require.Len(t, reps, 4)
	for idx, want := range []struct{ n, th int }{{2, 1}, {2, 2}, {3, 1}, {3, 2}} {
		assert.Equal(t, want.n, reps[idx].Size)
		assert.Equal(t, want.th, reps[idx].Threads)
		assert.Equal(t, kernel.DenseOps(want.n), reps[idx].Ops)
	}
}

// TestSweepTriangularIgnoresThreads runs once per size.
func TestSweepTriangularIgnoresThreads(t *testing.T) {
	base := bench.DefaultConfig()

	reps, err := bench.NewRunner(zerolog.Nop()).Sweep(base, []int{1, 2, 3}, []int{1, 2, 8})
	require.NoError(t, err)
	require.Len(t, reps, 3)
	for idx, n := range []int{1, 2, 3} {
		assert.Equal(t, kernel.TriangularOps(n), reps[idx].Ops)
	}
}

// TestSweepStopsAtFirstFailure keeps the reports gathered so far.
func TestSweepStopsAtFirstFailure(t *testing.T) {
	base := bench.DefaultConfig()

	reps, err := bench.NewRunner(zerolog.Nop()).Sweep(base, []int{2, 0, 3}, nil)
	require.ErrorIs(t, err, bench.ErrInvalidConfig)
	require.Len(t, reps, 1)
}

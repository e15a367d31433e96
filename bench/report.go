// SPDX-License-Identifier: MIT

package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/tmmbench/kernel"
)

// Report is the outcome of one measured multiply call.
type Report struct {
	Variant  string         // strategy name
	Backend  string         // BLAS provider, empty for the triangular kernel
	Size     int            // matrix dimension n
	Threads  int            // worker count applied during the call
	Wall     time.Duration  // wall-clock time of the call
	CPU      time.Duration  // process CPU time of the call
	Ops      kernel.OpCount // operations attributed to the call
	FLOPS    float64        // Ops per wall-clock second
	CPUFLOPS float64        // Ops per CPU second
}

// NewReport derives both throughput figures from el and ops.
func NewReport(variant, backend string, size, threads int, ops kernel.OpCount, el Elapsed) Report {
	return Report{
		Variant:  variant,
		Backend:  backend,
		Size:     size,
		Threads:  threads,
		Wall:     el.Wall,
		CPU:      el.CPU,
		Ops:      ops,
		FLOPS:    Throughput(ops, el.Wall),
		CPUFLOPS: Throughput(ops, el.CPU),
	}
}

// WriteText prints the human-readable block for r.
func (r Report) WriteText(w io.Writer) error {
	label := r.Variant
	if r.Backend != "" {
		label = fmt.Sprintf("%s (%s, %d threads)", r.Variant, r.Backend, r.Threads)
	}
	_, err := fmt.Fprintf(w,
		"TMM %s\n"+
			"Matrix size: %d\n"+
			"Computation time: %f real clock seconds\n"+
			"Computation time: %f cpu clock seconds\n"+
			"# Program Operations: %d\n"+
			"FLOPs/sec: %f\n",
		label, r.Size, r.Wall.Seconds(), r.CPU.Seconds(), uint64(r.Ops), r.FLOPS)

	return err
}

// MarshalZerologObject lets a Report be embedded into log events.
func (r Report) MarshalZerologObject(e *zerolog.Event) {
	e.Str("variant", r.Variant).
		Int("n", r.Size).
		Int("threads", r.Threads).
		Dur("wall", r.Wall).
		Dur("cpu", r.CPU).
		Uint64("ops", uint64(r.Ops)).
		Float64("flops", r.FLOPS)
	if r.Backend != "" {
		e.Str("backend", r.Backend)
	}
}

// reportJSON is the wire form of Report. Non-finite throughput becomes null.
type reportJSON struct {
	Variant  string   `json:"variant"`
	Backend  string   `json:"backend,omitempty"`
	Size     int      `json:"size"`
	Threads  int      `json:"threads"`
	WallSec  float64  `json:"wall_seconds"`
	CPUSec   float64  `json:"cpu_seconds"`
	Ops      uint64   `json:"ops"`
	FLOPS    *float64 `json:"flops"`
	CPUFLOPS *float64 `json:"cpu_flops"`
}

// MarshalJSON implements json.Marshaler.
func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(reportJSON{
		Variant:  r.Variant,
		Backend:  r.Backend,
		Size:     r.Size,
		Threads:  r.Threads,
		WallSec:  r.Wall.Seconds(),
		CPUSec:   r.CPU.Seconds(),
		Ops:      uint64(r.Ops),
		FLOPS:    finiteOrNil(r.FLOPS),
		CPUFLOPS: finiteOrNil(r.CPUFLOPS),
	})
}

// WriteJSON writes reports as an indented JSON array.
func WriteJSON(w io.Writer, reports []Report) error {
	if reports == nil {
		reports = []Report{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(reports)
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

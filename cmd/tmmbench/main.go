// Command tmmbench measures upper-triangular matrix multiplication.
//
// It runs either the naive triangular kernel or a BLAS sgemm over the same
// deterministic inputs and prints elapsed time, operation count and
// throughput. Sizes and thread counts missing from the flags are asked for on
// standard input.
//
// Usage:
//
//	tmmbench [flags]
//
// Examples:
//
//	echo 1024 | tmmbench
//	tmmbench -variant accelerated -n 2048 -threads 8
//	tmmbench -variant accelerated -sizes 256,512,1024 -thread-list 1,2,4 -json
//	go build -tags openblas ./cmd/tmmbench && tmmbench -variant accelerated -backend openblas
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/tmmbench/bench"
	"github.com/katalvlaran/tmmbench/kernel"
)

// cliConfig holds command-line options.
type cliConfig struct {
	Variant      string
	Size         int
	Threads      int
	Sizes        []int
	ThreadList   []int
	Backend      string
	Alpha        float64
	Beta         float64
	JSON         bool
	LogLevel     string
	ListBackends bool
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, resolves missing values from stdin and executes the benchmark.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.TimeOnly}).
		Level(lvl).
		With().Timestamp().Logger()

	if cfg.ListBackends {
		for _, name := range kernel.Backends() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	if err = resolveInteractive(&cfg, stdin, stdout); err != nil {
		return err
	}

	base := bench.DefaultConfig()
	base.Variant = cfg.Variant
	base.Size = cfg.Size
	base.Threads = cfg.Threads
	base.Backend = cfg.Backend
	base.Alpha = float32(cfg.Alpha)
	base.Beta = float32(cfg.Beta)

	logger.Debug().Str("variant", base.Variant).Ints("sizes", cfg.Sizes).Ints("threads", cfg.ThreadList).Msg("starting")
	reports, err := bench.NewRunner(logger).Sweep(base, cfg.Sizes, cfg.ThreadList)
	if err != nil {
		return err
	}

	if cfg.JSON {
		return bench.WriteJSON(stdout, reports)
	}
	for idx, rep := range reports {
		if idx > 0 {
			fmt.Fprintln(stdout)
		}
		if err = rep.WriteText(stdout); err != nil {
			return err
		}
	}

	return nil
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	fs := flag.NewFlagSet("tmmbench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := cliConfig{}
	var sizesStr, threadsStr string
	fs.StringVar(&cfg.Variant, "variant", kernel.VariantTriangular, "Multiplier: "+strings.Join(kernel.Variants(), " or "))
	fs.IntVar(&cfg.Size, "n", 0, "Matrix dimension (prompted on stdin when 0 and -sizes is empty)")
	fs.IntVar(&cfg.Threads, "threads", 0, "Worker threads for the accelerated variant (prompted when 0 and -thread-list is empty)")
	fs.StringVar(&sizesStr, "sizes", "", "Matrix dimensions to sweep (comma-separated)")
	fs.StringVar(&threadsStr, "thread-list", "", "Thread counts to sweep for the accelerated variant (comma-separated)")
	fs.StringVar(&cfg.Backend, "backend", kernel.DefaultBackend, "BLAS backend for the accelerated variant")
	fs.Float64Var(&cfg.Alpha, "alpha", float64(kernel.DefaultAlpha), "sgemm alpha")
	fs.Float64Var(&cfg.Beta, "beta", float64(kernel.DefaultBeta), "sgemm beta")
	fs.BoolVar(&cfg.JSON, "json", false, "Print reports as JSON")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "Log level (debug, info, warn, error, disabled)")
	fs.BoolVar(&cfg.ListBackends, "list-backends", false, "List available BLAS backends and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	var err error
	if cfg.Sizes, err = parseIntList(sizesStr); err != nil {
		return cfg, fmt.Errorf("-sizes: %w", err)
	}
	if cfg.ThreadList, err = parseIntList(threadsStr); err != nil {
		return cfg, fmt.Errorf("-thread-list: %w", err)
	}

	return cfg, nil
}

// resolveInteractive prompts for the size and thread count when the flags
// leave them unset: size first, then threads.
func resolveInteractive(cfg *cliConfig, stdin io.Reader, stdout io.Writer) error {
	p := bench.NewPrompter(stdin, stdout)
	var err error
	if cfg.Size <= 0 && len(cfg.Sizes) == 0 {
		if cfg.Size, err = p.Int(bench.PromptSize); err != nil {
			return fmt.Errorf("matrix size: %w", err)
		}
	}
	if cfg.Variant == kernel.VariantAccelerated && cfg.Threads <= 0 && len(cfg.ThreadList) == 0 {
		if cfg.Threads, err = p.Int(bench.PromptThreads); err != nil {
			return fmt.Errorf("thread count: %w", err)
		}
	}

	return nil
}

// parseIntList parses "64,128,256" into positive integers. Empty input yields nil.
func parseIntList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("%q: %w", part, bench.ErrInvalidInput)
		}
		out = append(out, v)
	}

	return out, nil
}

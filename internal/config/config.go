// Package config defines the application configuration and its resolution
// chain. Values are resolved with the priority:
//
//  1. CLI flags
//  2. Environment variables (PRIMKIT_*)
//  3. Built-in defaults
package config

import (
	"flag"
	"io"
	"time"

	apperrors "github.com/primkit/primkit/internal/errors"
)

// Operation names accepted by the --op flag.
const (
	OpFibonacci = "fib"
	OpSort      = "sort"
	OpMatMul    = "matmul"
)

// Defaults for every configurable value.
const (
	DefaultOp            = OpFibonacci
	DefaultN             = int64(30)
	DefaultAlgo          = "all"
	DefaultSize          = 64
	DefaultCount         = 10_000
	DefaultSeed          = int64(42)
	DefaultTimeout       = time.Minute
	DefaultHTTPAddr      = ":8080"
	DefaultMaxRecursiveN = int64(50)
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Op selects the primitive to run: fib, sort or matmul.
	Op string
	// N is the Fibonacci index for the fib operation.
	N int64
	// Algo selects the Fibonacci strategy: a registered name or "all".
	Algo string
	// Size is the square matrix dimension for the matmul demo.
	Size int
	// Count is the sequence length for the sort demo.
	Count int
	// Seed seeds the random input generator for the demo operations.
	Seed int64
	// Timeout bounds a single run.
	Timeout time.Duration
	// Verbose enables detailed output (memory deltas, system stats).
	Verbose bool
	// Quiet suppresses everything but the result.
	Quiet bool
	// OutputFile, when set, receives the result in addition to stdout.
	OutputFile string
	// Serve starts the HTTP host binding instead of a one-shot run.
	Serve bool
	// HTTPAddr is the listen address for serve mode.
	HTTPAddr string
	// MaxRecursiveN caps the recursive strategy at host boundaries, where
	// its exponential cost would otherwise be an easy denial of service.
	MaxRecursiveN int64
	// NoColor disables ANSI colors in CLI output.
	NoColor bool
	// ShowVersion prints the version and exits.
	ShowVersion bool
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags that were not explicitly set, and
// validates the result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: Destination for flag parse errors and usage text.
//   - availableAlgos: The registered Fibonacci strategy names.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp, a ConfigError, or nil.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	cfg := AppConfig{}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.Op, "op", DefaultOp, "operation to run: fib, sort or matmul")
	fs.Int64Var(&cfg.N, "n", DefaultN, "Fibonacci index to compute")
	fs.StringVar(&cfg.Algo, "algo", DefaultAlgo, "Fibonacci strategy to run, or \"all\" to compare")
	fs.IntVar(&cfg.Size, "size", DefaultSize, "square matrix dimension for -op matmul")
	fs.IntVar(&cfg.Count, "count", DefaultCount, "sequence length for -op sort")
	fs.Int64Var(&cfg.Seed, "seed", DefaultSeed, "random seed for demo input generation")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum run duration")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "verbose output")
	fs.BoolVar(&cfg.Quiet, "q", false, "quiet output (shorthand)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "quiet output")
	fs.StringVar(&cfg.OutputFile, "o", "", "write the result to a file (shorthand)")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the result to a file")
	fs.BoolVar(&cfg.Serve, "serve", false, "run the HTTP API server")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", DefaultHTTPAddr, "HTTP listen address for -serve")
	fs.Int64Var(&cfg.MaxRecursiveN, "max-recursive-n", DefaultMaxRecursiveN, "server-side cap on the recursive strategy's index")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable ANSI colors")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg, availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate rejects configurations the application cannot act on.
func validate(cfg AppConfig, availableAlgos []string) error {
	switch cfg.Op {
	case OpFibonacci, OpSort, OpMatMul:
	default:
		return apperrors.NewConfigError("invalid operation %q: must be one of fib, sort, matmul", cfg.Op)
	}

	if cfg.N < 0 {
		return apperrors.NewConfigError("invalid -n %d: Fibonacci index must be non-negative", cfg.N)
	}
	if cfg.Size <= 0 {
		return apperrors.NewConfigError("invalid -size %d: matrix dimension must be positive", cfg.Size)
	}
	if cfg.Count < 0 {
		return apperrors.NewConfigError("invalid -count %d: sequence length must be non-negative", cfg.Count)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("invalid -timeout %s: must be positive", cfg.Timeout)
	}
	if cfg.MaxRecursiveN < 0 {
		return apperrors.NewConfigError("invalid -max-recursive-n %d: must be non-negative", cfg.MaxRecursiveN)
	}

	if cfg.Algo != "all" {
		found := false
		for _, name := range availableAlgos {
			if name == cfg.Algo {
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewConfigError("unknown algorithm %q (available: %v, or \"all\")", cfg.Algo, availableAlgos)
		}
	}
	return nil
}

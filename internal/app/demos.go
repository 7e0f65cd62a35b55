package app

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/primkit/primkit/internal/cli"
	apperrors "github.com/primkit/primkit/internal/errors"
	"github.com/primkit/primkit/internal/format"
	"github.com/primkit/primkit/internal/matrix"
	"github.com/primkit/primkit/internal/metrics"
	"github.com/primkit/primkit/internal/quicksort"
	"github.com/primkit/primkit/internal/ui"
)

// runSortDemo sorts a seeded random sequence and reports timing. The sorted
// output is verified before the run is declared successful; the checksum
// printed in quiet mode is deterministic for a given seed and count.
func (a *Application) runSortDemo(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	rng := rand.New(rand.NewSource(a.Config.Seed))
	values := make([]float64, a.Config.Count)
	for i := range values {
		values[i] = rng.NormFloat64() * 1000
	}

	if err := ctx.Err(); err != nil {
		return cli.CLIResultPresenter{}.HandleError(err, 0, out)
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	start := time.Now()
	quicksort.Sort(values)
	duration := time.Since(start)

	if !quicksort.IsSorted(values) {
		fmt.Fprintf(a.ErrWriter, "Sort verification failed: output is not in non-descending order.\n")
		return apperrors.ExitErrorMismatch
	}

	if a.Config.Quiet {
		fmt.Fprintf(out, "%g\n", checksum(values))
		return apperrors.ExitSuccess
	}

	fmt.Fprintf(out, "%s\n", ui.Header("--- Quicksort ---"))
	fmt.Fprintf(out, "Sorted %s%d%s values in %s%s%s (seed %d).\n",
		ui.ColorInfo(), len(values), ui.ColorReset(),
		ui.ColorWarning(), format.FormatExecutionDuration(duration), ui.ColorReset(),
		a.Config.Seed)
	fmt.Fprintf(out, "Checksum: %g\n", checksum(values))

	if a.Config.Verbose {
		a.printRunStats(collector, before, out)
	}
	return apperrors.ExitSuccess
}

// runMatMulDemo multiplies two seeded random square matrices and reports
// timing. In verbose mode the identity invariant A·I = A is also checked as a
// self-test of the kernel.
func (a *Application) runMatMulDemo(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	size := a.Config.Size
	rng := rand.New(rand.NewSource(a.Config.Seed))
	left := matrix.Random(size, size, rng)
	right := matrix.Random(size, size, rng)

	if err := ctx.Err(); err != nil {
		return cli.CLIResultPresenter{}.HandleError(err, 0, out)
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	start := time.Now()
	product, err := matrix.Multiply(left, right)
	duration := time.Since(start)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}

	var flat []float64
	for _, row := range product {
		flat = append(flat, row...)
	}

	if a.Config.Quiet {
		fmt.Fprintf(out, "%g\n", checksum(flat))
		return apperrors.ExitSuccess
	}

	fmt.Fprintf(out, "%s\n", ui.Header("--- Matrix Multiplication ---"))
	fmt.Fprintf(out, "Multiplied two %s%dx%d%s matrices in %s%s%s (seed %d).\n",
		ui.ColorInfo(), size, size, ui.ColorReset(),
		ui.ColorWarning(), format.FormatExecutionDuration(duration), ui.ColorReset(),
		a.Config.Seed)
	fmt.Fprintf(out, "Checksum: %g\n", checksum(flat))

	if a.Config.Verbose {
		identity := matrix.Identity(size)
		viaIdentity, idErr := matrix.Multiply(left, identity)
		if idErr != nil || !matrix.EqualApprox(viaIdentity, left, 1e-9) {
			fmt.Fprintf(a.ErrWriter, "Identity self-test failed.\n")
			return apperrors.ExitErrorMismatch
		}
		fmt.Fprintf(out, "Identity self-test: %sOK%s\n", ui.ColorSuccess(), ui.ColorReset())
		a.printRunStats(collector, before, out)
	}
	return apperrors.ExitSuccess
}

// printRunStats reports the memory cost of the run just completed.
func (a *Application) printRunStats(collector *metrics.MemoryCollector, before metrics.MemorySnapshot, out io.Writer) {
	delta := collector.DeltaSince(before)
	after := collector.Snapshot()
	cli.DisplayMemoryStats(after.HeapAlloc, delta.TotalAlloc, delta.NumGC, out)
}

// checksum folds a sequence into a single comparable value.
func checksum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/primkit/primkit/internal/errors"
	"github.com/primkit/primkit/internal/format"
	"github.com/primkit/primkit/internal/orchestration"
	"github.com/primkit/primkit/internal/progress"
	"github.com/primkit/primkit/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner and progress bar
// display during calculations.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing calculations.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numCalculators int, out io.Writer) {
	DisplayProgress(wg, progressChan, numCalculators, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter and
// orchestration.ErrorHandler for colorized command-line output.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable displays the comparison summary table with strategy
// names, durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", ui.Header("--- Comparison Summary ---"))

	// Find the maximum widths for proper alignment.
	maxNameLen := 8     // "Strategy" header length
	maxDurationLen := 8 // "Duration" header length
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		duration := formatDurationCell(res.Duration)
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	// Print header with proper padding.
	fmt.Fprintf(out, "%sStrategy%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-8),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	// Print each result row.
	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorError(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorSuccess(), ui.ColorReset())
		}
		duration := formatDurationCell(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorPrimary(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorWarning(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// formatDurationCell formats a duration for a table cell, substituting a
// floor value for sub-microsecond measurements.
func formatDurationCell(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight returns s followed by spaces up to the given pad length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult displays the final calculation result.
func (CLIResultPresenter) PresentResult(result orchestration.CalculationResult, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		fmt.Fprintln(out, result.Result)
		return
	}
	fmt.Fprintf(out, "\nF(%s%d%s) = %s%d%s  (%s, %s)\n",
		ui.ColorInfo(), opts.N, ui.ColorReset(),
		ui.ColorBold(), result.Result, ui.ColorReset(),
		result.Name, format.FormatExecutionDuration(result.Duration))
}

// HandleError maps a calculation error to a process exit code and prints a
// diagnostic. Timeouts and cancellations are distinguished from generic and
// configuration failures.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	switch {
	case err == nil:
		return apperrors.ExitSuccess
	case apperrors.IsContextError(err):
		if duration > 0 {
			fmt.Fprintf(out, "%sOperation aborted after %s: %v%s\n",
				ui.ColorError(), format.FormatExecutionDuration(duration), err, ui.ColorReset())
		} else {
			fmt.Fprintf(out, "%sOperation aborted: %v%s\n", ui.ColorError(), err, ui.ColorReset())
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return apperrors.ExitErrorTimeout
		}
		return apperrors.ExitErrorCanceled
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
		var ce apperrors.ConfigError
		if errors.As(err, &ce) {
			return apperrors.ExitErrorConfig
		}
		return apperrors.ExitErrorGeneric
	}
}

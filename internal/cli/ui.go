package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/primkit/primkit/internal/orchestration"
	"github.com/primkit/primkit/internal/progress"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the DisplayProgress function to be decoupled from a specific
// spinner implementation, facilitating easier testing. It defines the
// essential controls: starting, stopping, and updating the status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() { rs.s.Start() }

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner is a constructor variable so tests can substitute a fake.
var newSpinner = func(options ...spinner.Option) Spinner {
	// Same interval as ProgressRefreshRate to keep redraws synchronized.
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress consumes progress updates and renders a spinner with an
// aggregated progress bar until the channel closes. It is the CLI
// implementation backing orchestration.ProgressReporter.
//
// Parameters:
//   - wg: Signaled when the display loop has finished.
//   - progressChan: Channel receiving updates from the running calculators.
//   - numCalculators: The number of concurrent calculators being tracked.
//   - out: The writer for progress output.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numCalculators int, out io.Writer) {
	defer wg.Done()

	if numCalculators <= 0 {
		orchestration.DrainChannel(progressChan)
		return
	}

	aggregator := orchestration.NewProgressAggregator(numCalculators)
	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(renderSuffix(0))
	sp.Start()
	defer sp.Stop()

	for update := range progressChan {
		avg := aggregator.Update(update)
		sp.UpdateSuffix(renderSuffix(avg))
	}
	sp.UpdateSuffix(renderSuffix(aggregator.CalculateAverage()))
}

// renderSuffix builds the spinner suffix: a progress bar plus a percentage.
func renderSuffix(avg float64) string {
	return fmt.Sprintf(" %s %.1f%%", progressBar(avg, ProgressBarWidth), avg*100)
}

// progressBar generates a string representing a textual progress bar.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
//   - length: The total character width of the progress bar.
//
// Returns:
//   - string: A string representation of the progress bar.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

package orchestration

import (
	"github.com/primkit/primkit/internal/progress"
)

// ProgressAggregator folds per-calculator progress updates into a single
// average value for consolidated display. The CLI reporter uses this to show
// one bar for multiple concurrently running strategies.
type ProgressAggregator struct {
	progresses     []float64
	numCalculators int
}

// NewProgressAggregator creates a new aggregator for the given number of
// calculators. Returns nil if numCalculators <= 0.
func NewProgressAggregator(numCalculators int) *ProgressAggregator {
	if numCalculators <= 0 {
		return nil
	}
	return &ProgressAggregator{
		progresses:     make([]float64, numCalculators),
		numCalculators: numCalculators,
	}
}

// Update records a single progress update and returns the new average across
// all tracked calculators. Updates with out-of-range indices are ignored.
func (a *ProgressAggregator) Update(update progress.Update) float64 {
	if update.CalculatorIndex >= 0 && update.CalculatorIndex < len(a.progresses) {
		a.progresses[update.CalculatorIndex] = update.Value
	}
	return a.CalculateAverage()
}

// CalculateAverage returns the current average progress without updating.
func (a *ProgressAggregator) CalculateAverage() float64 {
	var sum float64
	for _, p := range a.progresses {
		sum += p
	}
	return sum / float64(a.numCalculators)
}

// NumCalculators returns the number of calculators being tracked.
func (a *ProgressAggregator) NumCalculators() int {
	return a.numCalculators
}

// IsMultiCalculator returns true if tracking more than one calculator.
func (a *ProgressAggregator) IsMultiCalculator() bool {
	return a.numCalculators > 1
}

// DrainChannel reads all updates from the channel without processing.
// Use this when numCalculators <= 0 and updates should be discarded.
func DrainChannel(progressChan <-chan progress.Update) {
	for range progressChan {
	}
}

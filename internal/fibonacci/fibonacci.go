// Package fibonacci provides the Fibonacci evaluation strategies exposed by
// the application. Two deliberately distinct strategies are maintained: a
// naive recursive implementation kept as a benchmark baseline for the cost of
// double recursion, and a linear-time iterative implementation. Both compute
// the same mathematical function and must agree on every index in the safe
// int64 range; the orchestration layer enforces that agreement.
//
// Values are signed 64-bit integers. Indices above MaxInt64Index overflow
// silently (two's-complement wraparound); staying in range is the caller's
// responsibility, as with any fixed-width arithmetic.
package fibonacci

import (
	"context"

	apperrors "github.com/primkit/primkit/internal/errors"
	"github.com/primkit/primkit/internal/progress"
)

// Calculator is the interface implemented by every Fibonacci strategy.
type Calculator interface {
	// Name returns the strategy identifier (e.g., "recursive").
	Name() string
	// Calculate computes F(n). Progress updates are sent to progressChan
	// tagged with index; a nil channel disables reporting. The context is
	// honored on a best-effort basis: the iterative strategy checks it
	// between loop chunks, the recursive strategy on a call counter.
	Calculate(ctx context.Context, progressChan chan<- progress.Update, index int, n int64) (int64, error)
}

// validateIndex rejects negative indices before any computation starts.
// F is undefined below zero here; a negative index is an explicit validation
// failure rather than an unchecked recursion.
func validateIndex(n int64) error {
	if n < 0 {
		return apperrors.ValidationError{Field: "n", Message: "index must be non-negative"}
	}
	return nil
}

// reporter adapts a progress channel to a callback for a given calculator
// index. Sends are non-blocking: a saturated channel drops the update rather
// than stalling the calculation.
func reporter(progressChan chan<- progress.Update, index int) progress.Callback {
	if progressChan == nil {
		return progress.Nop
	}
	return func(pct float64) {
		select {
		case progressChan <- progress.Update{CalculatorIndex: index, Value: pct}:
		default:
		}
	}
}

// Recursive is the naive double-recursion strategy: F(n) = F(n-1) + F(n-2)
// with base cases F(0)=0 and F(1)=1. It runs in O(phi^n) time and O(n) stack
// depth and exists as a reference baseline; it must never be memoized or
// otherwise reshaped, since its purpose includes demonstrating the cost of
// naive recursion.
type Recursive struct{}

// Verify interface compliance.
var _ Calculator = (*Recursive)(nil)

// Name returns the strategy identifier.
func (c *Recursive) Name() string { return AlgoRecursive }

// Calculate computes F(n) by naive recursion. Cancellation is checked every
// recursionCheckInterval calls so an orchestrator timeout can stop a
// pathological run without the check dominating the recursion itself.
func (c *Recursive) Calculate(ctx context.Context, progressChan chan<- progress.Update, index int, n int64) (int64, error) {
	if err := validateIndex(n); err != nil {
		return 0, err
	}
	report := reporter(progressChan, index)
	report(0)

	w := ctxWatcher{ctx: ctx}
	result, err := fibRecursive(n, &w)
	if err != nil {
		return 0, err
	}
	report(1)
	return result, nil
}

// ctxWatcher amortizes context checks across recursive calls.
type ctxWatcher struct {
	ctx   context.Context
	calls uint64
}

// tick returns the context error once every recursionCheckInterval calls.
func (w *ctxWatcher) tick() error {
	w.calls++
	if w.calls%recursionCheckInterval == 0 {
		return w.ctx.Err()
	}
	return nil
}

// fibRecursive is the unmodified double recursion. The watcher is threaded
// through so deep runs remain cancelable.
func fibRecursive(n int64, w *ctxWatcher) (int64, error) {
	if err := w.tick(); err != nil {
		return 0, err
	}
	if n <= 1 {
		return n, nil
	}
	a, err := fibRecursive(n-1, w)
	if err != nil {
		return 0, err
	}
	b, err := fibRecursive(n-2, w)
	if err != nil {
		return 0, err
	}
	return a + b, nil
}

// Iterative is the linear-time strategy: two accumulators (a, b) initialized
// to (0, 1), advanced n-1 times. O(n) time, O(1) space.
type Iterative struct{}

var _ Calculator = (*Iterative)(nil)

// Name returns the strategy identifier.
func (c *Iterative) Name() string { return AlgoIterative }

// Calculate computes F(n) iteratively. For n <= 1 the index itself is the
// answer. Progress is reported and the context checked every
// iterativeCheckInterval iterations.
func (c *Iterative) Calculate(ctx context.Context, progressChan chan<- progress.Update, index int, n int64) (int64, error) {
	if err := validateIndex(n); err != nil {
		return 0, err
	}
	report := reporter(progressChan, index)
	report(0)

	if n <= 1 {
		report(1)
		return n, nil
	}

	var a, b int64 = 0, 1
	for i := int64(2); i <= n; i++ {
		a, b = b, a+b
		if i%iterativeCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			report(float64(i) / float64(n))
		}
	}
	report(1)
	return b, nil
}

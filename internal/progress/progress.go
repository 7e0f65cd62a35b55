// Package progress defines the types used to report calculation progress
// from calculators to the presentation layer. It sits below both the
// orchestration and CLI packages so neither depends on the other for the
// shared update type.
package progress

// Update is a single progress report emitted by a running calculator.
type Update struct {
	// CalculatorIndex identifies which of the concurrently running
	// calculators sent the update.
	CalculatorIndex int
	// Value is the fraction of work completed, from 0.0 to 1.0.
	Value float64
}

// Callback receives a progress fraction (0.0 to 1.0) from within a running
// calculation. Implementations must be cheap: calculators may invoke the
// callback from tight loops.
type Callback func(pct float64)

// Nop is a Callback that discards updates.
func Nop(float64) {}

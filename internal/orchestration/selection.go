package orchestration

import (
	"github.com/primkit/primkit/internal/fibonacci"
)

// GetCalculatorsToRun determines which strategies should be executed for the
// given algorithm selection. Returns calculators in alphabetically sorted
// order for consistent, reproducible behavior.
//
// Parameters:
//   - algo: A registered strategy name, or "all" to run every strategy.
//   - factory: The calculator factory to retrieve implementations from.
//
// Returns:
//   - []fibonacci.Calculator: The strategies to execute; nil if the name is
//     not registered.
func GetCalculatorsToRun(algo string, factory fibonacci.CalculatorFactory) []fibonacci.Calculator {
	if algo == "all" {
		return factory.GetAll()
	}
	if calc, err := factory.Get(algo); err == nil {
		return []fibonacci.Calculator{calc}
	}
	return nil
}

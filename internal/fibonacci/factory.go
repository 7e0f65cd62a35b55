package fibonacci

import (
	"sort"

	apperrors "github.com/primkit/primkit/internal/errors"
)

// CalculatorFactory provides named access to the registered strategies.
// The orchestration layer resolves the user's --algo selection through this
// interface, which also makes the set of strategies swappable in tests.
type CalculatorFactory interface {
	// Get returns the calculator registered under name.
	Get(name string) (Calculator, error)
	// List returns the registered names in sorted order.
	List() []string
	// GetAll returns all registered calculators, ordered by List().
	GetAll() []Calculator
}

// defaultFactory is a map-backed CalculatorFactory.
type defaultFactory struct {
	calculators map[string]Calculator
}

// NewDefaultFactory returns a factory with both built-in strategies
// registered. The recursive and iterative variants are registered separately
// on purpose: callers compare and benchmark them against each other, so they
// must remain independently addressable.
func NewDefaultFactory() CalculatorFactory {
	return &defaultFactory{
		calculators: map[string]Calculator{
			AlgoRecursive: &Recursive{},
			AlgoIterative: &Iterative{},
		},
	}
}

// Get returns the calculator registered under name.
func (f *defaultFactory) Get(name string) (Calculator, error) {
	calc, ok := f.calculators[name]
	if !ok {
		return nil, apperrors.NewConfigError("unknown algorithm %q (available: %v)", name, f.List())
	}
	return calc, nil
}

// List returns the registered names in sorted order for reproducible
// selection and help output.
func (f *defaultFactory) List() []string {
	names := make([]string, 0, len(f.calculators))
	for name := range f.calculators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns all registered calculators, ordered by List().
func (f *defaultFactory) GetAll() []Calculator {
	names := f.List()
	calcs := make([]Calculator, 0, len(names))
	for _, name := range names {
		calcs = append(calcs, f.calculators[name])
	}
	return calcs
}

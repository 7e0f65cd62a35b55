package fibonacci

// Strategy identifiers. These are the names the factory, the CLI --algo flag
// and the server's algo query parameter accept.
const (
	AlgoRecursive = "recursive"
	AlgoIterative = "iterative"
)

const (
	// MaxInt64Index is the largest index whose Fibonacci number fits in a
	// signed 64-bit integer: F(92) = 7540113804746346429. Above this the
	// accumulators wrap around silently; host boundaries that must not
	// return wrapped values cap requests at this index.
	MaxInt64Index = 92

	// recursionCheckInterval is the number of recursive calls between
	// context checks. F(n) takes roughly 2*F(n+1) calls, so even a modest
	// index crosses this interval many times; checking every call would
	// roughly double the cost of the baseline being measured.
	recursionCheckInterval = 1 << 20

	// iterativeCheckInterval is the number of loop iterations between
	// context checks and progress reports in the iterative strategy.
	iterativeCheckInterval = 1 << 16
)

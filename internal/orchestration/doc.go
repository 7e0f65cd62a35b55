// Package orchestration coordinates the concurrent execution of Fibonacci
// strategies and the comparison of their results. It owns the concurrency
// model (one goroutine per strategy, a shared progress channel, an errgroup
// for lifecycle) while delegating all presentation to interfaces implemented
// by the CLI layer.
//
// The comparison step is not cosmetic: the recursive and iterative strategies
// are required to agree on every input, and a disagreement is reported as a
// distinct mismatch failure rather than a generic error.
package orchestration

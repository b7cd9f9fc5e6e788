// Package engine drives a slice algorithm run to completion: a
// depth-first frontier of pending slices, popped one at a time,
// simplified, checked for a base case, and split otherwise. The loop is
// single-threaded and synchronous; the only concurrency-shaped thing
// about it is cooperative cancellation through context.Context, checked
// once per frontier pop.
//
// Engine knows nothing about pivot selection, simplification policy or
// output translation — those live in package strategy and package
// slice. Engine's Strategy interface names only the three methods the
// loop itself calls (Simplify, Split, Consumed); package strategy's
// richer Strategy type satisfies it structurally without either
// package importing the other in both directions.
package engine

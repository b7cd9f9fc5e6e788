// Package strategy implements SliceStrategy: pivot selection and
// recursion order policy layered on top of package slice's mechanics.
//
// Strategy is deliberately small: GetPivot picks a monomial, Simplify
// drives a slice's own simplification, Split turns GetPivot's choice
// into the inner/outer child pair, and Consumed is a hook called when
// the engine reaches a base case. Three families are provided:
//
//	label       - pivot is a partial exponent of the smallest-support
//	              minimal generator that still has room to shrink.
//	pivot       - pivot is a partial exponent chosen by a Selector
//	              (minimum, median, or maximum-support variable) over
//	              every eligible (generator, variable) pair.
//	independence - wraps a child strategy; when I's variables split
//	              into independent groups, it solves each group as its
//	              own sub-run and combines the results with a
//	              cartesian-product consumer instead of splitting.
//
// Every pivot construction here follows the same safety argument: take
// a minimal generator g and a variable v where decrementing g's
// exponent on v cannot land on the identity — either g[v] >= 2, or
// g[v] == 1 and g has support elsewhere. Such a pair is guaranteed to
// exist whenever the slice is not already a base case: a base case
// requires every minimal generator to be a pure power (not merely
// square-free — <xy, yz, xz> is square-free but is not the irrelevant
// ideal, since xy already divides (1,1,1)), so anything short of that
// has some generator with either an exponent >= 2 or support >= 2.
// Since I is minimized, no other generator is <= g, and decrementing a
// single coordinate can only relax a divisibility test, never newly
// satisfy one against a generator that didn't already divide g itself —
// so no generator divides the result either.
package strategy

// Package sliceengine computes structural invariants of monomial ideals —
// irreducible decomposition, Alexander dual, and Krull dimension — on top
// of the Slice Algorithm: a recursive divide-and-conquer solver operating
// on triples of monomial ideals under pivot splitting.
//
// What is the Slice Algorithm?
//
//	A slice is a 3-tuple (I, S, q) of two monomial ideals and a monomial.
//	Each slice represents part of an output stream; the pivot split
//	identity con(I,S,q) = con(I:p, S:p, qp) ⊔ con(I, S+p, q) recursively
//	partitions that stream into two disjoint smaller slices until a slice
//	hits a base case, at which point it hands its content to a Consumer.
//
// Everything is organized under subpackages:
//
//	core/      — Term (exponent vector) and Ideal (generator multiset)
//	slice/     — the Slice shape, MsmSlice, Simplifier, Consumer, Projection
//	strategy/  — pivot selection and recursion order policies
//	engine/    — the depth-first frontier loop that drives a run
//	decompose/ — irreducible decomposition, Alexander dual, Krull dimension
//
// The core is single-threaded and synchronous: a run either completes, is
// cancelled via context.Context, or fails with one of the sentinel errors
// documented per package. There is no I/O anywhere in this module; callers
// own reading ideals in and writing terms out.
package sliceengine

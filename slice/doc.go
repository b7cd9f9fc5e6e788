// Package slice implements the Slice Algorithm's central data structure:
// the triple (I, S, q) of an ideal, a subtract, and a multiply monomial,
// together with the shared normalize/prune/lower-bound machinery every
// concrete specialization (MsmSlice for irreducible decomposition) builds
// on.
//
// Slice itself carries no virtual dispatch; per DESIGN.md's reading of
// DESIGN NOTES §9, the abstract-base-class hierarchy of the original
// design is replaced by a sealed Kind table of three function-valued
// fields (BaseCase, Simplify, GetLowerBound) selected once at
// construction. Everything shape-shared — accessors, Normalize,
// PruneSubtract, ApplyLowerBound, InnerSlice, OuterSlice, the lcm cache —
// lives as ordinary methods on *Slice.
//
// This package also holds the collaborators the abstract Slice contract
// depends on but that are not part of Slice's own shape: Consumer (the
// begin/consume*/done output sink), Projection (variable-subset
// restriction used by independence splitting), and TermTranslator
// (dense exponent id <-> arbitrary-precision exponent, at the boundary
// with external I/O).
package slice

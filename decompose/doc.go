// Package decompose exposes the three structural invariants this
// module computes from a monomial ideal: irreducible decomposition
// (the reason the slice algorithm exists), the Alexander dual, and the
// Krull dimension. The latter two are supplemented features grounded
// on IrreducibleDecomFacade.h's computeAlexanderDual, which reuses the
// same slice machinery rather than introducing a second algorithm.
package decompose

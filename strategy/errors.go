package strategy

import "errors"

// ErrNoPivot indicates GetPivot was asked to choose a pivot for a slice
// that is already a base case whose every minimal generator is a single
// variable, and so has no generator eligible to split on. Callers should check
// BaseCase before calling GetPivot or Split. It also guards the case
// where every remaining candidate is already excluded by S; the
// Simplify implementations in this package collapse such a slice to a
// trivial base case before Split is ever asked to pick among an empty
// eligible pool, so a caller seeing this error for that reason has
// skipped Simplify.
var ErrNoPivot = errors.New("strategy: no eligible pivot, slice is already a base case")

// ErrUnknownOption indicates NewFromOptions saw a configuration name or
// value it does not recognize.
var ErrUnknownOption = errors.New("strategy: unknown option")

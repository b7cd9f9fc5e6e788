package engine

import "errors"

// ErrPreconditionViolated is returned when a Strategy's Split produces
// a pivot that is 1, or a multiple of an existing generator of I.
// Either would make a child identical to its parent and break
// termination; the engine treats this as fatal and aborts the run.
var ErrPreconditionViolated = errors.New("engine: strategy split violated pivot precondition")

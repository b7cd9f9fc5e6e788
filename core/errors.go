package core

import "errors"

// Sentinel errors for core Term/Ideal operations.
var (
	// ErrArityMismatch indicates a Term or Ideal operation saw operands
	// of inconsistent varCount.
	ErrArityMismatch = errors.New("core: arity mismatch")

	// ErrExponentOverflow indicates a Multiply (or an operation built on
	// it, such as Slice.InnerSlice) produced an exponent exceeding the
	// machine-word bound, or that a TermTranslator ran out of Exponent ids.
	ErrExponentOverflow = errors.New("core: exponent overflow")

	// ErrNegativeExponent indicates an exponent vector was constructed
	// or translated with a negative value, which has no representation
	// as an Exponent.
	ErrNegativeExponent = errors.New("core: negative exponent")
)

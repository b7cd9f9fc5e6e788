// Package core defines Term and Ideal, the exponent-vector arithmetic
// that the rest of this module builds on.
//
// A Term is a fixed-arity vector of non-negative machine-word exponents
// with monomial operations (Divides, LCM, GCD, Colon, ...). An Ideal is
// an unordered multiset of Term generators sharing a fixed arity, with
// mutating operations (Insert, Minimize, ColonReminimize, ...) used by the
// slice engine to keep its working ideals small.
//
// Every operation here is arity-checked: mixing Terms or Ideals of
// different arity returns ErrArityMismatch rather than producing garbage.
// Exponent arithmetic that would overflow the machine word returns
// ErrExponentOverflow instead of wrapping silently.
package core

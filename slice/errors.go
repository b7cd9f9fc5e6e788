package slice

import "errors"

// Sentinel errors for the slice package.
var (
	// ErrAlreadyBegun indicates BeginConsuming was called twice on the
	// same Consumer without an intervening DoneConsuming.
	ErrAlreadyBegun = errors.New("slice: consumer already begun")

	// ErrNotConsuming indicates Consume or DoneConsuming was called
	// outside the begin/done bracket.
	ErrNotConsuming = errors.New("slice: consume called outside begin/done bracket")

	// ErrUnknownExponent indicates TermTranslator was asked to resolve
	// an exponent id it never assigned.
	ErrUnknownExponent = errors.New("slice: unknown exponent id")

	// ErrIndexOutOfRange indicates a Projection was constructed with a
	// variable index outside the domain's arity.
	ErrIndexOutOfRange = errors.New("slice: projection index out of range")

	// ErrDuplicateIndex indicates a Projection was constructed with the
	// same domain variable listed more than once.
	ErrDuplicateIndex = errors.New("slice: duplicate projection index")

	// ErrNoCollapsePivot indicates collapsedDecompose reached a slice
	// that is neither base case nor has an eligible pivot candidate,
	// which should be unreachable given a minimized ideal.
	ErrNoCollapsePivot = errors.New("slice: no eligible pivot for trivial-base-case collapse")
)

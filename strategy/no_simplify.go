package strategy

import (
	"github.com/frobby-dev/sliceengine/core"
	"github.com/frobby-dev/sliceengine/slice"
)

// noSimplifyStrategy wraps a child Strategy and skips the call to the
// slice's own simplification entirely. It exists for diagnostics (the
// `simplify: off` factory option): correctness does not depend on
// simplification running, per spec.md §8's strategy-invariance
// property, so skipping it only changes how much work the recursion
// does before reaching each base case. It still runs the same
// exhaustion check every other Strategy's Simplify applies
// (collapseIfExhausted): without it, a slice whose every pivot is
// already excluded by S would never collapse to a trivial base case,
// and GetPivot would return ErrNoPivot on an ideal that isn't actually
// a base case.
type noSimplifyStrategy struct {
	child Strategy
}

// NewNoSimplifyStrategy returns a Strategy identical to child except
// that Simplify never invokes the slice's own simplification pass.
func NewNoSimplifyStrategy(child Strategy) Strategy {
	return noSimplifyStrategy{child: child}
}

func (noSimplifyStrategy) Simplify(s *slice.Slice) error { return collapseIfExhausted(s) }

func (st noSimplifyStrategy) GetPivot(s *slice.Slice) (core.Term, error) {
	return st.child.GetPivot(s)
}

func (st noSimplifyStrategy) Split(s *slice.Slice) (inner, outer *slice.Slice, err error) {
	return st.child.Split(s)
}

func (st noSimplifyStrategy) Consumed(s *slice.Slice) {
	st.child.Consumed(s)
}

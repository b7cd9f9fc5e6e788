package strategy

import (
	"github.com/frobby-dev/sliceengine/core"
	"github.com/frobby-dev/sliceengine/slice"
)

// labelStrategy picks a pivot from the candidate with the smallest
// generator support size, breaking ties by encounter order. It is the
// simplest strategy: no lower-bound-style bookkeeping beyond what the
// slice already does in Simplify.
type labelStrategy struct{}

// NewLabelStrategy returns a Strategy that pivots on the
// smallest-support minimal generator with room left to shrink.
func NewLabelStrategy() Strategy {
	return labelStrategy{}
}

func (labelStrategy) GetPivot(s *slice.Slice) (core.Term, error) {
	all, candidates, err := eligiblePivotCandidates(s)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 || len(candidates) == 0 {
		return nil, ErrNoPivot
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.supportSize < best.supportSize {
			best = c
		}
	}
	return pivotFromCandidate(s, best), nil
}

func (labelStrategy) Simplify(s *slice.Slice) error {
	return simplifyToFixedPointOrExhaustion(s)
}

func (st labelStrategy) Split(s *slice.Slice) (inner, outer *slice.Slice, err error) {
	p, err := st.GetPivot(s)
	if err != nil {
		return nil, nil, err
	}
	return splitOnPivot(s, p)
}

func (labelStrategy) Consumed(*slice.Slice) {}

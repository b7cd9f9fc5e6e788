package strategy

import (
	"sort"

	"github.com/frobby-dev/sliceengine/core"
	"github.com/frobby-dev/sliceengine/slice"
)

// Selector picks which eligible (generator, variable) pair a
// pivotStrategy turns into a pivot.
type Selector int

const (
	// SelectMin picks the candidate with the smallest exponent.
	SelectMin Selector = iota
	// SelectMedian picks the candidate at the median exponent.
	SelectMedian
	// SelectMaxSupport picks a candidate on the variable used by the
	// most generators, breaking ties toward the smallest exponent.
	SelectMaxSupport
)

type pivotStrategy struct {
	selector Selector
}

// NewPivotStrategy returns a Strategy that picks a pivot by the given
// Selector over every eligible (generator, variable) pair.
func NewPivotStrategy(selector Selector) Strategy {
	return pivotStrategy{selector: selector}
}

func (st pivotStrategy) GetPivot(s *slice.Slice) (core.Term, error) {
	all, candidates, err := eligiblePivotCandidates(s)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 || len(candidates) == 0 {
		return nil, ErrNoPivot
	}
	switch st.selector {
	case SelectMin:
		return pivotFromCandidate(s, minByExponent(candidates)), nil
	case SelectMedian:
		return pivotFromCandidate(s, medianByExponent(candidates)), nil
	case SelectMaxSupport:
		return pivotFromCandidate(s, maxSupportVariable(s, candidates)), nil
	default:
		return nil, ErrUnknownOption
	}
}

func minByExponent(candidates []pivotCandidate) pivotCandidate {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.exponent < best.exponent {
			best = c
		}
	}
	return best
}

func medianByExponent(candidates []pivotCandidate) pivotCandidate {
	sorted := make([]pivotCandidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].exponent < sorted[j].exponent })
	return sorted[len(sorted)/2]
}

func maxSupportVariable(s *slice.Slice, candidates []pivotCandidate) pivotCandidate {
	counts := s.Ideal().SupportCounts()
	best := candidates[0]
	for _, c := range candidates[1:] {
		if counts[c.varIndex] > counts[best.varIndex] {
			best = c
			continue
		}
		if counts[c.varIndex] == counts[best.varIndex] && c.exponent < best.exponent {
			best = c
		}
	}
	return best
}

func (pivotStrategy) Simplify(s *slice.Slice) error {
	return simplifyToFixedPointOrExhaustion(s)
}

func (st pivotStrategy) Split(s *slice.Slice) (inner, outer *slice.Slice, err error) {
	p, err := st.GetPivot(s)
	if err != nil {
		return nil, nil, err
	}
	return splitOnPivot(s, p)
}

func (pivotStrategy) Consumed(*slice.Slice) {}

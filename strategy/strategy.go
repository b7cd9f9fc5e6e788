package strategy

import (
	"github.com/frobby-dev/sliceengine/core"
	"github.com/frobby-dev/sliceengine/engine"
	"github.com/frobby-dev/sliceengine/slice"
)

// Strategy is the SliceStrategy contract: pivot selection plus the
// recursion-order policy a slice algorithm run needs beyond what a
// Slice already knows how to do to itself.
type Strategy interface {
	// GetPivot chooses a monomial p such that p is neither 1 nor a
	// multiple of any generator of s's ideal.
	GetPivot(s *slice.Slice) (core.Term, error)

	// Simplify drives s to its own simplification fixed point,
	// typically by calling s.Simplify().
	Simplify(s *slice.Slice) error

	// Split turns a pivot choice into the (inner, outer) child pair.
	// Implementations may reuse s's storage for one child.
	Split(s *slice.Slice) (inner, outer *slice.Slice, err error)

	// Consumed is called by the engine when s turns out to be a base
	// case, after content (if any) has already been emitted.
	Consumed(s *slice.Slice)
}

// pivotCandidate names a single (generator, variable) pair eligible to
// become a pivot: decrementing the generator's exponent on that
// variable by one can never produce the identity or a term divisible
// by another minimal generator.
type pivotCandidate struct {
	genIndex    int
	varIndex    int
	exponent    core.Exponent
	supportSize int
}

// collectPivotCandidates returns every (generator, variable) pair of
// s's ideal eligible to be decremented into a pivot, in a
// deterministic generator-then-variable order. A generator qualifies
// on variable v whenever e := g[v] >= 2, or when e == 1 and g has some
// other variable in its support (so decrementing v still leaves a
// non-identity term); a pure power's sole exponent of 1 is excluded,
// since decrementing it produces the identity. It is empty iff every
// minimal generator of s's ideal is a single variable or the identity; a
// pure power with exponent >= 2 still yields a candidate.
func collectPivotCandidates(s *slice.Slice) []pivotCandidate {
	gens := s.Ideal().Generators()
	var out []pivotCandidate
	for gi, g := range gens {
		support := g.SupportSize()
		for vi, e := range g {
			if e == 0 {
				continue
			}
			if e == 1 && support == 1 {
				continue
			}
			out = append(out, pivotCandidate{genIndex: gi, varIndex: vi, exponent: e, supportSize: support})
		}
	}
	return out
}

// pivotFromCandidate builds the actual pivot term: the chosen
// generator, with its exponent on varIndex decremented by one.
func pivotFromCandidate(s *slice.Slice, c pivotCandidate) core.Term {
	g := s.Ideal().Generators()[c.genIndex].Clone()
	g[c.varIndex]--
	return g
}

// coveredBySubtract reports whether p is already dominated by a
// generator of s's subtract ideal. Choosing such a p as a pivot would
// leave S unchanged (Add is a no-op once a divisor of p is already
// present), so the outer child would come back byte-for-byte identical
// to s and the same pivot would be chosen again forever.
func coveredBySubtract(s *slice.Slice, p core.Term) (bool, error) {
	for _, sg := range s.Subtract().Generators() {
		ok, err := core.Divides(sg, p)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// eligiblePivotCandidates splits collectPivotCandidates into the full
// pool and the subset not already covered by S. all is empty iff every
// minimal generator of s's ideal is a single variable or the identity (a
// genuine base case, GetPivot should never be called). eligible can be empty while all is
// not: every candidate's pivot is already excluded by an existing S
// generator, meaning s's remaining content is fully excluded even
// though its ideal still has a non-pure-power generator. Simplify
// implementations check for exactly this and collapse s to a trivial
// base case before Split would ever be asked to choose among an empty
// eligible set.
func eligiblePivotCandidates(s *slice.Slice) (all, eligible []pivotCandidate, err error) {
	all = collectPivotCandidates(s)
	for _, c := range all {
		p := pivotFromCandidate(s, c)
		covered, err := coveredBySubtract(s, p)
		if err != nil {
			return nil, nil, err
		}
		if !covered {
			eligible = append(eligible, c)
		}
	}
	return all, eligible, nil
}

// simplifyToFixedPointOrExhaustion drives s to its normal
// simplification fixed point, then applies collapseIfExhausted.
func simplifyToFixedPointOrExhaustion(s *slice.Slice) error {
	if err := s.Simplify(); err != nil {
		return err
	}
	return collapseIfExhausted(s)
}

// collapseIfExhausted checks whether every remaining pivot candidate is
// already excluded by S. If so, s's content is fully excluded
// regardless of what its ideal still looks like, so it is forced to
// the trivial base case rather than left for Split to find an empty
// eligible pool. Any Strategy whose Simplify does not call s.Simplify()
// (noSimplifyStrategy included) must still run this check itself —
// ErrNoPivot's own doc comment depends on every Simplify implementation
// collapsing an exhausted slice before GetPivot is ever asked to choose
// among an empty eligible set.
func collapseIfExhausted(s *slice.Slice) error {
	if s.IsTrivialBaseCase() || s.IsNonTrivialBaseCase() {
		return nil
	}
	all, eligible, err := eligiblePivotCandidates(s)
	if err != nil {
		return err
	}
	if len(all) > 0 && len(eligible) == 0 {
		s.ClearIdealAndSubtract()
	}
	return nil
}

// violatesPivotPrecondition reports whether p is 1 or divisible by an
// existing generator of s's ideal from the wrong side, i.e. some
// generator of I divides p.
func violatesPivotPrecondition(s *slice.Slice, p core.Term) (bool, error) {
	if p.IsIdentity() {
		return true, nil
	}
	for _, g := range s.Ideal().Generators() {
		ok, err := core.Divides(g, p)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// splitOnPivot is the shared Split implementation every pivot-based
// strategy uses once it has chosen p: clone s into outer, apply
// OuterSlice to the clone, and apply InnerSlice to s in place so s
// becomes the inner child.
func splitOnPivot(s *slice.Slice, p core.Term) (inner, outer *slice.Slice, err error) {
	violates, err := violatesPivotPrecondition(s, p)
	if err != nil {
		return nil, nil, err
	}
	if violates {
		return nil, nil, engine.ErrPreconditionViolated
	}
	outer = s.Clone()
	if err := outer.OuterSlice(p); err != nil {
		return nil, nil, err
	}
	if _, err := s.InnerSlice(p); err != nil {
		return nil, nil, err
	}
	return s, outer, nil
}

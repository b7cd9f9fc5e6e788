package slice

import "github.com/frobby-dev/sliceengine/core"

// MinType controls how strict MsmKind's GetLowerBound pass is.
// MinTypeTight is the full computation of §4.4, running removeDoubleLcm
// in the simplification fixed point; MinTypeLoose skips removeDoubleLcm
// and relies on the per-variable smallest-exponent bound alone. Since
// removeDoubleLcm never applies a bound (see its comment), both produce
// the same simplification; loose exists for diagnosing what
// removeDoubleLcm contributes.
type MinType int

const (
	MinTypeTight MinType = iota
	MinTypeLoose
)

// MsmKind is the Kind used for irreducible decomposition: at a
// non-trivial base case it emits q times lcm(I), which is q times the
// product of all variables once simplification has lowered every pure
// power to exponent 1, and its Simplify pass adds removeDoubleLcm to the
// shared fixed point.
//
// Assigned in init() rather than directly in the var declaration: the
// struct's BaseCase field transitively calls back into NewMsmSlice,
// which refers to MsmKind, and an inline initializer would form an
// initialization cycle even though the call never actually happens
// during package init.
var MsmKind Kind

// MsmKindLoose is MsmKind with removeDoubleLcm dropped from the
// simplification fixed point; see MinTypeLoose.
var MsmKindLoose Kind

func init() {
	MsmKind = Kind{
		Name:          "msm",
		BaseCase:      msmBaseCase,
		Simplify:      msmSimplify,
		GetLowerBound: msmGetLowerBound,
	}
	MsmKindLoose = Kind{
		Name:          "msm-loose",
		BaseCase:      msmBaseCase,
		Simplify:      msmSimplifyLoose,
		GetLowerBound: msmGetLowerBound,
	}
}

// NewMsmSlice builds the root MsmSlice for ideal: (ideal, <>, 1) with
// MsmKind, reporting content to consumer.
func NewMsmSlice(ideal *core.Ideal, consumer Consumer) (*Slice, error) {
	return NewRootSlice(ideal, MsmKind, consumer)
}

// NewMsmSliceWithMinType builds the root MsmSlice using the Kind
// variant named by minType.
func NewMsmSliceWithMinType(ideal *core.Ideal, consumer Consumer, minType MinType) (*Slice, error) {
	if minType == MinTypeLoose {
		return NewRootSlice(ideal, MsmKindLoose, consumer)
	}
	return NewRootSlice(ideal, MsmKind, consumer)
}

func msmBaseCase(s *Slice, _ bool) (bool, error) {
	if s.IsTrivialBaseCase() {
		return true, msmEmitTrivialBaseCase(s)
	}
	if !s.IsNonTrivialBaseCase() {
		return false, nil
	}
	// Every generator is a pure power and every variable is used, so I is
	// <x_i^{lcm_i}> and lcm(I) is its component's exponent vector.
	term, err := core.Multiply(nil, s.multiply, s.LCM())
	if err != nil {
		return false, err
	}
	if s.consumer != nil {
		if err := s.consumer.Consume(term); err != nil {
			return false, err
		}
	}
	return true, nil
}

// msmEmitTrivialBaseCase handles the case where some variable is
// absent from every minimal generator of I. A missing variable is not
// the same as an empty content: <x^2> at arity 2 is missing y, but its
// irreducible decomposition is still the single component (2,0) — the
// variable y simply carries no constraint at all, not the constraint
// "0". This projects I onto the variables it still uses, recursively
// decomposes that lower-arity sub-ideal from scratch, and lifts each
// resulting component back: zero in every variable I no longer
// constrains (q's accumulated exponent there is vestigial bookkeeping
// from whatever pivot or lower-bound pull made the variable disappear,
// not a forced constraint on the final component), and the sub-result
// plus q's own exponent in every variable I still constrains.
//
// A used set of size zero means I has no generators at all (the zero
// ideal) or only the identity (the unit ideal <1>): every variable is
// missing and there is nothing to emit, matching the arity-zero "I=<>"
// convention generalized to any arity.
func msmEmitTrivialBaseCase(s *Slice) error {
	if s.consumer == nil {
		return nil
	}
	lcm := s.LCM()
	var used []int
	for v, e := range lcm {
		if e > 0 {
			used = append(used, v)
		}
	}
	if len(used) == 0 {
		return nil
	}
	proj, err := NewProjection(used, s.varCount)
	if err != nil {
		return err
	}
	projectedIdeal, err := proj.ProjectIdeal(s.ideal)
	if err != nil {
		return err
	}
	subTerms, err := collapsedDecompose(projectedIdeal)
	if err != nil {
		return err
	}
	for _, sub := range subTerms {
		lifted, err := proj.InverseProject(sub)
		if err != nil {
			return err
		}
		for _, v := range used {
			lifted[v] += s.multiply[v]
		}
		if err := s.consumer.Consume(lifted); err != nil {
			return err
		}
	}
	return nil
}

// collapsedDecompose runs the irreducible decomposition of ideal
// (taken as its own root, multiply reset to identity) entirely within
// this package. It cannot call package engine's Run or package
// strategy's pivot selectors — both import this package, and this
// helper exists specifically to let a base case inside MsmSlice
// recurse into a sub-problem, so the dependency has to run the other
// way. The pivot rule it uses is the same eligibility condition
// strategy.collectPivotCandidates applies (an exponent of at least 2,
// or an exponent of 1 on a generator with support elsewhere); since
// every supported strategy is proven to agree on the emitted term set
// regardless of pivot order, any deterministic choice from that
// eligible set is correct here too.
func collapsedDecompose(ideal *core.Ideal) ([]core.Term, error) {
	consumer := NewRecordingConsumer()
	root, err := NewMsmSlice(ideal, consumer)
	if err != nil {
		return nil, err
	}
	if err := consumer.BeginConsuming(); err != nil {
		return nil, err
	}
	frontier := []*Slice{root}
	for len(frontier) > 0 {
		cur := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if err := cur.Simplify(); err != nil {
			_ = consumer.DoneConsuming()
			return nil, err
		}
		isBase, err := cur.BaseCase(true)
		if err != nil {
			_ = consumer.DoneConsuming()
			return nil, err
		}
		if isBase {
			continue
		}
		p, ok := chooseCollapsePivot(cur)
		if !ok {
			_ = consumer.DoneConsuming()
			return nil, ErrNoCollapsePivot
		}
		outer := cur.Clone()
		if err := outer.OuterSlice(p); err != nil {
			_ = consumer.DoneConsuming()
			return nil, err
		}
		if _, err := cur.InnerSlice(p); err != nil {
			_ = consumer.DoneConsuming()
			return nil, err
		}
		frontier = append(frontier, outer, cur)
	}
	if err := consumer.DoneConsuming(); err != nil {
		return nil, err
	}
	return consumer.Terms, nil
}

// chooseCollapsePivot picks the first eligible (generator, variable)
// pair, in generator-then-variable order: exponent >= 2, or exponent
// == 1 with the generator's support size > 1. Either condition
// guarantees decrementing that coordinate lands on neither the
// identity nor a multiple of another minimal generator (I is
// minimized, so no other generator is <= the chosen one).
func chooseCollapsePivot(s *Slice) (core.Term, bool) {
	for _, g := range s.ideal.Generators() {
		support := g.SupportSize()
		for v, e := range g {
			if e == 0 || (e == 1 && support == 1) {
				continue
			}
			p := g.Clone()
			p[v]--
			return p, true
		}
	}
	return nil, false
}

func msmSimplify(s *Slice) error {
	return runSimplifyLoop(s, removeDoubleLcm)
}

func msmSimplifyLoose(s *Slice) error {
	return runSimplifyLoop(s, nil)
}

// msmGetLowerBound computes the pure power x_v^(m-1), where m is the
// smallest exponent on v among the generators of I that use v at all.
// Every standard monomial of I that is divisible by x_v must have
// exponent < m there (else it would be a multiple of the generator
// realizing m), so x_v^(m-1) is a safe divisor to pull into q; nothing
// outside variable v is implied by this bound, since a generator's
// other coordinates say nothing about what v alone forces.
func msmGetLowerBound(s *Slice, v int) (core.Term, bool, error) {
	smallest := core.Exponent(0)
	found := false
	for _, g := range s.ideal.Generators() {
		if g[v] == 0 {
			continue
		}
		if !found || g[v] < smallest {
			smallest = g[v]
			found = true
		}
	}
	if !found {
		return nil, false, nil
	}
	bound := core.NewTerm(s.varCount)
	bound[v] = smallest - 1
	return bound, true, nil
}

// removeDoubleLcm looks for pairs of generators whose pairwise lcm
// equals lcm(I), and for each such pair and each variable where both
// generators are zero and lcm(I) is positive, applies x_v^(lcm_v - 1)
// via InnerSlice. A pair whose lcm equals lcm(I) carries lcm(I)'s
// exponent on every variable, so a variable where both are zero has
// lcm(I) zero there too: the bound is never applied and the pass always
// returns false. It runs as its own step in the simplification fixed
// point rather than inside GetLowerBound.
func removeDoubleLcm(s *Slice) (bool, error) {
	gens := s.ideal.Generators()
	if len(gens) < 2 {
		return false, nil
	}
	full := s.LCM()
	changed := false
	for i := 0; i < len(gens); i++ {
		for j := i + 1; j < len(gens); j++ {
			pairLCM, err := core.LCM(nil, gens[i], gens[j])
			if err != nil {
				return false, err
			}
			if !pairLCM.Equals(full) {
				continue
			}
			for v := 0; v < s.varCount; v++ {
				if gens[i][v] != 0 || gens[j][v] != 0 || full[v] == 0 {
					continue
				}
				bound := core.NewTerm(s.varCount)
				bound[v] = full[v] - 1
				if bound[v] == 0 {
					continue
				}
				c, err := s.InnerSlice(bound)
				if err != nil {
					return false, err
				}
				if c {
					changed = true
				}
			}
		}
	}
	return changed, nil
}

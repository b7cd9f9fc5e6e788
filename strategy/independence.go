package strategy

import (
	"context"
	"sort"

	"github.com/frobby-dev/sliceengine/core"
	"github.com/frobby-dev/sliceengine/engine"
	"github.com/frobby-dev/sliceengine/slice"
)

// independenceStrategy wraps a child Strategy. On every Simplify call
// it first lets the child simplify as usual, then checks whether I's
// variables partition into groups that never co-occur in a single
// generator's support. If they do (and S is currently empty, the only
// case this implementation handles), it solves each group as an
// independent sub-run over its own projected ideal, combines the
// per-group outputs with a cartesian-product consumer, forwards the
// combined terms to the original consumer directly, and empties s so
// the engine's next BaseCase check sees a trivial, already-handled
// slice.
//
// The Strategy contract carries no context parameter, so the
// sub-engine runs launched here use ctx (defaulting to
// context.Background unless WithContext is used), not whatever context
// the enclosing engine.Run call was given.
type independenceStrategy struct {
	child    Strategy
	consumer slice.Consumer
	ctx      context.Context
}

// IndependenceOption configures an independence strategy.
type IndependenceOption func(*independenceStrategy)

// WithContext sets the context used for the sub-engine runs an
// independence split launches.
func WithContext(ctx context.Context) IndependenceOption {
	return func(s *independenceStrategy) { s.ctx = ctx }
}

// NewIndependenceStrategy returns a Strategy that splits I into
// independent variable groups when possible, delegating to child
// otherwise. consumer is the top-level sink a detected independence
// split reports its combined output to directly.
func NewIndependenceStrategy(child Strategy, consumer slice.Consumer, opts ...IndependenceOption) Strategy {
	st := &independenceStrategy{child: child, consumer: consumer, ctx: context.Background()}
	for _, opt := range opts {
		opt(st)
	}
	return st
}

func (st *independenceStrategy) GetPivot(s *slice.Slice) (core.Term, error) {
	return st.child.GetPivot(s)
}

func (st *independenceStrategy) Split(s *slice.Slice) (inner, outer *slice.Slice, err error) {
	return st.child.Split(s)
}

func (st *independenceStrategy) Consumed(s *slice.Slice) {
	st.child.Consumed(s)
}

func (st *independenceStrategy) Simplify(s *slice.Slice) error {
	if err := st.child.Simplify(s); err != nil {
		return err
	}
	if s.IsTrivialBaseCase() || s.IsNonTrivialBaseCase() {
		return nil
	}
	if s.Subtract().Len() != 0 {
		return nil
	}
	groups := independentVariableGroups(s.Ideal())
	if len(groups) <= 1 {
		return nil
	}
	if err := st.emitIndependentGroups(s, groups); err != nil {
		return err
	}
	s.ClearIdealAndSubtract()
	return nil
}

func (st *independenceStrategy) emitIndependentGroups(s *slice.Slice, groups [][]int) error {
	groupTerms := make([][]core.Term, len(groups))
	for gi, vars := range groups {
		proj, err := slice.NewProjection(vars, s.VarCount())
		if err != nil {
			return err
		}
		// Only this group's own generators belong in its sub-ideal:
		// independentVariableGroups guarantees every generator's
		// support lies entirely within one group, so a generator from
		// a different group has zero exponent on every variable in
		// vars and would otherwise project to the identity monomial,
		// collapsing this group's ideal to the unit ideal <1>.
		own := core.NewIdeal(s.VarCount())
		for _, g := range s.Ideal().Generators() {
			if belongsToGroup(g, proj) {
				if err := own.Insert(g); err != nil {
					return err
				}
			}
		}
		projectedIdeal, err := proj.ProjectIdeal(own)
		if err != nil {
			return err
		}
		rec := slice.NewRecordingConsumer()
		subRoot, err := s.NewRootWithIdeal(projectedIdeal, rec)
		if err != nil {
			return err
		}
		if err := engine.Run(st.ctx, subRoot, st.child, rec); err != nil {
			return err
		}
		full := make([]core.Term, len(rec.Terms))
		for i, term := range rec.Terms {
			lifted, err := proj.InverseProject(term)
			if err != nil {
				return err
			}
			full[i] = lifted
		}
		groupTerms[gi] = full
	}

	combos, err := cartesianProductOfTerms(groupTerms, s.VarCount())
	if err != nil {
		return err
	}
	for _, combo := range combos {
		final, err := core.Multiply(nil, combo, s.Multiply())
		if err != nil {
			return err
		}
		if err := st.consumer.Consume(final); err != nil {
			return err
		}
	}
	return nil
}

// belongsToGroup reports whether every variable in g's support lies
// within proj's range, i.e. g is one of the generators that gave rise
// to this independent group in the first place.
func belongsToGroup(g core.Term, proj *slice.Projection) bool {
	for v, e := range g {
		if e > 0 && !proj.IsRangeOf(v) {
			return false
		}
	}
	return true
}

// cartesianProductOfTerms multiplies together one term from each list,
// for every combination. Since each list's terms live on a disjoint
// set of variables, the monomial product is exactly the union of
// supports; empty input yields the identity monomial alone.
func cartesianProductOfTerms(lists [][]core.Term, varCount int) ([]core.Term, error) {
	acc := []core.Term{core.NewTerm(varCount)}
	for _, list := range lists {
		next := make([]core.Term, 0, len(acc)*len(list))
		for _, a := range acc {
			for _, b := range list {
				m, err := core.Multiply(nil, a, b)
				if err != nil {
					return nil, err
				}
				next = append(next, m)
			}
		}
		acc = next
	}
	return acc, nil
}

// independentVariableGroups partitions id's variables by the
// "co-occurs in some generator's support" relation, via union-find. A
// single group covering every variable means I is not independently
// splittable.
func independentVariableGroups(id *core.Ideal) [][]int {
	n := id.VarCount()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for _, g := range id.Generators() {
		first := -1
		for v, e := range g {
			if e == 0 {
				continue
			}
			if first == -1 {
				first = v
			} else {
				union(first, v)
			}
		}
	}

	byRoot := map[int][]int{}
	for v := 0; v < n; v++ {
		r := find(v)
		byRoot[r] = append(byRoot[r], v)
	}
	roots := make([]int, 0, len(byRoot))
	for r := range byRoot {
		roots = append(roots, r)
	}
	sort.Ints(roots)

	groups := make([][]int, 0, len(roots))
	for _, r := range roots {
		groups = append(groups, byRoot[r])
	}
	return groups
}

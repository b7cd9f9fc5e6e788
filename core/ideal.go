package core

import "sort"

// Ideal is an unordered multiset of Term generators sharing a fixed
// arity. An Ideal is "minimized" when no generator divides another;
// operations either preserve minimization or document that they do not.
type Ideal struct {
	varCount int
	gens     []Term
}

// NewIdeal returns an empty Ideal of the given arity.
func NewIdeal(varCount int) *Ideal {
	return &Ideal{varCount: varCount}
}

// NewIdealFromTerms returns an Ideal of the given arity containing gens
// in non-minimized form. It does not copy gens; the caller should not
// retain a reference to it.
func NewIdealFromTerms(varCount int, gens []Term) (*Ideal, error) {
	for _, g := range gens {
		if g.VarCount() != varCount {
			return nil, ErrArityMismatch
		}
	}
	return &Ideal{varCount: varCount, gens: gens}, nil
}

// VarCount returns the arity shared by every generator of id.
func (id *Ideal) VarCount() int {
	return id.varCount
}

// Len returns the number of generators currently stored, minimized or
// not.
func (id *Ideal) Len() int {
	return len(id.gens)
}

// Generators returns a copy of id's generators. Callers may not mutate
// the Terms in the returned slice, since Term is backed by a shared
// underlying array here; clone before mutating.
func (id *Ideal) Generators() []Term {
	out := make([]Term, len(id.gens))
	copy(out, id.gens)
	return out
}

// Clone returns a deep copy of id.
func (id *Ideal) Clone() *Ideal {
	out := &Ideal{varCount: id.varCount, gens: make([]Term, len(id.gens))}
	for i, g := range id.gens {
		out.gens[i] = g.Clone()
	}
	return out
}

// Insert appends p to id's generators without minimizing. Returns
// ErrArityMismatch if p's arity disagrees with id's.
func (id *Ideal) Insert(p Term) error {
	if p.VarCount() != id.varCount {
		return ErrArityMismatch
	}
	id.gens = append(id.gens, p)
	return nil
}

// Add inserts p and discards every existing generator that p divides.
// Unlike Insert, Add always leaves id minimal with respect to p, though
// it does not minimize p's relationship with the rest of the ideal
// beyond that.
func (id *Ideal) Add(p Term) error {
	if p.VarCount() != id.varCount {
		return ErrArityMismatch
	}
	kept := make([]Term, 0, len(id.gens)+1)
	for _, g := range id.gens {
		divides, err := Divides(p, g)
		if err != nil {
			return err
		}
		if divides {
			continue
		}
		kept = append(kept, g)
	}
	kept = append(kept, p)
	id.gens = kept
	return nil
}

// ColonReminimize replaces every generator g by g:p, then minimizes.
// Returns true iff the colon operation changed the support of any
// minimal generator — the "non-trivial" signal Slice.InnerSlice relies
// on.
func (id *Ideal) ColonReminimize(p Term) (bool, error) {
	if p.VarCount() != id.varCount {
		return false, ErrArityMismatch
	}
	changed := false
	next := make([]Term, len(id.gens))
	for i, g := range id.gens {
		c, err := Colon(nil, g, p)
		if err != nil {
			return false, err
		}
		if !sameSupport(g, c) {
			changed = true
		}
		next[i] = c
	}
	id.gens = next
	id.Minimize()
	return changed, nil
}

// sameSupport reports whether a and b are zero on exactly the same set
// of variables. It assumes equal arity.
func sameSupport(a, b Term) bool {
	for i := range a {
		if (a[i] > 0) != (b[i] > 0) {
			return false
		}
	}
	return true
}

// Minimize removes every generator divisible by another, leaving no
// generator divisible by a distinct surviving generator. It is stable:
// among equal generators, the first in insertion order survives.
func (id *Ideal) Minimize() {
	result := make([]Term, 0, len(id.gens))
	for _, t := range id.gens {
		redundant := false
		for _, r := range result {
			if ok, _ := Divides(r, t); ok {
				redundant = true
				break
			}
		}
		if redundant {
			continue
		}
		kept := make([]Term, 0, len(result)+1)
		for _, r := range result {
			if ok, _ := Divides(t, r); ok {
				continue // t divides r; r is no longer minimal
			}
			kept = append(kept, r)
		}
		kept = append(kept, t)
		result = kept
	}
	id.gens = result
}

// RemoveStrictMultiples erases every generator g with p strictly
// dividing g. Returns true iff anything was erased.
func (id *Ideal) RemoveStrictMultiples(p Term) (bool, error) {
	if p.VarCount() != id.varCount {
		return false, ErrArityMismatch
	}
	removedAny := false
	kept := make([]Term, 0, len(id.gens))
	for _, g := range id.gens {
		sd, err := StrictlyDivides(p, g)
		if err != nil {
			return false, err
		}
		if sd {
			removedAny = true
			continue
		}
		kept = append(kept, g)
	}
	id.gens = kept
	return removedAny, nil
}

// Sort stably orders the generators lexicographically by exponent
// vector. Ideal makes no guarantee that sortedness survives any other
// mutating operation.
func (id *Ideal) Sort() {
	sort.SliceStable(id.gens, func(i, j int) bool {
		return lexLess(id.gens[i], id.gens[j])
	})
}

func lexLess(a, b Term) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// SingleDegreeSort stably sorts the generators ascending by their
// exponent on variable v.
func (id *Ideal) SingleDegreeSort(v int) {
	sort.SliceStable(id.gens, func(i, j int) bool {
		return id.gens[i][v] < id.gens[j][v]
	})
}

// LCM returns the componentwise maximum of every generator. The LCM of
// an empty Ideal is the identity monomial (the convention that makes an
// empty ideal immediately a trivial base case when varCount > 0).
func (id *Ideal) LCM() Term {
	out := NewTerm(id.varCount)
	for _, g := range id.gens {
		for i, e := range g {
			if e > out[i] {
				out[i] = e
			}
		}
	}
	return out
}

// SupportCounts returns, for each variable, the number of generators
// with positive exponent on that variable. Strategies use this to pick
// pivots by maximum-support variable.
func (id *Ideal) SupportCounts() []int {
	counts := make([]int, id.varCount)
	for _, g := range id.gens {
		for i, e := range g {
			if e > 0 {
				counts[i]++
			}
		}
	}
	return counts
}

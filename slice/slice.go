package slice

import "github.com/frobby-dev/sliceengine/core"

// Kind is the small table of kind-specific behavior a Slice is
// constructed with, standing in for the virtual methods of the
// abstract Slice hierarchy this package generalizes away. A Kind is
// chosen once, at construction, and never changes for the lifetime of
// a Slice or any of its descendants produced by splitting.
type Kind struct {
	Name string

	// BaseCase reports whether s, assumed already simplified when
	// simplified is true, is a base case, emitting content to s's
	// consumer if so. It returns true iff s is a base case (trivial
	// or non-trivial); the two are not distinguished in the return
	// value because only emission differs between them.
	BaseCase func(s *Slice, simplified bool) (bool, error)

	// Simplify drives s to a kind-specific simplification fixed
	// point. Implementations compose the shared Normalize,
	// PruneSubtract and ApplyLowerBound passes with whatever
	// additional pass the kind requires.
	Simplify func(s *Slice) error

	// GetLowerBound computes the divisor d_v, the pure power x_v^(m-1)
	// where m is the smallest exponent on v among the generators of I
	// using v. ok is false when no generator of I uses v at all, the
	// signal that s is a trivial base case.
	GetLowerBound func(s *Slice, v int) (bound core.Term, ok bool, err error)
}

// Slice is the triple (I, S, q): an ideal, a subtract ideal, and a
// multiply monomial, plus the bookkeeping (a cached lcm(I), a hint for
// where ApplyLowerBound last made progress) every concrete kind shares.
type Slice struct {
	varCount int
	ideal    *core.Ideal
	subtract *core.Ideal
	multiply core.Term

	lcm      core.Term
	lcmValid bool

	lowerBoundHint int

	kind     Kind
	consumer Consumer
}

// NewSlice builds a Slice from explicit (I, S, q). The three must share
// varCount.
func NewSlice(ideal, subtract *core.Ideal, multiply core.Term, kind Kind, consumer Consumer) (*Slice, error) {
	if ideal.VarCount() != subtract.VarCount() || ideal.VarCount() != multiply.VarCount() {
		return nil, core.ErrArityMismatch
	}
	return &Slice{
		varCount: ideal.VarCount(),
		ideal:    ideal,
		subtract: subtract,
		multiply: multiply,
		kind:     kind,
		consumer: consumer,
	}, nil
}

// NewRootSlice builds the root slice (I, <>, 1) for a fresh run over
// ideal.
func NewRootSlice(ideal *core.Ideal, kind Kind, consumer Consumer) (*Slice, error) {
	n := ideal.VarCount()
	return NewSlice(ideal, core.NewIdeal(n), core.NewTerm(n), kind, consumer)
}

// NewRootWithIdeal builds a fresh root slice sharing s's Kind but over a
// different ideal and consumer. Independence splitting uses this to
// launch a sub-run over a projected ideal without hardcoding a kind.
func (s *Slice) NewRootWithIdeal(ideal *core.Ideal, consumer Consumer) (*Slice, error) {
	return NewRootSlice(ideal, s.kind, consumer)
}

// VarCount returns the ambient arity.
func (s *Slice) VarCount() int { return s.varCount }

// Ideal returns the current I.
func (s *Slice) Ideal() *core.Ideal { return s.ideal }

// Subtract returns the current S.
func (s *Slice) Subtract() *core.Ideal { return s.subtract }

// Multiply returns the current q.
func (s *Slice) Multiply() core.Term { return s.multiply }

// Consumer returns the consumer this slice and its descendants report
// content to.
func (s *Slice) Consumer() Consumer { return s.consumer }

// KindName returns the name of the Kind this slice was built with,
// mainly for diagnostics and tests.
func (s *Slice) KindName() string { return s.kind.Name }

// LCM returns lcm(I), computed lazily and cached until the ideal
// mutates.
func (s *Slice) LCM() core.Term {
	if !s.lcmValid {
		s.lcm = s.ideal.LCM()
		s.lcmValid = true
	}
	return s.lcm
}

func (s *Slice) invalidateLCM() { s.lcmValid = false }

// Clone returns a deep, independent copy of s sharing the same kind and
// consumer. Strategies use this to let a split reuse the parent's
// storage as one child while allocating fresh storage for the other.
func (s *Slice) Clone() *Slice {
	return &Slice{
		varCount:       s.varCount,
		ideal:          s.ideal.Clone(),
		subtract:       s.subtract.Clone(),
		multiply:       s.multiply.Clone(),
		lcm:            s.lcm,
		lcmValid:       s.lcmValid,
		lowerBoundHint: s.lowerBoundHint,
		kind:           s.kind,
		consumer:       s.consumer,
	}
}

// ResetAndSetVarCount reinitializes s to the root triple (<>, <>, 1) of
// a new arity, discarding all prior content.
func (s *Slice) ResetAndSetVarCount(n int) {
	s.varCount = n
	s.ideal = core.NewIdeal(n)
	s.subtract = core.NewIdeal(n)
	s.multiply = core.NewTerm(n)
	s.lcmValid = false
	s.lowerBoundHint = 0
}

// ClearIdealAndSubtract empties I and S in place, leaving q untouched.
// A slice cleared this way is immediately a trivial base case: callers
// use it to force a slice's frontier entry to contribute no further
// content after handling its output some other way (independence
// splitting does this after emitting a cartesian-product result).
func (s *Slice) ClearIdealAndSubtract() {
	s.ideal = core.NewIdeal(s.varCount)
	s.subtract = core.NewIdeal(s.varCount)
	s.invalidateLCM()
}

// InsertIntoIdeal inserts t into I without minimizing.
func (s *Slice) InsertIntoIdeal(t core.Term) error {
	if err := s.ideal.Insert(t); err != nil {
		return err
	}
	s.invalidateLCM()
	return nil
}

// IsTrivialBaseCase reports whether some variable does not appear in
// lcm(I). Such a slice is not split further; MsmKind's BaseCase emits its
// content by decomposing I over the variables it does use. At arity zero there is no
// variable to test; the zero ideal (no generators at all) takes the
// role of the trivial case instead, since the "missing variable" test
// is vacuously false for every arity-zero ideal.
func (s *Slice) IsTrivialBaseCase() bool {
	if s.varCount == 0 {
		return s.ideal.Len() == 0
	}
	lcm := s.LCM()
	for _, e := range lcm {
		if e == 0 {
			return true
		}
	}
	return false
}

// IsNonTrivialBaseCase reports whether every minimal generator of I is
// a pure power of a single variable and not already a trivial base
// case. Square-free alone is not enough: <xy, yz, xz> has lcm x*y*z
// (square-free, full support) but is not the irrelevant ideal
// <x,y,z> — (1,1,1) already lies in it, since xy divides it. Only
// when every generator has support size 1 does I actually equal
// <x_i^1 : i in support>, the one case msmBaseCase can emit directly
// as q times the product of all variables. At arity zero, any
// non-empty ideal qualifies (there is no variable left to check).
func (s *Slice) IsNonTrivialBaseCase() bool {
	if s.IsTrivialBaseCase() {
		return false
	}
	if s.varCount == 0 {
		return true
	}
	for _, g := range s.ideal.Generators() {
		if g.SupportSize() != 1 {
			return false
		}
	}
	return true
}

// BaseCase delegates to the Kind's BaseCase function.
func (s *Slice) BaseCase(simplified bool) (bool, error) {
	return s.kind.BaseCase(s, simplified)
}

// Simplify delegates to the Kind's Simplify function.
func (s *Slice) Simplify() error {
	return s.kind.Simplify(s)
}

// GetLowerBound delegates to the Kind's GetLowerBound function.
func (s *Slice) GetLowerBound(v int) (core.Term, bool, error) {
	return s.kind.GetLowerBound(s, v)
}

// Normalize removes from S every generator divisible by a generator of
// I. Returns true iff anything was removed.
func (s *Slice) Normalize() (bool, error) {
	removedAny := false
	kept := make([]core.Term, 0, s.subtract.Len())
	for _, sg := range s.subtract.Generators() {
		divisible := false
		for _, ig := range s.ideal.Generators() {
			ok, err := core.Divides(ig, sg)
			if err != nil {
				return false, err
			}
			if ok {
				divisible = true
				break
			}
		}
		if divisible {
			removedAny = true
			continue
		}
		kept = append(kept, sg)
	}
	if removedAny {
		next, err := core.NewIdealFromTerms(s.varCount, kept)
		if err != nil {
			return false, err
		}
		s.subtract = next
	}
	return removedAny, nil
}

// PruneSubtract removes from S every generator that does not strictly
// divide lcm(I), or that is itself divisible by a generator of I.
// Returns true iff anything was removed.
func (s *Slice) PruneSubtract() (bool, error) {
	lcm := s.LCM()
	removedAny := false
	kept := make([]core.Term, 0, s.subtract.Len())
	for _, sg := range s.subtract.Generators() {
		strict, err := core.StrictlyDivides(sg, lcm)
		if err != nil {
			return false, err
		}
		inIdeal := false
		for _, ig := range s.ideal.Generators() {
			ok, err := core.Divides(ig, sg)
			if err != nil {
				return false, err
			}
			if ok {
				inIdeal = true
				break
			}
		}
		if !strict || inIdeal {
			removedAny = true
			continue
		}
		kept = append(kept, sg)
	}
	if removedAny {
		next, err := core.NewIdealFromTerms(s.varCount, kept)
		if err != nil {
			return false, err
		}
		s.subtract = next
	}
	return removedAny, nil
}

// ApplyLowerBound repeatedly asks the Kind for a per-variable divisor
// and applies it via InnerSlice, cycling variables starting from
// lowerBoundHint, until a full pass changes no generator's support or a
// trivial base case is detected. It returns true iff it applied at least
// one non-identity divisor.
func (s *Slice) ApplyLowerBound() (bool, error) {
	if s.varCount == 0 {
		return false, nil
	}
	progressed := false
	for {
		passChanged := false
		for k := 0; k < s.varCount; k++ {
			v := (s.lowerBoundHint + k) % s.varCount
			bound, ok, err := s.kind.GetLowerBound(s, v)
			if err != nil {
				return progressed, err
			}
			if !ok {
				return progressed, nil
			}
			if bound.IsIdentity() {
				continue
			}
			changed, err := s.InnerSlice(bound)
			if err != nil {
				return progressed, err
			}
			progressed = true
			if changed {
				passChanged = true
				s.lowerBoundHint = v
			}
		}
		if !passChanged {
			return progressed, nil
		}
		if s.IsTrivialBaseCase() {
			return progressed, nil
		}
	}
}

// InnerSlice replaces (I, S, q) by (I:p, S:p, qp). Returns true iff the
// colon operation changed the support of a minimal generator of I or S.
func (s *Slice) InnerSlice(p core.Term) (bool, error) {
	if p.VarCount() != s.varCount {
		return false, core.ErrArityMismatch
	}
	changedIdeal, err := s.ideal.ColonReminimize(p)
	if err != nil {
		return false, err
	}
	changedSubtract, err := s.subtract.ColonReminimize(p)
	if err != nil {
		return false, err
	}
	next, err := core.Multiply(nil, s.multiply, p)
	if err != nil {
		return false, err
	}
	s.multiply = next
	s.invalidateLCM()
	if _, err := s.Normalize(); err != nil {
		return false, err
	}
	return changedIdeal || changedSubtract, nil
}

// OuterSlice replaces S by S+<p>, leaving I and q untouched, then
// normalizes. If p is a pure power, the insertion is skipped: a pure
// power subtract generator is always redundant post-normalization
// against itself as a future I generator, so adding it would only ever
// be pruned back out.
func (s *Slice) OuterSlice(p core.Term) error {
	if p.VarCount() != s.varCount {
		return core.ErrArityMismatch
	}
	if !p.IsPurePower() {
		if err := s.subtract.Add(p); err != nil {
			return err
		}
	}
	_, err := s.Normalize()
	return err
}

package slice

import "github.com/frobby-dev/sliceengine/core"

// Projection restricts terms of a domain ring to a subset of its
// variables, renumbering them densely in the range. It is the mechanism
// independence splitting uses to run a sub-problem over a strict subset
// of the ambient variables and later lift the result back.
type Projection struct {
	domainVarCount int
	indices        []int // indices[i] is the domain variable for range variable i
	inDomainRange  []bool
}

// NewProjection builds a Projection onto the range variables named by
// indices, in the given order, out of a domain of domainVarCount
// variables. Each index must be a valid, distinct domain variable.
func NewProjection(indices []int, domainVarCount int) (*Projection, error) {
	inRange := make([]bool, domainVarCount)
	for _, idx := range indices {
		if idx < 0 || idx >= domainVarCount {
			return nil, ErrIndexOutOfRange
		}
		if inRange[idx] {
			return nil, ErrDuplicateIndex
		}
		inRange[idx] = true
	}
	cp := make([]int, len(indices))
	copy(cp, indices)
	return &Projection{domainVarCount: domainVarCount, indices: cp, inDomainRange: inRange}, nil
}

// RangeVarCount returns the arity of the projected ring.
func (p *Projection) RangeVarCount() int {
	return len(p.indices)
}

// IsRangeOf reports whether domain variable v is one of the range
// variables.
func (p *Projection) IsRangeOf(v int) bool {
	return p.inDomainRange[v]
}

// Project restricts t to the range variables, in range order.
func (p *Projection) Project(t core.Term) (core.Term, error) {
	if t.VarCount() != p.domainVarCount {
		return nil, core.ErrArityMismatch
	}
	out := core.NewTerm(len(p.indices))
	for i, idx := range p.indices {
		out[i] = t[idx]
	}
	return out, nil
}

// InverseProject lifts t from the range back into the domain, setting
// every domain variable outside the range to zero.
func (p *Projection) InverseProject(t core.Term) (core.Term, error) {
	if t.VarCount() != len(p.indices) {
		return nil, core.ErrArityMismatch
	}
	out := core.NewTerm(p.domainVarCount)
	for i, idx := range p.indices {
		out[idx] = t[i]
	}
	return out, nil
}

// ProjectIdeal projects every generator of id and minimizes the result.
func (p *Projection) ProjectIdeal(id *core.Ideal) (*core.Ideal, error) {
	gens := id.Generators()
	out := make([]core.Term, len(gens))
	for i, g := range gens {
		pg, err := p.Project(g)
		if err != nil {
			return nil, err
		}
		out[i] = pg
	}
	projected, err := core.NewIdealFromTerms(len(p.indices), out)
	if err != nil {
		return nil, err
	}
	projected.Minimize()
	return projected, nil
}

package decompose

import (
	"github.com/frobby-dev/sliceengine/core"
	"github.com/frobby-dev/sliceengine/engine"
	"github.com/frobby-dev/sliceengine/slice"
)

// DimensionOfUnitIdeal is the Krull dimension assigned by convention to
// the unit ideal <1>, which has no irreducible components.
const DimensionOfUnitIdeal = -1

// IrreducibleDecomposition returns one Term per irreducible component
// of ideal, where a Term t stands for the component generated by
// {x_i^{t_i} : t_i > 0}.
func IrreducibleDecomposition(ideal *core.Ideal, opts ...Option) ([]core.Term, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	consumer := slice.NewRecordingConsumer()
	root, err := slice.NewMsmSliceWithMinType(ideal, consumer, cfg.minType)
	if err != nil {
		return nil, err
	}
	st := cfg.buildStrategy(consumer)

	if err := engine.Run(cfg.ctx, root, st, consumer); err != nil {
		return nil, err
	}
	return consumer.Terms, nil
}

// AlexanderDual computes the Alexander dual of ideal with respect to
// point (defaulting to ideal.LCM() when point is omitted): for each
// irreducible component with exponents t, the dual carries a generator
// g with g[j] = point[j] - t[j] + 1 for every j in t's support, and 0
// elsewhere.
func AlexanderDual(ideal *core.Ideal, point ...core.Term) (*core.Ideal, error) {
	var a core.Term
	if len(point) > 0 {
		a = point[0]
	} else {
		a = ideal.LCM()
	}
	if a.VarCount() != ideal.VarCount() {
		return nil, core.ErrArityMismatch
	}

	components, err := IrreducibleDecomposition(ideal)
	if err != nil {
		return nil, err
	}

	varCount := ideal.VarCount()
	dual := core.NewIdeal(varCount)
	for _, t := range components {
		gen := core.NewTerm(varCount)
		for j := 0; j < varCount; j++ {
			if t[j] == 0 {
				continue
			}
			if t[j] > a[j] {
				return nil, ErrPointTooSmall
			}
			gen[j] = a[j] - t[j] + 1
		}
		if err := dual.Insert(gen); err != nil {
			return nil, err
		}
	}
	dual.Minimize()
	return dual, nil
}

// Dimension returns the Krull dimension of ideal: the ambient variable
// count minus the smallest support size among its irreducible
// components, or DimensionOfUnitIdeal if ideal is the unit ideal <1>.
// An ideal with no generators has the ambient variable count as its
// dimension.
func Dimension(ideal *core.Ideal, opts ...Option) (int, error) {
	if ideal.Len() == 0 {
		return ideal.VarCount(), nil
	}
	if ideal.VarCount() == 0 {
		// The only non-empty arity-zero ideal is <1>, whose decomposition
		// is the empty monomial rather than no component at all.
		return DimensionOfUnitIdeal, nil
	}
	components, err := IrreducibleDecomposition(ideal, opts...)
	if err != nil {
		return 0, err
	}
	if len(components) == 0 {
		return DimensionOfUnitIdeal, nil
	}
	minSupport := components[0].SupportSize()
	for _, t := range components[1:] {
		if s := t.SupportSize(); s < minSupport {
			minSupport = s
		}
	}
	return ideal.VarCount() - minSupport, nil
}

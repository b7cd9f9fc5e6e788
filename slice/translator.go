package slice

import (
	"math/big"

	"github.com/frobby-dev/sliceengine/core"
)

// BigTerm is a term whose exponents carry arbitrary precision, the
// representation used at the I/O boundary where a caller's exponents
// may not fit a machine word.
type BigTerm []*big.Int

// TermTranslator maps between the dense, machine-word Exponent ids the
// engine computes with and the arbitrary-precision exponent values a
// caller actually cares about. For each variable it keeps the distinct
// exponent values seen so far, in first-seen order; a value's Exponent
// id is fixed at the index it was first assigned and never moves, so
// an id handed out by an earlier AddExponent call stays valid no
// matter what is added afterward. Every variable implicitly has 0 at
// id 0.
type TermTranslator struct {
	varCount int
	values   [][]*big.Int
	index    []map[string]core.Exponent
}

// NewTermTranslator returns a translator for a ring of the given arity,
// with every variable initialized to know only the exponent 0.
func NewTermTranslator(varCount int) *TermTranslator {
	t := &TermTranslator{
		varCount: varCount,
		values:   make([][]*big.Int, varCount),
		index:    make([]map[string]core.Exponent, varCount),
	}
	for v := range t.values {
		t.values[v] = []*big.Int{big.NewInt(0)}
		t.index[v] = map[string]core.Exponent{"0": 0}
	}
	return t
}

// VarCount returns the arity of the ring t translates for.
func (t *TermTranslator) VarCount() int {
	return t.varCount
}

// AddExponent registers e as an exponent value on variable v, if not
// already known, and returns its dense Exponent id.
func (t *TermTranslator) AddExponent(v int, e *big.Int) (core.Exponent, error) {
	if e.Sign() < 0 {
		return 0, core.ErrNegativeExponent
	}
	key := e.String()
	if id, ok := t.index[v][key]; ok {
		return id, nil
	}
	list := t.values[v]
	if uint64(len(list)) > uint64(core.MaxExponent) {
		return 0, core.ErrExponentOverflow
	}
	id := core.Exponent(len(list))
	t.values[v] = append(list, e)
	t.index[v][key] = id
	return id, nil
}

// ExponentToBig resolves a dense Exponent id back to its
// arbitrary-precision value.
func (t *TermTranslator) ExponentToBig(v int, e core.Exponent) (*big.Int, error) {
	if v < 0 || v >= t.varCount || int(e) >= len(t.values[v]) {
		return nil, ErrUnknownExponent
	}
	return t.values[v][e], nil
}

// TranslateTerm converts a dense Term into a BigTerm.
func (t *TermTranslator) TranslateTerm(term core.Term) (BigTerm, error) {
	if term.VarCount() != t.varCount {
		return nil, core.ErrArityMismatch
	}
	out := make(BigTerm, len(term))
	for i, e := range term {
		v, err := t.ExponentToBig(i, e)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// BigTermSink is the downstream half of a TranslatingConsumer: it
// receives the arbitrary-precision terms a TranslatingConsumer produces.
type BigTermSink interface {
	ConsumeRing(varNames []string) error
	BeginConsuming() error
	ConsumeBig(t BigTerm) error
	DoneConsuming() error
}

// TranslatingConsumer adapts a BigTermSink into a Consumer, translating
// every dense Term through a TermTranslator on the way.
type TranslatingConsumer struct {
	translator *TermTranslator
	sink       BigTermSink
}

// NewTranslatingConsumer returns a Consumer that forwards translated
// output to sink.
func NewTranslatingConsumer(translator *TermTranslator, sink BigTermSink) *TranslatingConsumer {
	return &TranslatingConsumer{translator: translator, sink: sink}
}

func (c *TranslatingConsumer) ConsumeRing(varNames []string) error { return c.sink.ConsumeRing(varNames) }
func (c *TranslatingConsumer) BeginConsuming() error               { return c.sink.BeginConsuming() }

func (c *TranslatingConsumer) Consume(t core.Term) error {
	bt, err := c.translator.TranslateTerm(t)
	if err != nil {
		return err
	}
	return c.sink.ConsumeBig(bt)
}

func (c *TranslatingConsumer) DoneConsuming() error { return c.sink.DoneConsuming() }

// BigTermRecorder is the BigTermSink counterpart of RecordingConsumer.
type BigTermRecorder struct {
	VarNames []string
	Terms    []BigTerm
}

// NewBigTermRecorder returns an empty BigTermRecorder.
func NewBigTermRecorder() *BigTermRecorder {
	return &BigTermRecorder{}
}

func (r *BigTermRecorder) ConsumeRing(varNames []string) error {
	r.VarNames = varNames
	return nil
}

func (r *BigTermRecorder) BeginConsuming() error { return nil }

func (r *BigTermRecorder) ConsumeBig(t BigTerm) error {
	r.Terms = append(r.Terms, t)
	return nil
}

func (r *BigTermRecorder) DoneConsuming() error { return nil }

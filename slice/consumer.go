package slice

import "github.com/frobby-dev/sliceengine/core"

// Consumer receives the output stream of a slice algorithm run. Calls
// arrive bracketed: ConsumeRing at most once, then exactly one
// BeginConsuming, then zero or more Consume calls, then exactly one
// DoneConsuming. A Consumer must not retain the Term passed to Consume
// beyond the call without cloning it.
type Consumer interface {
	// ConsumeRing records the ambient variable names, if the caller
	// has any. Implementations that don't care may ignore the slice.
	ConsumeRing(varNames []string) error
	BeginConsuming() error
	Consume(t core.Term) error
	DoneConsuming() error
}

// RecordingConsumer accumulates every emitted Term in memory, in the
// order received. It is used both directly, by callers that want the
// raw output, and as the sink for an independence split's per-group
// sub-runs.
type RecordingConsumer struct {
	VarNames []string
	Terms    []core.Term
	began    bool
	done     bool
}

// NewRecordingConsumer returns an empty RecordingConsumer.
func NewRecordingConsumer() *RecordingConsumer {
	return &RecordingConsumer{}
}

func (c *RecordingConsumer) ConsumeRing(varNames []string) error {
	c.VarNames = varNames
	return nil
}

func (c *RecordingConsumer) BeginConsuming() error {
	if c.began {
		return ErrAlreadyBegun
	}
	c.began = true
	return nil
}

func (c *RecordingConsumer) Consume(t core.Term) error {
	if !c.began || c.done {
		return ErrNotConsuming
	}
	c.Terms = append(c.Terms, t.Clone())
	return nil
}

func (c *RecordingConsumer) DoneConsuming() error {
	if !c.began || c.done {
		return ErrNotConsuming
	}
	c.done = true
	return nil
}

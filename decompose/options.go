package decompose

import (
	"context"

	"github.com/frobby-dev/sliceengine/slice"
	"github.com/frobby-dev/sliceengine/strategy"
)

type config struct {
	ctx          context.Context
	split        string
	selector     strategy.Selector
	independence bool
	simplifyOff  bool
	minType      slice.MinType
}

func defaultConfig() *config {
	return &config{ctx: context.Background(), split: "label"}
}

// Option configures IrreducibleDecomposition and Dimension, both of
// which drive a slice algorithm run under the hood. AlexanderDual takes
// no options and always runs with the defaults.
type Option func(*config)

// WithContext sets the context the run is driven under. Independence
// splits launch their per-group sub-runs on this same context.
func WithContext(ctx context.Context) Option {
	return func(c *config) { c.ctx = ctx }
}

// WithLabelSplit selects the label strategy (the default).
func WithLabelSplit() Option {
	return func(c *config) { c.split = "label" }
}

// WithPivotSplit selects the pivot strategy with the given Selector.
func WithPivotSplit(selector strategy.Selector) Option {
	return func(c *config) { c.split = "pivot"; c.selector = selector }
}

// WithIndependenceSplit wraps whichever base strategy is selected in
// an independence split.
func WithIndependenceSplit() Option {
	return func(c *config) { c.independence = true }
}

// WithSimplifyOff disables simplification during the run, for
// diagnosing how much of the recursion simplification actually prunes.
// The `simplify: off` name from spec.md §6.
func WithSimplifyOff() Option {
	return func(c *config) { c.simplifyOff = true }
}

// WithMinType selects the strictness of MsmKind's lower-bound pass.
// The `min-type` name from spec.md §6.
func WithMinType(mt slice.MinType) Option {
	return func(c *config) { c.minType = mt }
}

func (c *config) buildStrategy(consumer slice.Consumer) strategy.Strategy {
	var base strategy.Strategy
	switch c.split {
	case "pivot":
		base = strategy.NewPivotStrategy(c.selector)
	default:
		base = strategy.NewLabelStrategy()
	}
	if c.simplifyOff {
		base = strategy.NewNoSimplifyStrategy(base)
	}
	if !c.independence {
		return base
	}
	return strategy.NewIndependenceStrategy(base, consumer, strategy.WithContext(c.ctx))
}

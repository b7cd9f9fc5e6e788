package strategy

import (
	"fmt"

	"github.com/frobby-dev/sliceengine/slice"
)

// Options configures NewFromOptions, naming every option spec.md §6
// assigns to the strategy factory. Split selects the base pivot policy
// ("label" or "pivot"); PivotSelect only matters when Split is "pivot"
// and names a Selector ("min", "median", "max-support"). Independence,
// when true, wraps the chosen base strategy in an independence split.
// Simplify, when set to "off", disables simplification for
// diagnostics; any other value (including the zero value) leaves it
// on. MinType is accepted and validated here for parity with spec.md's
// option table, but its effect (the strictness of MsmKind's
// lower-bound pass) lives one layer up in slice.MinType/
// decompose.Option, since a Strategy has no access to the Kind a
// caller's Slice was constructed with; see decompose.WithMinType.
type Options struct {
	Split                string
	PivotSelect          string
	Independence         bool
	IndependenceConsumer slice.Consumer
	Simplify             string
	MinType              string
}

// NewFromOptions builds a Strategy from a string-keyed configuration,
// the shape a command-line frontend would naturally hand in.
func NewFromOptions(opts Options) (Strategy, error) {
	var base Strategy
	switch opts.Split {
	case "", "label":
		base = NewLabelStrategy()
	case "pivot":
		selector, err := parseSelector(opts.PivotSelect)
		if err != nil {
			return nil, err
		}
		base = NewPivotStrategy(selector)
	default:
		return nil, fmt.Errorf("strategy: %w: split=%q", ErrUnknownOption, opts.Split)
	}

	if err := validateMinType(opts.MinType); err != nil {
		return nil, err
	}

	switch opts.Simplify {
	case "", "on":
	case "off":
		base = NewNoSimplifyStrategy(base)
	default:
		return nil, fmt.Errorf("strategy: %w: simplify=%q", ErrUnknownOption, opts.Simplify)
	}

	if !opts.Independence {
		return base, nil
	}
	if opts.IndependenceConsumer == nil {
		return nil, fmt.Errorf("strategy: %w: independence-split requires a consumer", ErrUnknownOption)
	}
	return NewIndependenceStrategy(base, opts.IndependenceConsumer), nil
}

func validateMinType(name string) error {
	switch name {
	case "", "tight", "loose":
		return nil
	default:
		return fmt.Errorf("strategy: %w: min-type=%q", ErrUnknownOption, name)
	}
}

func parseSelector(name string) (Selector, error) {
	switch name {
	case "", "min":
		return SelectMin, nil
	case "median":
		return SelectMedian, nil
	case "max-support":
		return SelectMaxSupport, nil
	default:
		return 0, fmt.Errorf("strategy: %w: pivot-select=%q", ErrUnknownOption, name)
	}
}

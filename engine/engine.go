package engine

import (
	"context"

	"github.com/frobby-dev/sliceengine/slice"
)

// Strategy is the subset of strategy.Strategy the frontier loop itself
// calls. Any strategy.Strategy value satisfies this structurally.
type Strategy interface {
	Simplify(s *slice.Slice) error
	Split(s *slice.Slice) (inner, outer *slice.Slice, err error)
	Consumed(s *slice.Slice)
}

// Run drives root to completion against strat, reporting emitted terms
// to consumer. The frontier is a LIFO stack: split pushes outer then
// inner, so inner is always explored before outer, matching a
// depth-first traversal of the pivot-split recursion tree.
//
// ctx is polled once per frontier pop; if it is done, Run stops, closes
// out consumer, and returns ctx.Err().
func Run(ctx context.Context, root *slice.Slice, strat Strategy, consumer slice.Consumer) error {
	if err := consumer.BeginConsuming(); err != nil {
		return err
	}

	frontier := []*slice.Slice{root}
	for len(frontier) > 0 {
		select {
		case <-ctx.Done():
			_ = consumer.DoneConsuming()
			return ctx.Err()
		default:
		}

		s := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if err := strat.Simplify(s); err != nil {
			_ = consumer.DoneConsuming()
			return err
		}

		isBase, err := s.BaseCase(true)
		if err != nil {
			_ = consumer.DoneConsuming()
			return err
		}
		if isBase {
			strat.Consumed(s)
			continue
		}

		inner, outer, err := strat.Split(s)
		if err != nil {
			_ = consumer.DoneConsuming()
			return err
		}
		frontier = append(frontier, outer, inner)
	}

	return consumer.DoneConsuming()
}

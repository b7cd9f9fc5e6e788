package engine_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/frobby-dev/sliceengine/core"
	"github.com/frobby-dev/sliceengine/engine"
	"github.com/frobby-dev/sliceengine/slice"
)

func mustRoot(t *testing.T, varCount int, gens []core.Term, consumer slice.Consumer) *slice.Slice {
	t.Helper()
	id := core.NewIdeal(varCount)
	for _, g := range gens {
		if err := id.Insert(g); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	root, err := slice.NewMsmSlice(id, consumer)
	if err != nil {
		t.Fatalf("new root slice: %v", err)
	}
	return root
}

// fixedPivotStrategy always splits on the same pivot, used to drive the
// engine without depending on package strategy.
type fixedPivotStrategy struct {
	pivot core.Term
}

func (fixedPivotStrategy) Simplify(s *slice.Slice) error { return s.Simplify() }

func (f fixedPivotStrategy) Split(s *slice.Slice) (inner, outer *slice.Slice, err error) {
	outer = s.Clone()
	if err := outer.OuterSlice(f.pivot); err != nil {
		return nil, nil, err
	}
	if _, err := s.InnerSlice(f.pivot); err != nil {
		return nil, nil, err
	}
	return s, outer, nil
}

func (fixedPivotStrategy) Consumed(*slice.Slice) {}

func TestRunDecomposesAndClosesConsumer(t *testing.T) {
	consumer := slice.NewRecordingConsumer()
	root := mustRoot(t, 2, []core.Term{{2, 0}, {1, 1}, {0, 2}}, consumer)
	st := fixedPivotStrategy{pivot: core.Term{1, 0}}

	if err := engine.Run(context.Background(), root, st, consumer); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(consumer.Terms) == 0 {
		t.Fatal("expected some emitted terms")
	}
}

// identityPivotStrategy stands in for a strategy whose pivot is the
// identity monomial: its Split reports ErrPreconditionViolated directly.
type identityPivotStrategy struct{}

func (identityPivotStrategy) Simplify(s *slice.Slice) error { return s.Simplify() }

func (identityPivotStrategy) Split(s *slice.Slice) (inner, outer *slice.Slice, err error) {
	return nil, nil, engine.ErrPreconditionViolated
}

func (identityPivotStrategy) Consumed(*slice.Slice) {}

func TestRunPropagatesPreconditionViolation(t *testing.T) {
	consumer := slice.NewRecordingConsumer()
	root := mustRoot(t, 2, []core.Term{{2, 0}, {1, 1}, {0, 2}}, consumer)

	err := engine.Run(context.Background(), root, identityPivotStrategy{}, consumer)
	if !errors.Is(err, engine.ErrPreconditionViolated) {
		t.Fatalf("got %v, want ErrPreconditionViolated", err)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	consumer := slice.NewRecordingConsumer()
	root := mustRoot(t, 2, []core.Term{{2, 0}, {1, 1}, {0, 2}}, consumer)
	st := fixedPivotStrategy{pivot: core.Term{1, 0}}

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	err := engine.Run(ctx, root, st, consumer)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v, want DeadlineExceeded", err)
	}
}

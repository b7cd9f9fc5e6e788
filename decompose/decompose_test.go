package decompose_test

import (
	"testing"

	"github.com/frobby-dev/sliceengine/core"
	"github.com/frobby-dev/sliceengine/decompose"
	"github.com/frobby-dev/sliceengine/slice"
	"github.com/frobby-dev/sliceengine/strategy"
	"github.com/stretchr/testify/require"
)

func mustIdeal(t *testing.T, varCount int, gens ...core.Term) *core.Ideal {
	t.Helper()
	id := core.NewIdeal(varCount)
	for _, g := range gens {
		require.NoError(t, id.Insert(g))
	}
	return id
}

func requireSameTermSet(t *testing.T, got, want []core.Term) {
	t.Helper()
	require.Len(t, got, len(want))
	remaining := append([]core.Term{}, want...)
	for _, g := range got {
		idx := -1
		for i, w := range remaining {
			if g.Equals(w) {
				idx = i
				break
			}
		}
		require.NotEqual(t, -1, idx, "unexpected term %v", g)
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
}

func TestIrreducibleDecompositionScenario1(t *testing.T) {
	// I = <x^2, xy, y^2> -> <x^2,y> cap <x,y^2>
	ideal := mustIdeal(t, 2, core.Term{2, 0}, core.Term{1, 1}, core.Term{0, 2})
	got, err := decompose.IrreducibleDecomposition(ideal)
	require.NoError(t, err)
	requireSameTermSet(t, got, []core.Term{{2, 1}, {1, 2}})
}

func TestIrreducibleDecompositionScenario2SquareFreeGenerators(t *testing.T) {
	// I = <x, y> is already a single non-trivial base case.
	ideal := mustIdeal(t, 2, core.Term{1, 0}, core.Term{0, 1})
	got, err := decompose.IrreducibleDecomposition(ideal)
	require.NoError(t, err)
	requireSameTermSet(t, got, []core.Term{{1, 1}})
}

func TestIrreducibleDecompositionScenario4MissingVariableStillDecomposes(t *testing.T) {
	// I = <x^3> at arity 2: y never appears (a trivial base case by
	// §4.3's definition), but the ideal itself is already irreducible,
	// and its own decomposition is {(3,0)} — a missing variable means
	// no constraint on y, not an empty component set.
	ideal := mustIdeal(t, 2, core.Term{3, 0})
	got, err := decompose.IrreducibleDecomposition(ideal)
	require.NoError(t, err)
	requireSameTermSet(t, got, []core.Term{{3, 0}})
}

func TestIrreducibleDecompositionScenario3TriangleEdgeIdeal(t *testing.T) {
	// I = <xy, yz, xz> -> <x,y> cap <y,z> cap <x,z>. Square-free with
	// full-support lcm, but not every generator is a pure power, so
	// this is not a non-trivial base case on its own terms: (1,1,1)
	// already lies in I since xy divides it.
	ideal := mustIdeal(t, 3, core.Term{1, 1, 0}, core.Term{0, 1, 1}, core.Term{1, 0, 1})
	got, err := decompose.IrreducibleDecomposition(ideal)
	require.NoError(t, err)
	requireSameTermSet(t, got, []core.Term{{1, 1, 0}, {0, 1, 1}, {1, 0, 1}})
}

func TestIrreducibleDecompositionOfXYIsXIntersectY(t *testing.T) {
	// I = <xy> -> <x> cap <y>, the minimal case exercising a
	// square-free, non-pure-power generator that still needs splitting.
	ideal := mustIdeal(t, 2, core.Term{1, 1})
	got, err := decompose.IrreducibleDecomposition(ideal)
	require.NoError(t, err)
	requireSameTermSet(t, got, []core.Term{{1, 0}, {0, 1}})
}

func TestIrreducibleDecompositionScenario4UnitIdealHasNoComponents(t *testing.T) {
	// I = <1> at arity n > 0: no irreducible components.
	ideal := mustIdeal(t, 2, core.Term{0, 0})
	got, err := decompose.IrreducibleDecomposition(ideal)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestIrreducibleDecompositionScenario5IndependenceSplit(t *testing.T) {
	// I = <x1x2, x3x4> over disjoint variable groups.
	ideal := mustIdeal(t, 4, core.Term{1, 1, 0, 0}, core.Term{0, 0, 1, 1})
	got, err := decompose.IrreducibleDecomposition(ideal, decompose.WithIndependenceSplit())
	require.NoError(t, err)
	requireSameTermSet(t, got, []core.Term{
		{1, 0, 1, 0}, {1, 0, 0, 1}, {0, 1, 1, 0}, {0, 1, 0, 1},
	})
}

func TestIrreducibleDecompositionScenario6ArityZero(t *testing.T) {
	unit, err := decompose.IrreducibleDecomposition(mustIdeal(t, 0, core.Term{}))
	require.NoError(t, err)
	requireSameTermSet(t, unit, []core.Term{{}})

	zero, err := decompose.IrreducibleDecomposition(core.NewIdeal(0))
	require.NoError(t, err)
	require.Empty(t, zero)
}

func TestIrreducibleDecompositionAgreesAcrossStrategies(t *testing.T) {
	ideal := mustIdeal(t, 3, core.Term{2, 1, 0}, core.Term{0, 2, 1}, core.Term{1, 0, 2})
	label, err := decompose.IrreducibleDecomposition(ideal)
	require.NoError(t, err)
	pivot, err := decompose.IrreducibleDecomposition(ideal, decompose.WithPivotSplit(strategy.SelectMedian))
	require.NoError(t, err)
	requireSameTermSet(t, pivot, label)
}

func TestAlexanderDualOfSquareOfTheMaximalIdeal(t *testing.T) {
	// I = <x^2, xy, y^2>, dual at point lcm(I)=(2,2):
	// components (2,1),(1,2) -> dual gens (2-2+1,2-1+1)=(1,2), (2-1+1,2-2+1)=(2,1)
	ideal := mustIdeal(t, 2, core.Term{2, 0}, core.Term{1, 1}, core.Term{0, 2})
	dual, err := decompose.AlexanderDual(ideal)
	require.NoError(t, err)
	requireSameTermSet(t, dual.Generators(), []core.Term{{1, 2}, {2, 1}})
}

func TestAlexanderDualRejectsAPointSmallerThanTheIdeal(t *testing.T) {
	ideal := mustIdeal(t, 2, core.Term{2, 0}, core.Term{0, 2})
	_, err := decompose.AlexanderDual(ideal, core.Term{1, 1})
	require.ErrorIs(t, err, decompose.ErrPointTooSmall)
}

func TestDimensionOfSquareFreeIdealIsVarCountMinusCodimension(t *testing.T) {
	// I = <x, y> at arity 2: single component of support size 2 -> dim 0.
	ideal := mustIdeal(t, 2, core.Term{1, 0}, core.Term{0, 1})
	dim, err := decompose.Dimension(ideal)
	require.NoError(t, err)
	require.Equal(t, 0, dim)
}

func TestDimensionOfUnitIdealIsConventionallyMinusOne(t *testing.T) {
	ideal := mustIdeal(t, 2, core.Term{0, 0})
	dim, err := decompose.Dimension(ideal)
	require.NoError(t, err)
	require.Equal(t, decompose.DimensionOfUnitIdeal, dim)
}

func TestMinTypeLooseAgreesWithTightOnTermSet(t *testing.T) {
	ideal := mustIdeal(t, 3, core.Term{2, 1, 0}, core.Term{0, 2, 1}, core.Term{1, 0, 2})
	tight, err := decompose.IrreducibleDecomposition(ideal, decompose.WithMinType(slice.MinTypeTight))
	require.NoError(t, err)
	loose, err := decompose.IrreducibleDecomposition(ideal, decompose.WithMinType(slice.MinTypeLoose))
	require.NoError(t, err)
	requireSameTermSet(t, tight, loose)
}

func TestSimplifyOffAgreesWithDefaultOnTermSet(t *testing.T) {
	ideal := mustIdeal(t, 2, core.Term{2, 0}, core.Term{1, 1}, core.Term{0, 2})
	on, err := decompose.IrreducibleDecomposition(ideal)
	require.NoError(t, err)
	off, err := decompose.IrreducibleDecomposition(ideal, decompose.WithSimplifyOff())
	require.NoError(t, err)
	requireSameTermSet(t, on, off)
}

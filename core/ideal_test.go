package core_test

import (
	"testing"

	"github.com/frobby-dev/sliceengine/core"
	"github.com/stretchr/testify/require"
)

func newIdeal(t *testing.T, varCount int, gens ...core.Term) *core.Ideal {
	t.Helper()
	id := core.NewIdeal(varCount)
	for _, g := range gens {
		require.NoError(t, id.Insert(g))
	}
	return id
}

func TestMinimizeRemovesNonMinimalGenerators(t *testing.T) {
	// x^2, xy, y^2, x^3 -- x^3 is divisible by x^2 and must be dropped.
	id := newIdeal(t, 2, core.Term{2, 0}, core.Term{1, 1}, core.Term{0, 2}, core.Term{3, 0})
	id.Minimize()
	require.ElementsMatch(t, []core.Term{{2, 0}, {1, 1}, {0, 2}}, id.Generators())
}

func TestMinimizeIsStableOnDuplicates(t *testing.T) {
	id := newIdeal(t, 1, core.Term{2}, core.Term{2}, core.Term{1})
	id.Minimize()
	require.Equal(t, []core.Term{{1}}, id.Generators())
}

func TestAddDiscardsDivisibleGenerators(t *testing.T) {
	id := newIdeal(t, 2, core.Term{2, 0}, core.Term{0, 2})
	require.NoError(t, id.Add(core.Term{1, 0}))
	require.ElementsMatch(t, []core.Term{{0, 2}, {1, 0}}, id.Generators())
}

func TestColonReminimizeReportsSupportChange(t *testing.T) {
	id := newIdeal(t, 2, core.Term{2, 1}, core.Term{0, 3})
	changed, err := id.ColonReminimize(core.Term{1, 0})
	require.NoError(t, err)
	require.False(t, changed, "x^2y:x = xy keeps support {x, y}, and y^3 is untouched")
	require.ElementsMatch(t, []core.Term{{1, 1}, {0, 3}}, id.Generators())

	changed, err = id.ColonReminimize(core.Term{0, 0})
	require.NoError(t, err)
	require.False(t, changed, "colon by the identity changes nothing")
}

func TestRemoveStrictMultiples(t *testing.T) {
	id := newIdeal(t, 1, core.Term{1}, core.Term{2}, core.Term{3})
	removed, err := id.RemoveStrictMultiples(core.Term{1})
	require.NoError(t, err)
	require.True(t, removed)
	require.ElementsMatch(t, []core.Term{{1}}, id.Generators())
}

func TestSingleDegreeSortIsStable(t *testing.T) {
	id := newIdeal(t, 2, core.Term{2, 9}, core.Term{1, 1}, core.Term{1, 0})
	id.SingleDegreeSort(0)
	got := id.Generators()
	require.Equal(t, core.Term{1, 1}, got[0])
	require.Equal(t, core.Term{1, 0}, got[1])
	require.Equal(t, core.Term{2, 9}, got[2])
}

func TestLCMOfEmptyIdealIsIdentity(t *testing.T) {
	id := core.NewIdeal(3)
	require.True(t, id.LCM().IsIdentity())
}

func TestSupportCounts(t *testing.T) {
	id := newIdeal(t, 3, core.Term{1, 0, 0}, core.Term{1, 1, 0}, core.Term{0, 0, 1})
	require.Equal(t, []int{2, 1, 1}, id.SupportCounts())
}

func TestCloneIsIndependent(t *testing.T) {
	id := newIdeal(t, 1, core.Term{1})
	clone := id.Clone()
	require.NoError(t, clone.Insert(core.Term{2}))
	require.Equal(t, 1, id.Len())
	require.Equal(t, 2, clone.Len())
}

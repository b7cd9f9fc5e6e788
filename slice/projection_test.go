package slice_test

import (
	"testing"

	"github.com/frobby-dev/sliceengine/core"
	"github.com/frobby-dev/sliceengine/slice"
	"github.com/stretchr/testify/require"
)

func TestProjectionRejectsOutOfRangeAndDuplicateIndices(t *testing.T) {
	_, err := slice.NewProjection([]int{0, 3}, 3)
	require.ErrorIs(t, err, slice.ErrIndexOutOfRange)

	_, err = slice.NewProjection([]int{1, 1}, 3)
	require.ErrorIs(t, err, slice.ErrDuplicateIndex)
}

func TestProjectionAndInverseProjectRoundTripOnRangeVariables(t *testing.T) {
	proj, err := slice.NewProjection([]int{3, 1}, 4)
	require.NoError(t, err)
	require.Equal(t, 2, proj.RangeVarCount())
	require.True(t, proj.IsRangeOf(3))
	require.True(t, proj.IsRangeOf(1))
	require.False(t, proj.IsRangeOf(0))
	require.False(t, proj.IsRangeOf(2))

	t4 := core.Term{5, 6, 7, 8}
	p, err := proj.Project(t4)
	require.NoError(t, err)
	require.Equal(t, core.Term{8, 6}, p, "range order follows the indices argument, not ascending domain order")

	back, err := proj.InverseProject(p)
	require.NoError(t, err)
	require.Equal(t, core.Term{0, 6, 0, 8}, back, "variables outside the range come back zero")
}

func TestProjectIdealProjectsAndMinimizesEveryGenerator(t *testing.T) {
	proj, err := slice.NewProjection([]int{0, 1}, 4)
	require.NoError(t, err)
	id := core.NewIdeal(4)
	require.NoError(t, id.Insert(core.Term{1, 0, 9, 9}))
	require.NoError(t, id.Insert(core.Term{2, 0, 0, 0})) // becomes non-minimal after projection

	out, err := proj.ProjectIdeal(id)
	require.NoError(t, err)
	require.Equal(t, 2, out.VarCount())
	require.Equal(t, []core.Term{{1, 0}}, out.Generators())
}

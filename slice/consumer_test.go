package slice_test

import (
	"testing"

	"github.com/frobby-dev/sliceengine/core"
	"github.com/frobby-dev/sliceengine/slice"
	"github.com/stretchr/testify/require"
)

func TestRecordingConsumerEnforcesBeginDoneBracket(t *testing.T) {
	c := slice.NewRecordingConsumer()

	require.ErrorIs(t, c.Consume(core.Term{0}), slice.ErrNotConsuming, "consume before begin")
	require.ErrorIs(t, c.DoneConsuming(), slice.ErrNotConsuming, "done before begin")

	require.NoError(t, c.BeginConsuming())
	require.ErrorIs(t, c.BeginConsuming(), slice.ErrAlreadyBegun, "begin twice")

	require.NoError(t, c.Consume(core.Term{1, 2}))
	require.NoError(t, c.DoneConsuming())

	require.ErrorIs(t, c.Consume(core.Term{3}), slice.ErrNotConsuming, "consume after done")
	require.ErrorIs(t, c.DoneConsuming(), slice.ErrNotConsuming, "done twice")

	require.Equal(t, []core.Term{{1, 2}}, c.Terms)
}

func TestRecordingConsumerTolerateEmptyOutput(t *testing.T) {
	c := slice.NewRecordingConsumer()
	require.NoError(t, c.BeginConsuming())
	require.NoError(t, c.DoneConsuming())
	require.Empty(t, c.Terms)
}

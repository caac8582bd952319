package relay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/relay/internal/proto"
	"github.com/dkeye/relay/internal/relay"
)

func TestOutboxFIFO(t *testing.T) {
	out := relay.NewOutbox(4)
	require.NoError(t, out.TrySend([]byte{1}))
	require.NoError(t, out.TrySend([]byte{2}))
	require.NoError(t, out.TrySend([]byte{3}))

	assert.Equal(t, []byte{1}, <-out.Frames())
	assert.Equal(t, []byte{2}, <-out.Frames())
	assert.Equal(t, []byte{3}, <-out.Frames())
}

func TestOutboxBackpressure(t *testing.T) {
	out := relay.NewOutbox(1)
	require.NoError(t, out.TrySend([]byte{1}))
	require.ErrorIs(t, out.TrySend([]byte{2}), relay.ErrBackpressure)

	<-out.Frames()
	require.NoError(t, out.TrySend([]byte{3}))
}

func TestOutboxClose(t *testing.T) {
	out := relay.NewOutbox(4)
	require.NoError(t, out.TrySend([]byte{1}))

	out.Close()
	out.Close() // idempotent

	require.ErrorIs(t, out.TrySend([]byte{2}), relay.ErrSessionClosed)

	// Frames enqueued before close still drain, then the channel closes.
	frame, ok := <-out.Frames()
	require.True(t, ok)
	assert.Equal(t, []byte{1}, frame)

	_, ok = <-out.Frames()
	assert.False(t, ok)
}

func TestSessionSendAfterClose(t *testing.T) {
	s := relay.NewSession(4)
	s.Outbox().Close()
	require.ErrorIs(t, s.Send(proto.AssignSessionID{SessionID: s.ID()}), relay.ErrSessionClosed)
}

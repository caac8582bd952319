package relay_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/relay/internal/proto"
	"github.com/dkeye/relay/internal/relay"
)

func TestProcessForward(t *testing.T) {
	reg := relay.NewRegistry()
	host := newRegistered(t, reg)
	member := newRegistered(t, reg)
	code := createRoom(t, reg, host)
	require.NoError(t, reg.JoinRoom(member, code))
	recvMsg(t, host)   // PlayerJoined
	recvMsg(t, member) // RoomJoined

	frame := proto.Marshal(proto.SendToPlayer{
		Forward: proto.Forward{SessionID: host.ID(), Raw: []byte("hi")},
	})
	require.NoError(t, relay.Process(reg, member, frame))

	got, ok := recvMsg(t, host).(proto.ReceiveFromPlayer)
	require.True(t, ok)
	assert.Equal(t, []byte("hi"), got.Raw)
	assert.Equal(t, member.ID(), got.SessionID, "sender id must be rewritten to the actual sender")
}

func TestProcessForwardSpoofedSender(t *testing.T) {
	reg := relay.NewRegistry()
	host := newRegistered(t, reg)
	member := newRegistered(t, reg)
	code := createRoom(t, reg, host)
	require.NoError(t, reg.JoinRoom(member, code))
	recvMsg(t, host)
	recvMsg(t, member)

	// The target field addresses the host; whatever the wire said, the
	// receiver sees the sender's real id after the rewrite.
	fwd := proto.Forward{SessionID: host.ID(), Raw: []byte("x")}
	require.NoError(t, reg.ForwardToPlayer(member, fwd))

	got, ok := recvMsg(t, host).(proto.ReceiveFromPlayer)
	require.True(t, ok)
	assert.Equal(t, member.ID(), got.SessionID)
}

func TestProcessForwardNotInRoom(t *testing.T) {
	reg := relay.NewRegistry()
	loner := newRegistered(t, reg)

	frame := proto.Marshal(proto.SendToPlayer{
		Forward: proto.Forward{SessionID: uuid.New(), Raw: []byte("hi")},
	})
	require.ErrorIs(t, relay.Process(reg, loner, frame), relay.ErrNotInRoom)
}

func TestProcessForwardReceiverNotInRoom(t *testing.T) {
	reg := relay.NewRegistry()
	host := newRegistered(t, reg)
	outsider := newRegistered(t, reg)
	createRoom(t, reg, host)

	// outsider is a valid session but not a member of host's room.
	frame := proto.Marshal(proto.SendToPlayer{
		Forward: proto.Forward{SessionID: outsider.ID(), Raw: []byte("hi")},
	})
	require.ErrorIs(t, relay.Process(reg, host, frame), relay.ErrReceiverNotInRoom)
	recvNothing(t, outsider)
}

func TestProcessForwardReceiverGone(t *testing.T) {
	reg := relay.NewRegistry()
	host := newRegistered(t, reg)
	member := newRegistered(t, reg)
	code := createRoom(t, reg, host)
	require.NoError(t, reg.JoinRoom(member, code))
	recvMsg(t, host)
	recvMsg(t, member)

	memberID := member.ID()
	require.NoError(t, reg.RemoveSession(memberID))

	err := reg.ForwardToPlayer(host, proto.Forward{SessionID: memberID, Raw: []byte("hi")})
	require.ErrorIs(t, err, relay.ErrReceiverNotInRoom)
}

func TestProcessCreateAndJoin(t *testing.T) {
	reg := relay.NewRegistry()
	host := newRegistered(t, reg)
	member := newRegistered(t, reg)

	require.NoError(t, relay.Process(reg, host, proto.Marshal(proto.CreateRoom{})))
	created, ok := recvMsg(t, host).(proto.RoomCreated)
	require.True(t, ok)

	require.NoError(t, relay.Process(reg, member, proto.Marshal(proto.JoinRoom{Code: created.Code})))
	joined, ok := recvMsg(t, member).(proto.RoomJoined)
	require.True(t, ok)
	assert.Equal(t, host.ID(), joined.HostID)
}

func TestProcessDecodeError(t *testing.T) {
	reg := relay.NewRegistry()
	s := newRegistered(t, reg)

	err := relay.Process(reg, s, []byte{0x7f})
	var bad *proto.BadMessageCodeError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, byte(0x7f), bad.Code)

	err = relay.Process(reg, s, nil)
	var tooSmall *proto.BufferTooSmallError
	require.ErrorAs(t, err, &tooSmall)

	// A decode failure applies no side effects.
	assert.Empty(t, reg.RoomCodes())
	recvNothing(t, s)
}

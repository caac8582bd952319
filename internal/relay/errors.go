package relay

import "errors"

var (
	// ErrInvalidOperation rejects create/join from a session already in a room.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrNotInRoom rejects a forward from a session with no room.
	ErrNotInRoom = errors.New("not in room")
	// ErrReceiverNotInRoom means the target id is not a member of the
	// sender's room, or was removed before the forward resolved it.
	ErrReceiverNotInRoom = errors.New("receiver not in room")
	ErrRoomNotFound      = errors.New("room not found")
	ErrSessionNotFound   = errors.New("session not found")

	// ErrSessionClosed means the session's outbox was closed; the peer is gone.
	ErrSessionClosed = errors.New("session closed")
	// ErrBackpressure means the session's outbox is full.
	ErrBackpressure = errors.New("backpressure")
)

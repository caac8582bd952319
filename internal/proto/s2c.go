package proto

import "github.com/google/uuid"

// Server->client tag bytes, 1-based.
const (
	tagReceiveFromPlayer byte = 1
	tagAssignSessionID   byte = 2
	tagRoomCreated       byte = 3
	tagRoomJoined        byte = 4
	tagPlayerJoined      byte = 5
)

// ServerMessage is the closed set of messages the relay may send.
type ServerMessage interface {
	Message
	isServerMessage()
}

// ReceiveFromPlayer delivers a forwarded payload; Forward.SessionID is the
// actual sender, rewritten by the relay.
type ReceiveFromPlayer struct {
	Forward
}

// AssignSessionID is sent once, immediately after the connection is accepted.
type AssignSessionID struct {
	SessionID uuid.UUID
}

type RoomCreated struct {
	Code Code
}

// RoomJoined confirms a join to the joining client.
type RoomJoined struct {
	HostID uuid.UUID
}

// PlayerJoined notifies the host that a new member entered its room.
type PlayerJoined struct {
	PlayerID uuid.UUID
}

func (ReceiveFromPlayer) isServerMessage() {}
func (AssignSessionID) isServerMessage()   {}
func (RoomCreated) isServerMessage()       {}
func (RoomJoined) isServerMessage()        {}
func (PlayerJoined) isServerMessage()      {}

func (m ReceiveFromPlayer) EncodedSize() int { return 1 + m.Forward.EncodedSize() }
func (AssignSessionID) EncodedSize() int     { return 1 + uuidLen }
func (RoomCreated) EncodedSize() int         { return 1 + CodeSize }
func (RoomJoined) EncodedSize() int          { return 1 + uuidLen }
func (PlayerJoined) EncodedSize() int        { return 1 + uuidLen }

func (m ReceiveFromPlayer) Encode(dst []byte) (int, error) {
	if len(dst) < m.EncodedSize() {
		return 0, &InsufficientCapacityError{Required: m.EncodedSize(), Remaining: len(dst)}
	}
	dst[0] = tagReceiveFromPlayer
	n, err := m.Forward.encode(dst[1:])
	return 1 + n, err
}

func (m AssignSessionID) Encode(dst []byte) (int, error) {
	return encodeTaggedUUID(dst, tagAssignSessionID, m.SessionID)
}

func (m RoomCreated) Encode(dst []byte) (int, error) {
	if len(dst) < m.EncodedSize() {
		return 0, &InsufficientCapacityError{Required: m.EncodedSize(), Remaining: len(dst)}
	}
	dst[0] = tagRoomCreated
	n := copy(dst[1:], m.Code[:])
	return 1 + n, nil
}

func (m RoomJoined) Encode(dst []byte) (int, error) {
	return encodeTaggedUUID(dst, tagRoomJoined, m.HostID)
}

func (m PlayerJoined) Encode(dst []byte) (int, error) {
	return encodeTaggedUUID(dst, tagPlayerJoined, m.PlayerID)
}

func encodeTaggedUUID(dst []byte, tag byte, id uuid.UUID) (int, error) {
	const required = 1 + uuidLen
	if len(dst) < required {
		return 0, &InsufficientCapacityError{Required: required, Remaining: len(dst)}
	}
	dst[0] = tag
	n := copy(dst[1:], id[:])
	return 1 + n, nil
}

// DecodeServer decodes one server frame. The relay never decodes its own
// output in production; this exists for clients and round-trip tests.
func DecodeServer(buf []byte) (ServerMessage, error) {
	if len(buf) < 1 {
		return nil, &BufferTooSmallError{Min: 1, Remaining: len(buf)}
	}
	switch buf[0] {
	case tagReceiveFromPlayer:
		fwd, err := decodeForward(buf[1:])
		if err != nil {
			return nil, err
		}
		return ReceiveFromPlayer{Forward: fwd}, nil
	case tagAssignSessionID:
		id, err := decodeUUID(buf[1:])
		if err != nil {
			return nil, err
		}
		return AssignSessionID{SessionID: id}, nil
	case tagRoomCreated:
		const min = 1 + CodeSize
		if len(buf) < min {
			return nil, &BufferTooSmallError{Min: min, Remaining: len(buf)}
		}
		var c Code
		copy(c[:], buf[1:1+CodeSize])
		return RoomCreated{Code: c}, nil
	case tagRoomJoined:
		id, err := decodeUUID(buf[1:])
		if err != nil {
			return nil, err
		}
		return RoomJoined{HostID: id}, nil
	case tagPlayerJoined:
		id, err := decodeUUID(buf[1:])
		if err != nil {
			return nil, err
		}
		return PlayerJoined{PlayerID: id}, nil
	default:
		return nil, &BadMessageCodeError{Code: buf[0]}
	}
}

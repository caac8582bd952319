package proto

// Client->server tag bytes, 1-based.
const (
	tagSendToPlayer byte = 1
	tagCreateRoom   byte = 2
	tagJoinRoom     byte = 3
)

// ClientMessage is the closed set of messages a client may send.
type ClientMessage interface {
	Message
	isClientMessage()
}

// SendToPlayer asks the relay to forward Raw to the member identified by
// Forward.SessionID in the sender's room.
type SendToPlayer struct {
	Forward
}

type CreateRoom struct{}

type JoinRoom struct {
	Code Code
}

func (SendToPlayer) isClientMessage() {}
func (CreateRoom) isClientMessage()   {}
func (JoinRoom) isClientMessage()     {}

func (m SendToPlayer) EncodedSize() int { return 1 + m.Forward.EncodedSize() }
func (CreateRoom) EncodedSize() int     { return 1 }
func (JoinRoom) EncodedSize() int       { return 1 + CodeSize }

func (m SendToPlayer) Encode(dst []byte) (int, error) {
	if len(dst) < m.EncodedSize() {
		return 0, &InsufficientCapacityError{Required: m.EncodedSize(), Remaining: len(dst)}
	}
	dst[0] = tagSendToPlayer
	n, err := m.Forward.encode(dst[1:])
	return 1 + n, err
}

func (m CreateRoom) Encode(dst []byte) (int, error) {
	if len(dst) < 1 {
		return 0, &InsufficientCapacityError{Required: 1, Remaining: len(dst)}
	}
	dst[0] = tagCreateRoom
	return 1, nil
}

func (m JoinRoom) Encode(dst []byte) (int, error) {
	if len(dst) < m.EncodedSize() {
		return 0, &InsufficientCapacityError{Required: m.EncodedSize(), Remaining: len(dst)}
	}
	dst[0] = tagJoinRoom
	n := copy(dst[1:], m.Code[:])
	return 1 + n, nil
}

// DecodeClient decodes one client frame. An unknown tag yields
// *BadMessageCodeError; a truncated frame yields *BufferTooSmallError.
func DecodeClient(buf []byte) (ClientMessage, error) {
	if len(buf) < 1 {
		return nil, &BufferTooSmallError{Min: 1, Remaining: len(buf)}
	}
	switch buf[0] {
	case tagSendToPlayer:
		fwd, err := decodeForward(buf[1:])
		if err != nil {
			return nil, err
		}
		return SendToPlayer{Forward: fwd}, nil
	case tagCreateRoom:
		return CreateRoom{}, nil
	case tagJoinRoom:
		const min = 1 + CodeSize
		if len(buf) < min {
			return nil, &BufferTooSmallError{Min: min, Remaining: len(buf)}
		}
		var c Code
		copy(c[:], buf[1:1+CodeSize])
		return JoinRoom{Code: c}, nil
	default:
		return nil, &BadMessageCodeError{Code: buf[0]}
	}
}

package proto

import "github.com/google/uuid"

const uuidLen = 16

// Forward is the routed-payload sub-message shared by SendToPlayer and
// ReceiveFromPlayer: a session id followed by the raw application bytes.
// Client-bound the id names the target; server-bound it names the sender
// (the relay rewrites it before forwarding).
type Forward struct {
	SessionID uuid.UUID
	Raw       []byte
}

func (f Forward) EncodedSize() int {
	return uuidLen + len(f.Raw)
}

func (f Forward) encode(dst []byte) (int, error) {
	required := f.EncodedSize()
	if len(dst) < required {
		return 0, &InsufficientCapacityError{Required: required, Remaining: len(dst)}
	}
	n := copy(dst, f.SessionID[:])
	n += copy(dst[n:], f.Raw)
	return n, nil
}

func decodeForward(buf []byte) (Forward, error) {
	const min = uuidLen + 1
	if len(buf) < min {
		return Forward{}, &BufferTooSmallError{Min: min, Remaining: len(buf)}
	}
	var f Forward
	copy(f.SessionID[:], buf[:uuidLen])
	f.Raw = buf[uuidLen:]
	return f, nil
}

func decodeUUID(buf []byte) (uuid.UUID, error) {
	if len(buf) < uuidLen {
		return uuid.UUID{}, &BufferTooSmallError{Min: uuidLen, Remaining: len(buf)}
	}
	var id uuid.UUID
	copy(id[:], buf[:uuidLen])
	return id, nil
}

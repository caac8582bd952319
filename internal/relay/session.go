// Package relay holds the session/room registry and the message router.
// The registry owns every Session and Room; the session<->room relations are
// ids resolved back through the registry, so either side may disappear
// concurrently and resolution simply fails instead of dangling.
package relay

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dkeye/relay/internal/proto"
)

// Session is one connected client: a server-assigned id, the outbound frame
// queue, and an optional non-owning reference to its current room.
type Session struct {
	id  uuid.UUID
	out *Outbox

	mu   sync.RWMutex
	room *proto.Code
}

func NewSession(outboxCapacity int) *Session {
	return &Session{
		id:  uuid.New(),
		out: NewOutbox(outboxCapacity),
	}
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Outbox() *Outbox { return s.out }

// Send encodes and enqueues one frame, fire-and-forget.
func (s *Session) Send(m proto.ServerMessage) error {
	return s.out.TrySend(proto.Marshal(m))
}

// RoomCode returns the code of the room this session believes it is in.
// The room must still be resolved through the registry; it may already be gone.
func (s *Session) RoomCode() (proto.Code, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.room == nil {
		return proto.Code{}, false
	}
	return *s.room, true
}

func (s *Session) setRoom(code proto.Code) {
	s.mu.Lock()
	s.room = &code
	s.mu.Unlock()
}

func (s *Session) clearRoom() {
	s.mu.Lock()
	s.room = nil
	s.mu.Unlock()
}

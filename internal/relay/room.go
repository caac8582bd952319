package relay

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dkeye/relay/internal/proto"
)

// Room groups sessions under a short code. Members are held as ids, not
// session pointers; the registry resolves them. The host is always a member.
type Room struct {
	code   proto.Code
	hostID uuid.UUID

	mu      sync.RWMutex
	members map[uuid.UUID]struct{}
}

func newRoom(code proto.Code, hostID uuid.UUID) *Room {
	return &Room{
		code:    code,
		hostID:  hostID,
		members: map[uuid.UUID]struct{}{hostID: {}},
	}
}

func (r *Room) Code() proto.Code { return r.code }

func (r *Room) HostID() uuid.UUID { return r.hostID }

func (r *Room) HasMember(id uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.members[id]
	return ok
}

func (r *Room) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

func (r *Room) MemberIDs() []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]uuid.UUID, 0, len(r.members))
	for id := range r.members {
		out = append(out, id)
	}
	return out
}

func (r *Room) addMember(id uuid.UUID) {
	r.mu.Lock()
	r.members[id] = struct{}{}
	r.mu.Unlock()
}

func (r *Room) removeMember(id uuid.UUID) {
	r.mu.Lock()
	delete(r.members, id)
	r.mu.Unlock()
}

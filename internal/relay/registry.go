package relay

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/relay/internal/proto"
)

// Registry is the sole owner of all sessions and rooms. Everything else holds
// ids and resolves them here.
//
// Lock discipline: the registry mutex guards both maps; sessions and rooms
// have their own mutexes for their mutable fields. Entity locks are never
// held while acquiring another entity's lock, and room teardown on host
// removal happens under the registry write lock so no observer ever sees a
// room whose host is gone.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	rooms    map[proto.Code]*Room
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		rooms:    make(map[proto.Code]*Room),
	}
}

// AddSession notifies the session of its assigned id, then stores it. If the
// notification cannot be enqueued the registration fails and nothing is kept.
func (r *Registry) AddSession(s *Session) error {
	if err := s.Send(proto.AssignSessionID{SessionID: s.ID()}); err != nil {
		return fmt.Errorf("assign session id: %w", err)
	}

	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()

	log.Info().Str("module", "relay.registry").Str("sid", s.ID().String()).Msg("session joined")
	return nil
}

// RemoveSession drops the session from the registry. If it hosts a room the
// room goes first, unconditionally; a plain member just leaves its room.
// Concurrent disconnect paths may both call this; the loser gets
// ErrSessionNotFound and should treat it as a benign race.
func (r *Registry) RemoveSession(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	if code, ok := s.RoomCode(); ok {
		if room, ok := r.rooms[code]; ok {
			if room.HostID() == id {
				delete(r.rooms, code)
				log.Info().Str("module", "relay.registry").Str("room", code.String()).Msg("room removed")
			} else {
				room.removeMember(id)
			}
		}
		s.clearRoom()
	}

	delete(r.sessions, id)
	log.Info().Str("module", "relay.registry").Str("sid", id.String()).Msg("session left")
	return nil
}

func (r *Registry) Session(id uuid.UUID) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *Registry) Room(code proto.Code) (*Room, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[code]
	return room, ok
}

// roomOf resolves s's room reference. A reference whose room no longer exists
// means the relation is gone: the stale reference is cleared and the session
// is reported as not being in a room.
func (r *Registry) roomOf(s *Session) (*Room, bool) {
	code, ok := s.RoomCode()
	if !ok {
		return nil, false
	}
	r.mu.RLock()
	room, ok := r.rooms[code]
	r.mu.RUnlock()
	if !ok {
		s.clearRoom()
		return nil, false
	}
	return room, true
}

// CreateRoom makes host the sole member and host of a fresh room and notifies
// it with RoomCreated. On notify failure nothing stays registered.
func (r *Registry) CreateRoom(host *Session) error {
	if _, ok := r.roomOf(host); ok {
		return ErrInvalidOperation
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	code := proto.NewCode()
	for {
		if _, taken := r.rooms[code]; !taken {
			break
		}
		log.Warn().Str("module", "relay.registry").Str("room", code.String()).Msg("room code collision, regenerating")
		code = proto.NewCode()
	}

	if err := host.Send(proto.RoomCreated{Code: code}); err != nil {
		return fmt.Errorf("notify room created: %w", err)
	}

	host.setRoom(code)
	r.rooms[code] = newRoom(code, host.ID())

	log.Info().Str("module", "relay.registry").Str("room", code.String()).Str("sid", host.ID().String()).Msg("room created")
	return nil
}

// JoinRoom adds s to the room with the given code, notifies the host with
// PlayerJoined and confirms to s with RoomJoined. A session already in a room
// cannot join another one.
func (r *Registry) JoinRoom(s *Session, code proto.Code) error {
	if _, ok := r.roomOf(s); ok {
		return ErrInvalidOperation
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[code]
	if !ok {
		return ErrRoomNotFound
	}

	// A live room always has a live host: host removal and room removal are
	// one step under the registry write lock.
	host, ok := r.sessions[room.HostID()]
	if !ok {
		return ErrRoomNotFound
	}

	room.addMember(s.ID())
	if err := host.Send(proto.PlayerJoined{PlayerID: s.ID()}); err != nil {
		// Host is on its way out; the join itself still stands.
		log.Warn().Err(err).Str("module", "relay.registry").Str("room", code.String()).Msg("host unreachable on join")
	}

	s.setRoom(code)
	if err := s.Send(proto.RoomJoined{HostID: host.ID()}); err != nil {
		return fmt.Errorf("notify room joined: %w", err)
	}

	log.Info().Str("module", "relay.registry").Str("sid", s.ID().String()).Str("room", code.String()).Msg("session joined room")
	return nil
}

// ForwardToPlayer rewrites the embedded session id to the actual sender and
// enqueues the payload on the target, which must share the sender's room.
func (r *Registry) ForwardToPlayer(sender *Session, fwd proto.Forward) error {
	room, ok := r.roomOf(sender)
	if !ok {
		return ErrNotInRoom
	}

	target := fwd.SessionID
	if !room.HasMember(target) {
		return ErrReceiverNotInRoom
	}

	r.mu.RLock()
	receiver, ok := r.sessions[target]
	r.mu.RUnlock()
	if !ok {
		return ErrReceiverNotInRoom
	}

	fwd.SessionID = sender.ID()
	if err := receiver.Send(proto.ReceiveFromPlayer{Forward: fwd}); err != nil {
		return fmt.Errorf("forward to %s: %w", target, err)
	}

	log.Debug().Str("module", "relay.registry").
		Str("from", sender.ID().String()).
		Str("to", target.String()).
		Int("bytes", len(fwd.Raw)).
		Msg("payload forwarded")
	return nil
}

// SessionIDs is a diagnostics snapshot of every live session id.
func (r *Registry) SessionIDs() []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]uuid.UUID, 0, len(r.sessions))
	for id := range r.sessions {
		out = append(out, id)
	}
	return out
}

// RoomCodes is a diagnostics snapshot of every live room code.
func (r *Registry) RoomCodes() []proto.Code {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]proto.Code, 0, len(r.rooms))
	for code := range r.rooms {
		out = append(out, code)
	}
	return out
}

package relay

import (
	"fmt"

	"github.com/dkeye/relay/internal/proto"
)

// Process decodes one inbound frame from sender and applies it against the
// registry. Errors are per-message: the caller logs them and keeps the
// connection open. A decode failure never applies side effects.
func Process(reg *Registry, sender *Session, frame []byte) error {
	msg, err := proto.DecodeClient(frame)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	switch m := msg.(type) {
	case proto.SendToPlayer:
		return reg.ForwardToPlayer(sender, m.Forward)
	case proto.CreateRoom:
		return reg.CreateRoom(sender)
	case proto.JoinRoom:
		return reg.JoinRoom(sender, m.Code)
	}

	// ClientMessage is sealed; DecodeClient returns nothing else.
	return fmt.Errorf("unhandled message %T", msg)
}

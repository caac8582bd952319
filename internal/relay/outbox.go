package relay

import "sync"

// Outbox is a session's outbound frame queue. The relay enqueues encoded
// frames with TrySend; the connection's write pump is the single consumer of
// Frames. Closing is idempotent and flips every later TrySend to
// ErrSessionClosed.
type Outbox struct {
	mu     sync.RWMutex
	closed bool
	frames chan []byte
}

func NewOutbox(capacity int) *Outbox {
	return &Outbox{frames: make(chan []byte, capacity)}
}

// Frames is consumed by exactly one reader; delivery order is enqueue order.
func (o *Outbox) Frames() <-chan []byte {
	return o.frames
}

func (o *Outbox) TrySend(frame []byte) error {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.closed {
		return ErrSessionClosed
	}
	select {
	case o.frames <- frame:
		return nil
	default:
		return ErrBackpressure
	}
}

func (o *Outbox) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.closed = true
	close(o.frames)
}

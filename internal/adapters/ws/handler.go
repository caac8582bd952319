// Package ws upgrades connections and runs the per-connection pumps: one
// goroutine reading and routing inbound frames, one draining the session's
// outbox to the socket.
package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/relay/internal/relay"
)

const writeTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	Registry   *relay.Registry
	ReadLimit  int64
	SendBuffer int
}

func (h *Handler) Handle(ctx context.Context, c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "ws").Msg("upgrade")
		return
	}
	if h.ReadLimit > 0 {
		conn.SetReadLimit(h.ReadLimit)
	}

	buf := h.SendBuffer
	if buf <= 0 {
		buf = 64
	}
	sess := relay.NewSession(buf)
	if err := h.Registry.AddSession(sess); err != nil {
		log.Error().Err(err).Str("module", "ws").Msg("add session")
		_ = conn.Close()
		return
	}
	log.Info().Str("module", "ws").Str("sid", sess.ID().String()).Msg("connected")

	ctx, cancel := context.WithCancel(ctx)
	go h.writePump(ctx, conn, sess)
	go h.readPump(ctx, cancel, conn, sess)
}

func (h *Handler) writePump(ctx context.Context, conn *websocket.Conn, sess *relay.Session) {
	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-sess.Outbox().Frames():
			if !ok {
				return
			}
			if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
				log.Error().Err(err).Str("module", "ws").Str("sid", sess.ID().String()).Msg("writePump set deadline")
				return
			}
			if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				log.Error().Err(err).Str("module", "ws").Str("sid", sess.ID().String()).Msg("writePump write error")
				return
			}
		}
	}
}

func (h *Handler) readPump(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, sess *relay.Session) {
	defer func() {
		cancel()
		sess.Outbox().Close()
		_ = conn.Close()
		if err := h.Registry.RemoveSession(sess.ID()); err != nil {
			// Another teardown path won the race.
			log.Debug().Err(err).Str("module", "ws").Str("sid", sess.ID().String()).Msg("remove session")
		}
		log.Info().Str("module", "ws").Str("sid", sess.ID().String()).Msg("disconnected")
	}()

	for {
		select {
		case <-ctx.Done():
			return
		default:
			mt, data, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Warn().Err(err).Str("module", "ws").Str("sid", sess.ID().String()).Msg("readPump read error")
				}
				return
			}
			if mt != websocket.BinaryMessage {
				log.Warn().Str("module", "ws").Str("sid", sess.ID().String()).Msg("ignoring non-binary frame")
				continue
			}
			if err := relay.Process(h.Registry, sess, data); err != nil {
				// Per-message failure; the connection stays up.
				log.Warn().Err(err).Str("module", "ws").Str("sid", sess.ID().String()).Msg("process message")
			}
		}
	}
}

// Package http wires the gin router: the upgrade endpoint plus the read-only
// diagnostics the relay exposes.
package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/dkeye/relay/internal/adapters/ws"
	"github.com/dkeye/relay/internal/config"
	"github.com/dkeye/relay/internal/relay"
)

func SetupRouter(ctx context.Context, cfg *config.Config, reg *relay.Registry) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	h := &ws.Handler{
		Registry:   reg,
		ReadLimit:  cfg.ReadLimit,
		SendBuffer: cfg.SendBuffer,
	}

	r.GET("/netcode", func(c *gin.Context) {
		h.Handle(ctx, c)
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, "pong")
	})
	r.GET("/players", listPlayers(reg))
	r.GET("/rooms", listRooms(reg))

	return r
}

func listPlayers(reg *relay.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids := reg.SessionIDs()
		out := make([]string, 0, len(ids))
		for _, id := range ids {
			out = append(out, id.String())
		}
		c.JSON(200, out)
	}
}

func listRooms(reg *relay.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		codes := reg.RoomCodes()
		out := make([]string, 0, len(codes))
		for _, code := range codes {
			out = append(out, code.String())
		}
		c.JSON(200, out)
	}
}

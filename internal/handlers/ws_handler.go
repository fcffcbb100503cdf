package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/session"
	"github.com/skyharboraero/flightline-backend/internal/ws"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Upgrade gates the connection: identity comes out of the JWT before the
// protocol switch, because the websocket handler no longer sees fiber
// locals the same way.
func (h *WSHandler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	userID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	c.Locals("ws_user_id", userID)
	c.Locals("ws_role", session.Role(c))
	return c.Next()
}

// Serve is the websocket endpoint itself.
func (h *WSHandler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("ws_user_id").(uuid.UUID)
		if !ok {
			conn.Close()
			return
		}
		role, _ := conn.Locals("ws_role").(string)
		h.hub.Serve(conn, userID, role)
	})
}

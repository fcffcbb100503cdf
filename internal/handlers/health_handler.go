package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/skyharboraero/flightline-backend/internal/database"
	"github.com/skyharboraero/flightline-backend/internal/dto"
	"github.com/skyharboraero/flightline-backend/internal/ws"
)

type HealthHandler struct {
	hub *ws.Hub
}

func NewHealthHandler(hub *ws.Hub) *HealthHandler {
	return &HealthHandler{hub: hub}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		WSClients: h.hub.ClientCount(),
	})
}

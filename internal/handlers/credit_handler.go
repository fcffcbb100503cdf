package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/services"
	"github.com/skyharboraero/flightline-backend/internal/session"
)

type CreditHandler struct {
	creditService *services.CreditService
}

func NewCreditHandler(creditService *services.CreditService) *CreditHandler {
	return &CreditHandler{creditService: creditService}
}

// Overview handles GET /credits - tier, multiplier, and per-service balances
// with the monthly reset applied.
func (h *CreditHandler) Overview(c *fiber.Ctx) error {
	ownerID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	overview, err := h.creditService.Overview(ownerID)
	if err != nil {
		slog.Error("credit overview failed", "owner_id", ownerID, "error", err)
		return internalError(c)
	}
	return c.JSON(overview)
}

// Balance handles GET /credits/:service_id - the live balance for one
// catalog service, without the full overview.
func (h *CreditHandler) Balance(c *fiber.Ctx) error {
	ownerID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	serviceID, err := uuid.Parse(c.Params("service_id"))
	if err != nil {
		return badRequest(c, "Invalid service ID")
	}

	available, err := h.creditService.Available(ownerID, serviceID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{
		"service_id":        serviceID,
		"credits_available": available,
	})
}

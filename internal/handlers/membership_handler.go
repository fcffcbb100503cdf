package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/dto"
	"github.com/skyharboraero/flightline-backend/internal/services"
	"github.com/skyharboraero/flightline-backend/internal/session"
)

type MembershipHandler struct {
	membershipService *services.MembershipService
}

func NewMembershipHandler(membershipService *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// Mine handles GET /membership - the caller's active membership.
func (h *MembershipHandler) Mine(c *fiber.Ctx) error {
	ownerID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	membership, err := h.membershipService.GetActive(ownerID)
	if err != nil {
		return notFound(c, "No active membership")
	}
	return c.JSON(membership)
}

// ListTiers handles GET /membership-tiers.
func (h *MembershipHandler) ListTiers(c *fiber.Ctx) error {
	tiers, err := h.membershipService.ListTiers()
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"tiers": tiers})
}

// CreateTier handles POST /admin/membership-tiers.
func (h *MembershipHandler) CreateTier(c *fiber.Ctx) error {
	var req dto.CreateTierRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := dto.Validate(&req); fields != nil {
		return validationFailed(c, fields)
	}

	tier, err := h.membershipService.CreateTier(&req)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(tier)
}

// UpdateTier handles PATCH /admin/membership-tiers/:id.
func (h *MembershipHandler) UpdateTier(c *fiber.Ctx) error {
	tierID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tier ID")
	}

	var req dto.UpdateTierRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := dto.Validate(&req); fields != nil {
		return validationFailed(c, fields)
	}

	tier, err := h.membershipService.UpdateTier(tierID, &req)
	if err != nil {
		if errors.Is(err, services.ErrTierNotFound) {
			return notFound(c, "Tier not found")
		}
		return internalError(c)
	}
	return c.JSON(tier)
}

// DeleteTier handles DELETE /admin/membership-tiers/:id.
func (h *MembershipHandler) DeleteTier(c *fiber.Ctx) error {
	tierID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tier ID")
	}

	if err := h.membershipService.DeleteTier(tierID); err != nil {
		if errors.Is(err, services.ErrTierNotFound) {
			return notFound(c, "Tier not found")
		}
		return internalError(c)
	}
	return c.JSON(fiber.Map{"message": "Tier deleted"})
}

// Assign handles POST /admin/memberships - activates a membership for an
// owner, replacing any previous active one.
func (h *MembershipHandler) Assign(c *fiber.Ctx) error {
	var req dto.AssignMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := dto.Validate(&req); fields != nil {
		return validationFailed(c, fields)
	}

	membership, err := h.membershipService.Assign(&req)
	if err != nil {
		if errors.Is(err, services.ErrTierNotFound) {
			return notFound(c, "Tier not found")
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(membership)
}

// UpdateFlightHours handles PUT /admin/memberships/:owner_id/hours - staff
// record the month's flown hours, which drive tiering and allotments.
func (h *MembershipHandler) UpdateFlightHours(c *fiber.Ctx) error {
	ownerID, err := uuid.Parse(c.Params("owner_id"))
	if err != nil {
		return badRequest(c, "Invalid owner ID")
	}

	var req dto.UpdateFlightHoursRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := dto.Validate(&req); fields != nil {
		return validationFailed(c, fields)
	}

	membership, err := h.membershipService.UpdateFlightHours(ownerID, req.MonthlyFlightHours)
	if err != nil {
		if errors.Is(err, services.ErrMembershipNotFound) {
			return notFound(c, "No active membership for owner")
		}
		return internalError(c)
	}
	return c.JSON(membership)
}

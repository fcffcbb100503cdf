package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/dto"
	"github.com/skyharboraero/flightline-backend/internal/models"
	"github.com/skyharboraero/flightline-backend/internal/services"
	"github.com/skyharboraero/flightline-backend/internal/session"
)

type AircraftHandler struct {
	aircraftService *services.AircraftService
	taskService     *services.TaskService
}

func NewAircraftHandler(aircraftService *services.AircraftService, taskService *services.TaskService) *AircraftHandler {
	return &AircraftHandler{aircraftService: aircraftService, taskService: taskService}
}

// Create handles POST /aircraft.
func (h *AircraftHandler) Create(c *fiber.Ctx) error {
	ownerID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateAircraftRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := dto.Validate(&req); fields != nil {
		return validationFailed(c, fields)
	}

	aircraft, err := h.aircraftService.Create(ownerID, &req)
	if err != nil {
		if errors.Is(err, services.ErrTailNumberTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(aircraft)
}

// List handles GET /aircraft - the caller's fleet.
func (h *AircraftHandler) List(c *fiber.Ctx) error {
	ownerID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	aircraft, err := h.aircraftService.ListByOwner(ownerID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"aircraft": aircraft})
}

// Get handles GET /aircraft/:id.
func (h *AircraftHandler) Get(c *fiber.Ctx) error {
	ownerID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	aircraftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid aircraft ID")
	}

	aircraft, err := h.aircraftService.Get(ownerID, aircraftID, isAdmin(c))
	if err != nil {
		return notFound(c, "Aircraft not found")
	}
	return c.JSON(aircraft)
}

// Update handles PATCH /aircraft/:id.
func (h *AircraftHandler) Update(c *fiber.Ctx) error {
	ownerID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	aircraftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid aircraft ID")
	}

	var req dto.UpdateAircraftRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := dto.Validate(&req); fields != nil {
		return validationFailed(c, fields)
	}

	aircraft, err := h.aircraftService.Update(ownerID, aircraftID, isAdmin(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrAircraftNotFound) {
			return notFound(c, "Aircraft not found")
		}
		return internalError(c)
	}
	return c.JSON(aircraft)
}

// Readiness handles GET /aircraft/:id/readiness - derived from open tasks,
// never stored.
func (h *AircraftHandler) Readiness(c *fiber.Ctx) error {
	ownerID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	aircraftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid aircraft ID")
	}

	// ownership check before deriving
	if _, err := h.aircraftService.Get(ownerID, aircraftID, isAdmin(c)); err != nil {
		return notFound(c, "Aircraft not found")
	}

	readiness, err := h.taskService.Readiness(aircraftID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(readiness)
}

// Tasks handles GET /aircraft/:id/tasks - the service timeline.
func (h *AircraftHandler) Tasks(c *fiber.Ctx) error {
	ownerID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	aircraftID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid aircraft ID")
	}

	if _, err := h.aircraftService.Get(ownerID, aircraftID, isAdmin(c)); err != nil {
		return notFound(c, "Aircraft not found")
	}

	tasks, err := h.taskService.ListByAircraft(aircraftID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"tasks": tasks})
}

func isAdmin(c *fiber.Ctx) bool {
	return session.Role(c) == models.RoleAdmin
}

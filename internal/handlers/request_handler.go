package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/dto"
	"github.com/skyharboraero/flightline-backend/internal/models"
	"github.com/skyharboraero/flightline-backend/internal/services"
	"github.com/skyharboraero/flightline-backend/internal/session"
)

type RequestHandler struct {
	requestService *services.RequestService
}

func NewRequestHandler(requestService *services.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// Create handles POST /requests - submission decides credit coverage.
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	ownerID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateServiceRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := dto.Validate(&req); fields != nil {
		return validationFailed(c, fields)
	}

	record, err := h.requestService.Create(ownerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAircraftNotFound):
			return notFound(c, "Aircraft not found")
		case errors.Is(err, services.ErrServiceNotFound):
			return notFound(c, "Service not found")
		}
		slog.Error("service request submission failed", "owner_id", ownerID, "error", err)
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// List handles GET /requests - the caller's requests, paginated.
func (h *RequestHandler) List(c *fiber.Ctx) error {
	ownerID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	page, limit, offset := pagination(c)
	requests, total, err := h.requestService.ListByOwner(ownerID, limit, offset)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(dto.ServiceRequestListResponse{
		Requests: requests,
		Total:    total,
		Page:     page,
		Limit:    limit,
	})
}

// Get handles GET /requests/:id.
func (h *RequestHandler) Get(c *fiber.Ctx) error {
	ownerID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	record, err := h.requestService.Get(ownerID, requestID)
	if err != nil {
		return notFound(c, "Service request not found")
	}
	return c.JSON(record)
}

// Cancel handles POST /requests/:id/cancel. Credits consumed at submission
// come back.
func (h *RequestHandler) Cancel(c *fiber.Ctx) error {
	ownerID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	record, err := h.requestService.Cancel(ownerID, requestID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			return notFound(c, "Service request not found")
		case errors.Is(err, services.ErrInvalidTransition):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return internalError(c)
	}
	return c.JSON(record)
}

// ListAll handles GET /admin/requests with an optional status filter.
func (h *RequestHandler) ListAll(c *fiber.Ctx) error {
	page, limit, offset := pagination(c)
	status := c.Query("status")

	requests, total, err := h.requestService.ListAll(status, limit, offset)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(dto.ServiceRequestListResponse{
		Requests: requests,
		Total:    total,
		Page:     page,
		Limit:    limit,
	})
}

// UpdateStatus handles PATCH /admin/requests/:id/status - the staff side of
// the request state machine.
func (h *RequestHandler) UpdateStatus(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	var req dto.UpdateRequestStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := dto.Validate(&req); fields != nil {
		return validationFailed(c, fields)
	}

	record, err := h.requestService.UpdateStatus(requestID, models.RequestStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			return notFound(c, "Service request not found")
		case errors.Is(err, services.ErrInvalidTransition):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return internalError(c)
	}
	return c.JSON(record)
}

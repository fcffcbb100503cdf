package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/dto"
	"github.com/skyharboraero/flightline-backend/internal/services"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List handles GET /services. Admins see inactive entries too.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	includeInactive := isAdmin(c) && c.QueryBool("include_inactive", false)

	entries, err := h.catalogService.List(includeInactive)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"services": entries})
}

// Get handles GET /services/:id.
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid service ID")
	}

	svc, err := h.catalogService.Get(serviceID)
	if err != nil {
		return notFound(c, "Service not found")
	}
	return c.JSON(svc)
}

// Create handles POST /admin/services.
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := dto.Validate(&req); fields != nil {
		return validationFailed(c, fields)
	}

	svc, err := h.catalogService.Create(&req)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(svc)
}

// Update handles PATCH /admin/services/:id.
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid service ID")
	}

	var req dto.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := dto.Validate(&req); fields != nil {
		return validationFailed(c, fields)
	}

	svc, err := h.catalogService.Update(serviceID, &req)
	if err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			return notFound(c, "Service not found")
		}
		return internalError(c)
	}
	return c.JSON(svc)
}

// Deactivate handles DELETE /admin/services/:id. Soft: history keeps its
// references.
func (h *CatalogHandler) Deactivate(c *fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid service ID")
	}

	if err := h.catalogService.Deactivate(serviceID); err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			return notFound(c, "Service not found")
		}
		return internalError(c)
	}
	return c.JSON(fiber.Map{"message": "Service deactivated"})
}

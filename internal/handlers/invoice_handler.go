package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/dto"
	"github.com/skyharboraero/flightline-backend/internal/services"
	"github.com/skyharboraero/flightline-backend/internal/session"
)

type InvoiceHandler struct {
	invoiceService *services.InvoiceService
}

func NewInvoiceHandler(invoiceService *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// List handles GET /invoices - the caller's invoices.
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	ownerID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	invoices, err := h.invoiceService.ListByOwner(ownerID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"invoices": invoices})
}

// Get handles GET /invoices/:id.
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	ownerID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid invoice ID")
	}

	invoice, err := h.invoiceService.Get(ownerID, invoiceID, isAdmin(c))
	if err != nil {
		return notFound(c, "Invoice not found")
	}
	return c.JSON(invoice)
}

// Create handles POST /admin/invoices.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := dto.Validate(&req); fields != nil {
		return validationFailed(c, fields)
	}

	invoice, err := h.invoiceService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			return notFound(c, "Invoice not found")
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

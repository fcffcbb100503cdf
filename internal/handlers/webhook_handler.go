package handlers

import (
	"crypto/subtle"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/skyharboraero/flightline-backend/internal/config"
	"github.com/skyharboraero/flightline-backend/internal/dto"
	"github.com/skyharboraero/flightline-backend/internal/services"
)

type WebhookHandler struct {
	invoiceService *services.InvoiceService
	cfg            *config.Config
}

func NewWebhookHandler(invoiceService *services.InvoiceService, cfg *config.Config) *WebhookHandler {
	return &WebhookHandler{invoiceService: invoiceService, cfg: cfg}
}

// HandlePayment receives payment status changes from the external processor.
// No JWT; the processor authenticates with a shared secret header.
func (h *WebhookHandler) HandlePayment(c *fiber.Ctx) error {
	if h.cfg.PaymentWebhookSecret == "" {
		return notFound(c, "Webhooks not configured")
	}

	authHeader := c.Get("Authorization")
	if subtle.ConstantTimeCompare([]byte(authHeader), []byte(h.cfg.PaymentWebhookSecret)) != 1 {
		return unauthorized(c)
	}

	var webhook dto.PaymentWebhook
	if err := c.BodyParser(&webhook); err != nil {
		return badRequest(c, "Invalid webhook payload")
	}

	if err := h.invoiceService.HandlePaymentEvent(&webhook.Event); err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			return notFound(c, "Invoice not found")
		}
		slog.Error("payment webhook processing failed", "event_type", webhook.Event.Type, "error", err)
		return internalError(c)
	}

	slog.Info("payment webhook processed", "event_type", webhook.Event.Type, "invoice_id", webhook.Event.InvoiceID)
	return c.JSON(fiber.Map{"received": true})
}

package dto

import "github.com/google/uuid"

type CreateInvoiceRequest struct {
	OwnerID          uuid.UUID  `json:"owner_id" validate:"required"`
	ServiceRequestID *uuid.UUID `json:"service_request_id,omitempty"`
	AmountCents      int64      `json:"amount_cents" validate:"required,gt=0"`
	Currency         string     `json:"currency" validate:"omitempty,len=3"`
	Memo             string     `json:"memo"`
}

// PaymentWebhook is the envelope the external payment processor posts when an
// invoice's payment state changes. Payment capture itself happens outside
// this system.
type PaymentWebhook struct {
	Event PaymentEvent `json:"event"`
}

type PaymentEvent struct {
	Type        string `json:"type"` // payment_succeeded, payment_failed, payment_voided
	InvoiceID   string `json:"invoice_id"`
	ExternalRef string `json:"external_ref"`
	OccurredAt  int64  `json:"occurred_at_ms"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice statuses. Payment capture is external; the processor webhook moves
// invoices between these states.
const (
	InvoiceDraft = "draft"
	InvoiceOpen  = "open"
	InvoicePaid  = "paid"
	InvoiceVoid  = "void"
)

type Invoice struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	ServiceRequestID *uuid.UUID     `gorm:"type:uuid;index" json:"service_request_id,omitempty"`
	AmountCents      int64          `gorm:"not null;default:0" json:"amount_cents"`
	Currency         string         `gorm:"size:3;default:'USD'" json:"currency"`
	Status           string         `gorm:"size:20;default:'draft';index" json:"status"`
	Memo             string         `gorm:"type:text" json:"memo"`
	ExternalRef      string         `gorm:"size:255;index" json:"external_ref"`
	PaidAt           *time.Time     `json:"paid_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
	Owner            User           `gorm:"foreignKey:OwnerID" json:"-"`
}

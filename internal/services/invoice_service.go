package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/dto"
	"github.com/skyharboraero/flightline-backend/internal/events"
	"github.com/skyharboraero/flightline-backend/internal/models"
	"gorm.io/gorm"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

// InvoiceService keeps invoice records; generation and payment capture are
// external, the processor drives status changes through the webhook.
type InvoiceService struct {
	db  *gorm.DB
	bus *events.Bus
}

func NewInvoiceService(db *gorm.DB, bus *events.Bus) *InvoiceService {
	return &InvoiceService{db: db, bus: bus}
}

func (s *InvoiceService) Create(req *dto.CreateInvoiceRequest) (*models.Invoice, error) {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	invoice := models.Invoice{
		ID:               uuid.New(),
		OwnerID:          req.OwnerID,
		ServiceRequestID: req.ServiceRequestID,
		AmountCents:      req.AmountCents,
		Currency:         currency,
		Status:           models.InvoiceOpen,
		Memo:             req.Memo,
	}

	if err := s.db.Create(&invoice).Error; err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.publish("created", &invoice)
	return &invoice, nil
}

func (s *InvoiceService) ListByOwner(ownerID uuid.UUID) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

func (s *InvoiceService) Get(ownerID, invoiceID uuid.UUID, admin bool) (*models.Invoice, error) {
	query := s.db.Where("id = ?", invoiceID)
	if !admin {
		query = query.Where("owner_id = ?", ownerID)
	}

	var invoice models.Invoice
	if err := query.First(&invoice).Error; err != nil {
		return nil, ErrInvoiceNotFound
	}
	return &invoice, nil
}

// HandlePaymentEvent applies a processor webhook event to the referenced
// invoice. Unknown event types are acknowledged and ignored.
func (s *InvoiceService) HandlePaymentEvent(event *dto.PaymentEvent) error {
	invoiceID, err := uuid.Parse(event.InvoiceID)
	if err != nil {
		return fmt.Errorf("invalid invoice id in payment event: %w", err)
	}

	var invoice models.Invoice
	if err := s.db.First(&invoice, "id = ?", invoiceID).Error; err != nil {
		return ErrInvoiceNotFound
	}

	switch event.Type {
	case "payment_succeeded":
		paidAt := msToTime(event.OccurredAt)
		invoice.Status = models.InvoicePaid
		invoice.PaidAt = &paidAt
		invoice.ExternalRef = event.ExternalRef
	case "payment_voided":
		invoice.Status = models.InvoiceVoid
		invoice.ExternalRef = event.ExternalRef
	case "payment_failed":
		// invoice stays open; record the processor reference for support
		invoice.ExternalRef = event.ExternalRef
	default:
		return nil
	}

	if err := s.db.Save(&invoice).Error; err != nil {
		return fmt.Errorf("failed to apply payment event: %w", err)
	}

	s.publish("updated", &invoice)
	return nil
}

func (s *InvoiceService) publish(action string, invoice *models.Invoice) {
	s.bus.Publish(events.Event{
		Topic:    events.TopicInvoices,
		Action:   action,
		EntityID: invoice.ID,
		OwnerID:  invoice.OwnerID,
	})
}

func msToTime(ms int64) time.Time {
	if ms <= 0 {
		return time.Now()
	}
	return time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond))
}

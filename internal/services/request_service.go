package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/dto"
	"github.com/skyharboraero/flightline-backend/internal/events"
	"github.com/skyharboraero/flightline-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound   = errors.New("service request not found")
	ErrAircraftNotFound  = errors.New("aircraft not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type RequestService struct {
	db      *gorm.DB
	bus     *events.Bus
	credits *CreditService
}

func NewRequestService(db *gorm.DB, bus *events.Bus, credits *CreditService) *RequestService {
	return &RequestService{db: db, bus: bus, credits: credits}
}

// Create submits a service request for one of the owner's aircraft. For
// catalog services the credit debit happens here, as a single conditional
// update: when it succeeds the request is covered, otherwise it bills as an
// extra charge. Custom requests never consume credits.
func (s *RequestService) Create(ownerID uuid.UUID, req *dto.CreateServiceRequestRequest) (*models.ServiceRequest, error) {
	var aircraft models.Aircraft
	if err := s.db.Where("id = ? AND owner_id = ?", req.AircraftID, ownerID).First(&aircraft).Error; err != nil {
		return nil, ErrAircraftNotFound
	}

	record := models.ServiceRequest{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		AircraftID:  aircraft.ID,
		ServiceType: req.ServiceType,
		Priority:    normalizePriority(req.Priority),
		Status:      models.RequestPending,

		IsPreflight:        req.IsPreflight,
		Airport:            strings.ToUpper(req.Airport),
		RequestedDeparture: req.RequestedDeparture,
		FuelGrade:          req.FuelGrade,
		FuelQuantity:       req.FuelQuantity,
		NeedsO2:            req.NeedsO2,
		NeedsTKS:           req.NeedsTKS,
		NeedsGPU:           req.NeedsGPU,
		NeedsHangar:        req.NeedsHangar,
	}
	if len(req.CabinProvisioning) > 0 {
		record.CabinProvisioning = datatypes.JSON(req.CabinProvisioning)
	}

	if isCustom(req) {
		applyCustomService(&record)
	} else {
		var svc models.Service
		if err := s.db.First(&svc, "id = ?", *req.ServiceID).Error; err != nil {
			return nil, ErrServiceNotFound
		}
		record.ServiceID = &svc.ID
		record.ServiceType = svc.Name

		required := NormalizeRequired(svc.CreditsRequired)
		consumed, err := s.credits.Consume(ownerID, svc.ID, required)
		if err != nil {
			return nil, err
		}
		record.IsExtraCharge = !consumed
		if consumed {
			record.CreditsUsed = required
		}
	}

	if req.IsPreflight {
		record.Description = ComposePreflightDescription(req)
	} else {
		record.Description = req.Notes
	}

	if err := s.db.Create(&record).Error; err != nil {
		// the debit already went through; undo it rather than leave the
		// balance short with no request on file
		if record.CreditsUsed > 0 && record.ServiceID != nil {
			_ = s.credits.Restore(ownerID, *record.ServiceID, record.CreditsUsed)
		}
		return nil, fmt.Errorf("failed to create service request: %w", err)
	}

	s.publish("created", &record)
	return &record, nil
}

// ListByOwner returns the owner's requests, newest first.
func (s *RequestService) ListByOwner(ownerID uuid.UUID, limit, offset int) ([]models.ServiceRequest, int64, error) {
	var requests []models.ServiceRequest
	var total int64

	s.db.Model(&models.ServiceRequest{}).Where("owner_id = ?", ownerID).Count(&total)

	err := s.db.Preload("Service").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&requests).Error

	return requests, total, err
}

// ListAll returns requests across all owners, optionally filtered by status.
// Admin only.
func (s *RequestService) ListAll(status string, limit, offset int) ([]models.ServiceRequest, int64, error) {
	query := s.db.Model(&models.ServiceRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var requests []models.ServiceRequest
	err := query.Preload("Service").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&requests).Error

	return requests, total, err
}

// Get returns one request, restricted to its owner.
func (s *RequestService) Get(ownerID, requestID uuid.UUID) (*models.ServiceRequest, error) {
	var record models.ServiceRequest
	err := s.db.Preload("Service").
		Where("id = ? AND owner_id = ?", requestID, ownerID).
		First(&record).Error
	if err != nil {
		return nil, ErrRequestNotFound
	}
	return &record, nil
}

// Cancel moves an owner's request to cancelled, restoring any consumed
// credits. Terminal requests reject the transition.
func (s *RequestService) Cancel(ownerID, requestID uuid.UUID) (*models.ServiceRequest, error) {
	var record models.ServiceRequest
	if err := s.db.Where("id = ? AND owner_id = ?", requestID, ownerID).First(&record).Error; err != nil {
		return nil, ErrRequestNotFound
	}
	return s.transition(&record, models.RequestCancelled)
}

// UpdateStatus applies a staff status change, enforcing the state machine.
func (s *RequestService) UpdateStatus(requestID uuid.UUID, to models.RequestStatus) (*models.ServiceRequest, error) {
	var record models.ServiceRequest
	if err := s.db.First(&record, "id = ?", requestID).Error; err != nil {
		return nil, ErrRequestNotFound
	}
	return s.transition(&record, to)
}

func (s *RequestService) transition(record *models.ServiceRequest, to models.RequestStatus) (*models.ServiceRequest, error) {
	if !to.Valid() || !models.CanTransition(record.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, record.Status, to)
	}

	if to == models.RequestCancelled && record.CreditsUsed > 0 && record.ServiceID != nil {
		if err := s.credits.Restore(record.OwnerID, *record.ServiceID, record.CreditsUsed); err != nil {
			return nil, err
		}
		record.CreditsUsed = 0
		record.IsExtraCharge = false
	}

	record.Status = to
	if err := s.db.Save(record).Error; err != nil {
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}

	s.publish("updated", record)
	return record, nil
}

func (s *RequestService) publish(action string, record *models.ServiceRequest) {
	s.bus.Publish(events.Event{
		Topic:      events.TopicServiceRequests,
		Action:     action,
		EntityID:   record.ID,
		OwnerID:    record.OwnerID,
		AircraftID: record.AircraftID,
	})
}

func isCustom(req *dto.CreateServiceRequestRequest) bool {
	return req.ServiceID == nil || strings.EqualFold(req.ServiceType, models.CustomServiceSentinel)
}

// applyCustomService marks a record as a custom request: billed as an extra
// charge and never covered by credits, whatever the owner's balances hold.
func applyCustomService(record *models.ServiceRequest) {
	record.IsExtraCharge = true
	record.CreditsUsed = 0
	if record.ServiceType == "" {
		record.ServiceType = models.CustomServiceSentinel
	}
}

func normalizePriority(p string) string {
	switch p {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return p
	}
	return models.PriorityMedium
}

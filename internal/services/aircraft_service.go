package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/dto"
	"github.com/skyharboraero/flightline-backend/internal/models"
	"gorm.io/gorm"
)

var ErrTailNumberTaken = errors.New("tail number already registered")

type AircraftService struct {
	db *gorm.DB
}

func NewAircraftService(db *gorm.DB) *AircraftService {
	return &AircraftService{db: db}
}

func (s *AircraftService) Create(ownerID uuid.UUID, req *dto.CreateAircraftRequest) (*models.Aircraft, error) {
	var existing models.Aircraft
	if err := s.db.Where("tail_number = ?", req.TailNumber).First(&existing).Error; err == nil {
		return nil, ErrTailNumberTaken
	}

	aircraft := models.Aircraft{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		TailNumber:   req.TailNumber,
		Model:        req.Model,
		BaseLocation: req.BaseLocation,
		Status:       models.AircraftStatusActive,
		HobbsTime:    req.HobbsTime,
		TachTime:     req.TachTime,
	}

	if err := s.db.Create(&aircraft).Error; err != nil {
		return nil, fmt.Errorf("failed to create aircraft: %w", err)
	}
	return &aircraft, nil
}

func (s *AircraftService) ListByOwner(ownerID uuid.UUID) ([]models.Aircraft, error) {
	var aircraft []models.Aircraft
	err := s.db.Where("owner_id = ?", ownerID).
		Order("tail_number").
		Find(&aircraft).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list aircraft: %w", err)
	}
	return aircraft, nil
}

// Get returns one aircraft, restricted to its owner unless admin is set.
func (s *AircraftService) Get(ownerID, aircraftID uuid.UUID, admin bool) (*models.Aircraft, error) {
	query := s.db.Where("id = ?", aircraftID)
	if !admin {
		query = query.Where("owner_id = ?", ownerID)
	}

	var aircraft models.Aircraft
	if err := query.First(&aircraft).Error; err != nil {
		return nil, ErrAircraftNotFound
	}
	return &aircraft, nil
}

func (s *AircraftService) Update(ownerID, aircraftID uuid.UUID, admin bool, req *dto.UpdateAircraftRequest) (*models.Aircraft, error) {
	aircraft, err := s.Get(ownerID, aircraftID, admin)
	if err != nil {
		return nil, err
	}

	if req.Model != nil {
		aircraft.Model = *req.Model
	}
	if req.BaseLocation != nil {
		aircraft.BaseLocation = *req.BaseLocation
	}
	if req.Status != nil {
		aircraft.Status = *req.Status
	}
	if req.HobbsTime != nil {
		aircraft.HobbsTime = *req.HobbsTime
	}
	if req.TachTime != nil {
		aircraft.TachTime = *req.TachTime
	}

	if err := s.db.Save(aircraft).Error; err != nil {
		return nil, fmt.Errorf("failed to update aircraft: %w", err)
	}
	return aircraft, nil
}

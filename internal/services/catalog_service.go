package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/dto"
	"github.com/skyharboraero/flightline-backend/internal/models"
	"gorm.io/gorm"
)

// CatalogService manages the admin-curated service catalog.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) Create(req *dto.CreateServiceRequest) (*models.Service, error) {
	svc := models.Service{
		ID:                      uuid.New(),
		Name:                    req.Name,
		Category:                req.Category,
		Description:             req.Description,
		Active:                  true,
		CreditsRequired:         req.CreditsRequired,
		CreditsPerPeriod:        req.CreditsPerPeriod,
		CanRollover:             req.CanRollover,
		BaseCreditsLowActivity:  req.BaseCreditsLowActivity,
		BaseCreditsHighActivity: req.BaseCreditsHighActivity,
	}

	if err := s.db.Create(&svc).Error; err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &svc, nil
}

// List returns catalog entries; owners see only active ones.
func (s *CatalogService) List(includeInactive bool) ([]models.Service, error) {
	query := s.db.Order("category, name")
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *CatalogService) Get(serviceID uuid.UUID) (*models.Service, error) {
	var svc models.Service
	if err := s.db.First(&svc, "id = ?", serviceID).Error; err != nil {
		return nil, ErrServiceNotFound
	}
	return &svc, nil
}

func (s *CatalogService) Update(serviceID uuid.UUID, req *dto.UpdateServiceRequest) (*models.Service, error) {
	svc, err := s.Get(serviceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Category != nil {
		svc.Category = *req.Category
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}
	if req.CreditsRequired != nil {
		svc.CreditsRequired = *req.CreditsRequired
	}
	if req.CreditsPerPeriod != nil {
		svc.CreditsPerPeriod = *req.CreditsPerPeriod
	}
	if req.CanRollover != nil {
		svc.CanRollover = *req.CanRollover
	}
	if req.BaseCreditsLowActivity != nil {
		svc.BaseCreditsLowActivity = *req.BaseCreditsLowActivity
	}
	if req.BaseCreditsHighActivity != nil {
		svc.BaseCreditsHighActivity = *req.BaseCreditsHighActivity
	}

	if err := s.db.Save(svc).Error; err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return svc, nil
}

// Deactivate retires a catalog entry without deleting history that points at
// it.
func (s *CatalogService) Deactivate(serviceID uuid.UUID) error {
	result := s.db.Model(&models.Service{}).
		Where("id = ?", serviceID).
		Update("active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

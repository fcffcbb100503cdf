package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/dto"
	"github.com/skyharboraero/flightline-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrTierNotFound       = errors.New("membership tier not found")
	ErrMembershipNotFound = errors.New("membership not found")
)

type MembershipService struct {
	db *gorm.DB
}

func NewMembershipService(db *gorm.DB) *MembershipService {
	return &MembershipService{db: db}
}

func (s *MembershipService) CreateTier(req *dto.CreateTierRequest) (*models.MembershipTier, error) {
	tier := models.MembershipTier{
		ID:               uuid.New(),
		Name:             req.Name,
		CreditMultiplier: req.CreditMultiplier,
		MinMonthlyHours:  req.MinMonthlyHours,
		MaxMonthlyHours:  req.MaxMonthlyHours,
		SortOrder:        req.SortOrder,
	}
	if err := s.db.Create(&tier).Error; err != nil {
		return nil, fmt.Errorf("failed to create tier: %w", err)
	}
	return &tier, nil
}

func (s *MembershipService) ListTiers() ([]models.MembershipTier, error) {
	var tiers []models.MembershipTier
	if err := s.db.Order("sort_order, min_monthly_hours").Find(&tiers).Error; err != nil {
		return nil, fmt.Errorf("failed to list tiers: %w", err)
	}
	return tiers, nil
}

func (s *MembershipService) UpdateTier(tierID uuid.UUID, req *dto.UpdateTierRequest) (*models.MembershipTier, error) {
	var tier models.MembershipTier
	if err := s.db.First(&tier, "id = ?", tierID).Error; err != nil {
		return nil, ErrTierNotFound
	}

	if req.Name != nil {
		tier.Name = *req.Name
	}
	if req.CreditMultiplier != nil {
		tier.CreditMultiplier = *req.CreditMultiplier
	}
	if req.MinMonthlyHours != nil {
		tier.MinMonthlyHours = *req.MinMonthlyHours
	}
	if req.MaxMonthlyHours != nil {
		tier.MaxMonthlyHours = req.MaxMonthlyHours
	}
	if req.SortOrder != nil {
		tier.SortOrder = *req.SortOrder
	}

	if err := s.db.Save(&tier).Error; err != nil {
		return nil, fmt.Errorf("failed to update tier: %w", err)
	}
	return &tier, nil
}

func (s *MembershipService) DeleteTier(tierID uuid.UUID) error {
	result := s.db.Delete(&models.MembershipTier{}, "id = ?", tierID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete tier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTierNotFound
	}
	return nil
}

// Assign activates a membership for an owner, deactivating any previous one
// in the same transaction so at most one stays active.
func (s *MembershipService) Assign(req *dto.AssignMembershipRequest) (*models.Membership, error) {
	if req.TierID != nil {
		var tier models.MembershipTier
		if err := s.db.First(&tier, "id = ?", *req.TierID).Error; err != nil {
			return nil, ErrTierNotFound
		}
	}

	membership := models.Membership{
		ID:                 uuid.New(),
		OwnerID:            req.OwnerID,
		TierID:             req.TierID,
		TierName:           req.TierName,
		Active:             true,
		MonthlyFlightHours: req.MonthlyFlightHours,
		StartedAt:          time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Membership{}).
			Where("owner_id = ? AND active = ?", req.OwnerID, true).
			Update("active", false).Error; err != nil {
			return err
		}
		return tx.Create(&membership).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to assign membership: %w", err)
	}
	return &membership, nil
}

// GetActive returns the owner's active membership with its tier.
func (s *MembershipService) GetActive(ownerID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := s.db.Preload("Tier").
		Where("owner_id = ? AND active = ?", ownerID, true).
		First(&membership).Error
	if err != nil {
		return nil, ErrMembershipNotFound
	}
	return &membership, nil
}

// UpdateFlightHours records the owner's flown hours for the current month.
func (s *MembershipService) UpdateFlightHours(ownerID uuid.UUID, hours float64) (*models.Membership, error) {
	membership, err := s.GetActive(ownerID)
	if err != nil {
		return nil, err
	}

	membership.MonthlyFlightHours = hours
	if err := s.db.Save(membership).Error; err != nil {
		return nil, fmt.Errorf("failed to update flight hours: %w", err)
	}
	return membership, nil
}

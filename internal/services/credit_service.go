package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/credits"
	"github.com/skyharboraero/flightline-backend/internal/dto"
	"github.com/skyharboraero/flightline-backend/internal/events"
	"github.com/skyharboraero/flightline-backend/internal/models"
	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

// DefaultCreditsRequired applies when a catalog service leaves the per-use
// cost unset.
const DefaultCreditsRequired = 1

// NormalizeRequired returns the effective per-use cost of a service.
func NormalizeRequired(required int) int {
	if required <= 0 {
		return DefaultCreditsRequired
	}
	return required
}

// DecideBilling is the pure eligibility rule: a request is covered iff the
// available balance meets the per-use cost. Uncovered requests bill as an
// extra charge and consume nothing.
func DecideBilling(available, required int) (extraCharge bool, creditsUsed int) {
	required = NormalizeRequired(required)
	if available >= required {
		return false, required
	}
	return true, 0
}

type CreditService struct {
	db  *gorm.DB
	bus *events.Bus
}

func NewCreditService(db *gorm.DB, bus *events.Bus) *CreditService {
	return &CreditService{db: db, bus: bus}
}

// Consume debits the owner's balance for one use of a service with a single
// conditional update, so two concurrent submissions cannot both spend the
// same credits. Returns whether the debit happened; a false return means the
// request bills as an extra charge, never an error.
func (s *CreditService) Consume(ownerID, serviceID uuid.UUID, required int) (bool, error) {
	required = NormalizeRequired(required)

	result := s.db.Model(&models.ServiceCredit{}).
		Where("owner_id = ? AND service_id = ? AND credits_available >= ?", ownerID, serviceID, required).
		Updates(map[string]interface{}{
			"credits_available":        gorm.Expr("credits_available - ?", required),
			"credits_used_this_period": gorm.Expr("credits_used_this_period + ?", required),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to debit credits: %w", result.Error)
	}

	consumed := result.RowsAffected == 1
	if consumed {
		s.bus.Publish(events.Event{
			Topic:    events.TopicServiceCredits,
			Action:   "updated",
			EntityID: serviceID,
			OwnerID:  ownerID,
		})
	}
	return consumed, nil
}

// Restore returns previously consumed credits to the balance, used when a
// credit-backed request is cancelled.
func (s *CreditService) Restore(ownerID, serviceID uuid.UUID, amount int) error {
	if amount <= 0 {
		return nil
	}

	result := s.db.Model(&models.ServiceCredit{}).
		Where("owner_id = ? AND service_id = ?", ownerID, serviceID).
		Updates(map[string]interface{}{
			"credits_available":        gorm.Expr("credits_available + ?", amount),
			"credits_used_this_period": gorm.Expr("GREATEST(credits_used_this_period - ?, 0)", amount),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to restore credits: %w", result.Error)
	}

	s.bus.Publish(events.Event{
		Topic:    events.TopicServiceCredits,
		Action:   "updated",
		EntityID: serviceID,
		OwnerID:  ownerID,
	})
	return nil
}

// Available returns the current balance for one owner/service pair, zero
// when no row exists yet.
func (s *CreditService) Available(ownerID, serviceID uuid.UUID) (int, error) {
	var row models.ServiceCredit
	err := s.db.Where("owner_id = ? AND service_id = ?", ownerID, serviceID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read credit balance: %w", err)
	}
	return row.CreditsAvailable, nil
}

// Overview assembles the owner's credit dashboard: tier, multiplier, and one
// row per active catalog service with the computed allotment and live
// balance. Period boundaries are applied here — rows whose last reset falls
// in a prior calendar month are re-provisioned before being returned.
func (s *CreditService) Overview(ownerID uuid.UUID) (*dto.CreditOverviewResponse, error) {
	hours, multiplier, tierName := s.activityProfile(ownerID)

	var services []models.Service
	if err := s.db.Where("active = ?", true).Order("category, name").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}

	allotments := credits.MonthlyCreditsFor(services, hours, multiplier)

	now := time.Now()
	views := make([]dto.ServiceCreditView, 0, len(services))
	for _, svc := range services {
		row, err := s.provision(ownerID, svc, allotments[svc.ID], now)
		if err != nil {
			return nil, err
		}
		views = append(views, dto.ServiceCreditView{
			ServiceID:             svc.ID,
			ServiceName:           svc.Name,
			Category:              svc.Category,
			CreditsRequired:       NormalizeRequired(svc.CreditsRequired),
			MonthlyAllotment:      allotments[svc.ID],
			CreditsAvailable:      row.CreditsAvailable,
			CreditsUsedThisPeriod: row.CreditsUsedThisPeriod,
			CanRollover:           svc.CanRollover,
		})
	}

	return &dto.CreditOverviewResponse{
		TierName:         tierName,
		CreditMultiplier: multiplier,
		MonthlyHours:     hours,
		Credits:          views,
	}, nil
}

// activityProfile loads the owner's active membership. The tier's multiplier
// overrides the derived one when a tier is attached; without a membership
// everything derives from zero hours.
func (s *CreditService) activityProfile(ownerID uuid.UUID) (hours, multiplier float64, tierName string) {
	var membership models.Membership
	err := s.db.Preload("Tier").
		Where("owner_id = ? AND active = ?", ownerID, true).
		First(&membership).Error
	if err != nil {
		return 0, credits.TierMultiplier(0), credits.TierName(0)
	}

	hours = membership.MonthlyFlightHours
	multiplier = credits.TierMultiplier(hours)
	tierName = credits.TierName(hours)

	if membership.Tier != nil && membership.Tier.CreditMultiplier > 0 {
		multiplier = membership.Tier.CreditMultiplier
		tierName = membership.Tier.Name
	} else if membership.TierName != "" {
		tierName = membership.TierName
	}
	return hours, multiplier, tierName
}

// provision fetches the owner's credit row for a service, creating it at the
// current allotment when missing and resetting it on a period boundary.
func (s *CreditService) provision(ownerID uuid.UUID, svc models.Service, allotment int, now time.Time) (*models.ServiceCredit, error) {
	var row models.ServiceCredit
	err := s.db.Where("owner_id = ? AND service_id = ?", ownerID, svc.ID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.ServiceCredit{
			ID:               uuid.New(),
			OwnerID:          ownerID,
			ServiceID:        svc.ID,
			CreditsAvailable: allotment,
			LastResetDate:    now,
		}
		if err := s.db.Create(&row).Error; err != nil {
			return nil, fmt.Errorf("failed to provision credits: %w", err)
		}
		return &row, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load credit row: %w", err)
	}

	if SameCreditPeriod(row.LastResetDate, now) {
		return &row, nil
	}

	row.CreditsAvailable = ResetBalance(row.CreditsAvailable, allotment, svc.CanRollover)
	row.CreditsUsedThisPeriod = 0
	row.LastResetDate = now
	if err := s.db.Save(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to reset credits: %w", err)
	}

	s.bus.Publish(events.Event{
		Topic:    events.TopicServiceCredits,
		Action:   "updated",
		EntityID: svc.ID,
		OwnerID:  ownerID,
	})
	return &row, nil
}

// SameCreditPeriod reports whether two instants fall in the same calendar
// month.
func SameCreditPeriod(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// ResetBalance computes the balance at the start of a new period: the fresh
// allotment, plus the unused remainder when the service rolls over.
func ResetBalance(current, allotment int, rollover bool) int {
	if current < 0 {
		current = 0
	}
	if rollover {
		return allotment + current
	}
	return allotment
}

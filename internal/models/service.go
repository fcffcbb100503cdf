package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service categories offered by the catalog.
const (
	CategoryMaintenance = "maintenance"
	CategoryDetailing   = "detailing"
	CategoryReadiness   = "readiness"
	CategoryTraining    = "training"
	CategoryConcierge   = "concierge"
)

var ServiceCategories = []string{
	CategoryMaintenance,
	CategoryDetailing,
	CategoryReadiness,
	CategoryTraining,
	CategoryConcierge,
}

// Service is a catalog entry an owner can redeem credits against.
// All credit amounts are non-negative integers.
type Service struct {
	ID                      uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name                    string         `gorm:"size:255;not null" json:"name"`
	Category                string         `gorm:"size:50;not null;index" json:"category"`
	Description             string         `gorm:"type:text" json:"description"`
	Active                  bool           `gorm:"default:true;index" json:"active"`
	CreditsRequired         int            `gorm:"default:1" json:"credits_required"`
	CreditsPerPeriod        int            `gorm:"default:0" json:"credits_per_period"`
	CanRollover             bool           `gorm:"default:false" json:"can_rollover"`
	BaseCreditsLowActivity  int            `gorm:"default:0" json:"base_credits_low_activity"`
	BaseCreditsHighActivity int            `gorm:"default:0" json:"base_credits_high_activity"`
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`
	DeletedAt               gorm.DeletedAt `gorm:"index" json:"-"`
}

func ValidCategory(category string) bool {
	for _, c := range ServiceCategories {
		if c == category {
			return true
		}
	}
	return false
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceCredit is an owner's credit balance against one catalog service.
// Balances reset on the first read in a new calendar month.
type ServiceCredit struct {
	ID                    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID               uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_credit_owner_service" json:"owner_id"`
	ServiceID             uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_credit_owner_service" json:"service_id"`
	CreditsAvailable      int       `gorm:"default:0" json:"credits_available"`
	CreditsUsedThisPeriod int       `gorm:"default:0" json:"credits_used_this_period"`
	LastResetDate         time.Time `json:"last_reset_date"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
	Owner                 User      `gorm:"foreignKey:OwnerID" json:"-"`
	Service               Service   `gorm:"foreignKey:ServiceID" json:"-"`
}

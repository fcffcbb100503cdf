package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipTier is an activity bracket with a credit multiplier.
type MembershipTier struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name             string         `gorm:"size:100;not null;uniqueIndex" json:"name"`
	CreditMultiplier float64        `gorm:"not null;default:1" json:"credit_multiplier"`
	MinMonthlyHours  float64        `gorm:"default:0" json:"min_monthly_hours"`
	MaxMonthlyHours  *float64       `json:"max_monthly_hours,omitempty"`
	SortOrder        int            `gorm:"default:0" json:"sort_order"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// Membership ties an owner to a tier. At most one active membership per
// owner, enforced with a partial unique index on activation.
type Membership struct {
	ID                 uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	TierID             *uuid.UUID      `gorm:"type:uuid;index" json:"tier_id,omitempty"`
	TierName           string          `gorm:"size:100" json:"tier_name"`
	Active             bool            `gorm:"default:true;index" json:"active"`
	MonthlyFlightHours float64         `gorm:"default:0" json:"monthly_flight_hours"`
	StartedAt          time.Time       `json:"started_at"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	DeletedAt          gorm.DeletedAt  `gorm:"index" json:"-"`
	Owner              User            `gorm:"foreignKey:OwnerID" json:"-"`
	Tier               *MembershipTier `gorm:"foreignKey:TierID" json:"tier,omitempty"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Aircraft statuses are free text in practice; these are the values the
// dashboard writes.
const (
	AircraftStatusActive    = "active"
	AircraftStatusInService = "in_service"
	AircraftStatusGrounded  = "grounded"
)

type Aircraft struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	TailNumber   string         `gorm:"size:20;not null;uniqueIndex" json:"tail_number"`
	Model        string         `gorm:"size:100" json:"model"`
	BaseLocation string         `gorm:"size:100" json:"base_location"`
	Status       string         `gorm:"size:50;default:'active'" json:"status"`
	HobbsTime    float64        `gorm:"default:0" json:"hobbs_time"`
	TachTime     float64        `gorm:"default:0" json:"tach_time"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Owner        User           `gorm:"foreignKey:OwnerID" json:"-"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Task statuses mirror request statuses but stay free text: the shop floor
// writes values like "waiting_parts" that the readiness derivation only needs
// to distinguish from the two closed states below.
const (
	TaskCompleted = "completed"
	TaskCancelled = "cancelled"
)

// ServiceTask is one unit of work on an aircraft. Type is free text matched
// case-insensitively against ReadinessKeywords when deriving readiness.
type ServiceTask struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AircraftID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"aircraft_id"`
	Type        string         `gorm:"size:100;not null" json:"type"`
	Status      string         `gorm:"size:30;default:'pending';index" json:"status"`
	AssigneeID  *uuid.UUID     `gorm:"type:uuid" json:"assignee_id,omitempty"`
	Notes       string         `gorm:"type:text" json:"notes"`
	PhotoRefs   datatypes.JSON `gorm:"type:jsonb" json:"photo_refs,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Aircraft    Aircraft       `gorm:"foreignKey:AircraftID" json:"-"`
}

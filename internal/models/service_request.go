package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RequestStatus is the explicit state of a service request. Transitions are
// enforced by CanTransition; completed and cancelled are terminal.
type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestCancelled  RequestStatus = "cancelled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestInProgress, RequestCompleted, RequestCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s RequestStatus) Terminal() bool {
	return s == RequestCompleted || s == RequestCancelled
}

// CanTransition reports whether a request may move from one status to
// another: pending → in_progress → completed, with cancellation allowed any
// time before completion.
func CanTransition(from, to RequestStatus) bool {
	if from == to {
		return false
	}
	switch from {
	case RequestPending:
		return to == RequestInProgress || to == RequestCompleted || to == RequestCancelled
	case RequestInProgress:
		return to == RequestCompleted || to == RequestCancelled
	}
	return false
}

// Request priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// CustomServiceSentinel marks a request with no catalog service attached.
// Custom requests are always billed as an extra charge.
const CustomServiceSentinel = "custom"

// ServiceRequest is an owner's request for work on one aircraft. It either
// references a catalog Service or carries a free-text ServiceType.
type ServiceRequest struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"owner_id"`
	AircraftID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"aircraft_id"`
	ServiceID   *uuid.UUID `gorm:"type:uuid;index" json:"service_id,omitempty"`
	ServiceType string     `gorm:"size:255" json:"service_type"`

	Priority    string        `gorm:"size:20;default:'medium'" json:"priority"`
	Status      RequestStatus `gorm:"size:30;default:'pending';index" json:"status"`
	Description string        `gorm:"type:text" json:"description"`

	IsExtraCharge bool `gorm:"default:false" json:"is_extra_charge"`
	CreditsUsed   int  `gorm:"default:0" json:"credits_used"`

	// Preflight-specific fields
	IsPreflight        bool           `gorm:"default:false" json:"is_preflight"`
	Airport            string         `gorm:"size:10" json:"airport"`
	RequestedDeparture *time.Time     `json:"requested_departure,omitempty"`
	FuelGrade          string         `gorm:"size:20" json:"fuel_grade"`
	FuelQuantity       float64        `gorm:"default:0" json:"fuel_quantity"`
	NeedsO2            bool           `gorm:"default:false" json:"needs_o2"`
	NeedsTKS           bool           `gorm:"default:false" json:"needs_tks"`
	NeedsGPU           bool           `gorm:"default:false" json:"needs_gpu"`
	NeedsHangar        bool           `gorm:"default:false" json:"needs_hangar"`
	CabinProvisioning  datatypes.JSON `gorm:"type:jsonb" json:"cabin_provisioning,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Owner    User     `gorm:"foreignKey:OwnerID" json:"-"`
	Aircraft Aircraft `gorm:"foreignKey:AircraftID" json:"-"`
	Service  *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/models"
)

type CreateServiceRequestRequest struct {
	AircraftID  uuid.UUID  `json:"aircraft_id" validate:"required"`
	ServiceID   *uuid.UUID `json:"service_id,omitempty"`
	ServiceType string     `json:"service_type" validate:"max=255"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Notes       string     `json:"notes"`

	// Preflight fields
	IsPreflight        bool            `json:"is_preflight"`
	Airport            string          `json:"airport" validate:"max=10"`
	RequestedDeparture *time.Time      `json:"requested_departure,omitempty"`
	FuelGrade          string          `json:"fuel_grade" validate:"max=20"`
	FuelQuantity       float64         `json:"fuel_quantity" validate:"gte=0"`
	NeedsO2            bool            `json:"needs_o2"`
	NeedsTKS           bool            `json:"needs_tks"`
	NeedsGPU           bool            `json:"needs_gpu"`
	NeedsHangar        bool            `json:"needs_hangar"`
	CabinProvisioning  json.RawMessage `json:"cabin_provisioning,omitempty"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
}

type ServiceRequestListResponse struct {
	Requests []models.ServiceRequest `json:"requests"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	Limit    int                     `json:"limit"`
}

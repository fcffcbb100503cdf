package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	AircraftID uuid.UUID       `json:"aircraft_id" validate:"required"`
	Type       string          `json:"type" validate:"required,max=100"`
	AssigneeID *uuid.UUID      `json:"assignee_id,omitempty"`
	Notes      string          `json:"notes"`
	PhotoRefs  json.RawMessage `json:"photo_refs,omitempty"`
}

type UpdateTaskRequest struct {
	Status     *string         `json:"status,omitempty" validate:"omitempty,max=30"`
	AssigneeID *uuid.UUID      `json:"assignee_id,omitempty"`
	Notes      *string         `json:"notes,omitempty"`
	PhotoRefs  json.RawMessage `json:"photo_refs,omitempty"`
}

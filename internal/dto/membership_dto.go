package dto

import "github.com/google/uuid"

type CreateTierRequest struct {
	Name             string   `json:"name" validate:"required,max=100"`
	CreditMultiplier float64  `json:"credit_multiplier" validate:"gte=0"`
	MinMonthlyHours  float64  `json:"min_monthly_hours" validate:"gte=0"`
	MaxMonthlyHours  *float64 `json:"max_monthly_hours,omitempty" validate:"omitempty,gte=0"`
	SortOrder        int      `json:"sort_order"`
}

type UpdateTierRequest struct {
	Name             *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	CreditMultiplier *float64 `json:"credit_multiplier,omitempty" validate:"omitempty,gte=0"`
	MinMonthlyHours  *float64 `json:"min_monthly_hours,omitempty" validate:"omitempty,gte=0"`
	MaxMonthlyHours  *float64 `json:"max_monthly_hours,omitempty" validate:"omitempty,gte=0"`
	SortOrder        *int     `json:"sort_order,omitempty"`
}

type AssignMembershipRequest struct {
	OwnerID            uuid.UUID  `json:"owner_id" validate:"required"`
	TierID             *uuid.UUID `json:"tier_id,omitempty"`
	TierName           string     `json:"tier_name" validate:"max=100"`
	MonthlyFlightHours float64    `json:"monthly_flight_hours" validate:"gte=0"`
}

type UpdateFlightHoursRequest struct {
	MonthlyFlightHours float64 `json:"monthly_flight_hours" validate:"gte=0"`
}

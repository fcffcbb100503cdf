package dto

type CreateServiceRequest struct {
	Name                    string `json:"name" validate:"required,max=255"`
	Category                string `json:"category" validate:"required,oneof=maintenance detailing readiness training concierge"`
	Description             string `json:"description"`
	CreditsRequired         int    `json:"credits_required" validate:"gte=0"`
	CreditsPerPeriod        int    `json:"credits_per_period" validate:"gte=0"`
	CanRollover             bool   `json:"can_rollover"`
	BaseCreditsLowActivity  int    `json:"base_credits_low_activity" validate:"gte=0"`
	BaseCreditsHighActivity int    `json:"base_credits_high_activity" validate:"gte=0"`
}

type UpdateServiceRequest struct {
	Name                    *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Category                *string `json:"category,omitempty" validate:"omitempty,oneof=maintenance detailing readiness training concierge"`
	Description             *string `json:"description,omitempty"`
	Active                  *bool   `json:"active,omitempty"`
	CreditsRequired         *int    `json:"credits_required,omitempty" validate:"omitempty,gte=0"`
	CreditsPerPeriod        *int    `json:"credits_per_period,omitempty" validate:"omitempty,gte=0"`
	CanRollover             *bool   `json:"can_rollover,omitempty"`
	BaseCreditsLowActivity  *int    `json:"base_credits_low_activity,omitempty" validate:"omitempty,gte=0"`
	BaseCreditsHighActivity *int    `json:"base_credits_high_activity,omitempty" validate:"omitempty,gte=0"`
}

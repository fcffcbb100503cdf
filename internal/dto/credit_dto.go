package dto

import "github.com/google/uuid"

// ServiceCreditView is one row of the owner's credit overview: the catalog
// service, the computed monthly allotment, and the live balance.
type ServiceCreditView struct {
	ServiceID             uuid.UUID `json:"service_id"`
	ServiceName           string    `json:"service_name"`
	Category              string    `json:"category"`
	CreditsRequired       int       `json:"credits_required"`
	MonthlyAllotment      int       `json:"monthly_allotment"`
	CreditsAvailable      int       `json:"credits_available"`
	CreditsUsedThisPeriod int       `json:"credits_used_this_period"`
	CanRollover           bool      `json:"can_rollover"`
}

type CreditOverviewResponse struct {
	TierName         string              `json:"tier_name"`
	CreditMultiplier float64             `json:"credit_multiplier"`
	MonthlyHours     float64             `json:"monthly_hours"`
	Credits          []ServiceCreditView `json:"credits"`
}

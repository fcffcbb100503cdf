// Package credits computes membership tiers and monthly credit allotments
// from flight activity. Everything here is pure: missing or negative inputs
// are treated as zero and no function returns an error.
package credits

import (
	"math"

	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/models"
)

// Tier names by monthly flown hours. Brackets are inclusive on the lower
// bound: exactly 5 hours is a Regular Flyer.
const (
	TierLightFlyer    = "Light Flyer"
	TierRegularFlyer  = "Regular Flyer"
	TierFrequentFlyer = "Frequent Flyer"
	TierProfessional  = "Professional"
)

// Hour boundaries between tiers.
const (
	regularHours  = 5
	frequentHours = 15
	proHours      = 30

	// highActivityHours splits the two base-credit amounts on a service.
	highActivityHours = 10
)

// TierName maps monthly flown hours to a tier name.
func TierName(hours float64) string {
	switch {
	case hours < regularHours:
		return TierLightFlyer
	case hours < frequentHours:
		return TierRegularFlyer
	case hours < proHours:
		return TierFrequentFlyer
	default:
		return TierProfessional
	}
}

// TierMultiplier maps monthly flown hours to the tier credit multiplier.
func TierMultiplier(hours float64) float64 {
	switch {
	case hours < regularHours:
		return 0.5
	case hours < frequentHours:
		return 1.0
	case hours < proHours:
		return 1.5
	default:
		return 2.0
	}
}

// MonthlyCredits computes the effective monthly credit allotment for a
// service. Below 10 hours the low-activity base applies, otherwise the
// high-activity base. A non-positive multiplier means "not supplied" and
// falls back to the tier multiplier for hours. The result is floored.
func MonthlyCredits(hours float64, baseLow, baseHigh int, multiplier float64) int {
	if hours < 0 {
		hours = 0
	}
	if baseLow < 0 {
		baseLow = 0
	}
	if baseHigh < 0 {
		baseHigh = 0
	}
	if multiplier <= 0 {
		multiplier = TierMultiplier(hours)
	}

	base := baseLow
	if hours >= highActivityHours {
		base = baseHigh
	}
	return int(math.Floor(float64(base) * multiplier))
}

// MonthlyCreditsFor computes the allotment for each service, keyed by service
// ID, reusing one multiplier for the whole batch. Pass multiplier <= 0 to
// derive it from hours.
func MonthlyCreditsFor(services []models.Service, hours float64, multiplier float64) map[uuid.UUID]int {
	if multiplier <= 0 {
		multiplier = TierMultiplier(hours)
	}
	out := make(map[uuid.UUID]int, len(services))
	for _, svc := range services {
		out[svc.ID] = MonthlyCredits(hours, svc.BaseCreditsLowActivity, svc.BaseCreditsHighActivity, multiplier)
	}
	return out
}

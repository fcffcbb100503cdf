package credits

import (
	"testing"

	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		hours      float64
		tier       string
		multiplier float64
	}{
		{"zero hours", 0, TierLightFlyer, 0.5},
		{"just under regular", 4.9, TierLightFlyer, 0.5},
		{"exactly five", 5, TierRegularFlyer, 1.0},
		{"mid regular", 8, TierRegularFlyer, 1.0},
		{"just under frequent", 14.99, TierRegularFlyer, 1.0},
		{"exactly fifteen", 15, TierFrequentFlyer, 1.5},
		{"mid frequent", 22, TierFrequentFlyer, 1.5},
		{"just under pro", 29.9, TierFrequentFlyer, 1.5},
		{"exactly thirty", 30, TierProfessional, 2.0},
		{"heavy usage", 120, TierProfessional, 2.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.tier, TierName(tc.hours))
			assert.Equal(t, tc.multiplier, TierMultiplier(tc.hours))
		})
	}
}

func TestMonthlyCredits(t *testing.T) {
	tests := []struct {
		name       string
		hours      float64
		baseLow    int
		baseHigh   int
		multiplier float64
		want       int
	}{
		{"low activity uses low base", 8, 4, 10, 1.0, 4},
		{"high activity uses high base", 12, 4, 10, 1.0, 10},
		{"boundary ten is high activity", 10, 4, 10, 1.0, 10},
		{"result is floored", 8, 5, 10, 0.5, 2},
		{"floored high base", 20, 4, 7, 1.5, 10},
		{"unset multiplier derives from hours", 3, 4, 10, 0, 2},
		{"unset multiplier high hours", 35, 4, 10, 0, 20},
		{"negative hours clamp to zero", -2, 4, 10, 1.0, 4},
		{"negative bases clamp to zero", 8, -4, -10, 1.0, 0},
		{"zero bases", 8, 0, 0, 2.0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MonthlyCredits(tc.hours, tc.baseLow, tc.baseHigh, tc.multiplier)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMonthlyCreditsForBatch(t *testing.T) {
	wash := models.Service{ID: uuid.New(), BaseCreditsLowActivity: 4, BaseCreditsHighActivity: 10}
	oil := models.Service{ID: uuid.New(), BaseCreditsLowActivity: 1, BaseCreditsHighActivity: 2}
	services := []models.Service{wash, oil}

	got := MonthlyCreditsFor(services, 8, 1.0)
	require.Len(t, got, 2)
	assert.Equal(t, 4, got[wash.ID])
	assert.Equal(t, 1, got[oil.ID])

	// raising activity past the threshold switches to the high base
	high := MonthlyCreditsFor(services, 12, 1.0)
	assert.Equal(t, 10, high[wash.ID])
	assert.Equal(t, 2, high[oil.ID])
}

func TestMonthlyCreditsForIdempotent(t *testing.T) {
	services := []models.Service{
		{ID: uuid.New(), BaseCreditsLowActivity: 3, BaseCreditsHighActivity: 6},
		{ID: uuid.New(), BaseCreditsLowActivity: 5, BaseCreditsHighActivity: 8},
	}

	first := MonthlyCreditsFor(services, 17, 0)
	second := MonthlyCreditsFor(services, 17, 0)
	assert.Equal(t, first, second)
}

func TestMonthlyCreditsForDerivesMultiplier(t *testing.T) {
	svc := models.Service{ID: uuid.New(), BaseCreditsLowActivity: 4, BaseCreditsHighActivity: 10}

	// 17 hours: Frequent Flyer, multiplier 1.5, high-activity base
	got := MonthlyCreditsFor([]models.Service{svc}, 17, 0)
	assert.Equal(t, 15, got[svc.ID])
}

package services

import (
	"strings"
	"testing"
	"time"

	"github.com/skyharboraero/flightline-backend/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestComposePreflightDescriptionAllFields(t *testing.T) {
	dep := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	req := &dto.CreateServiceRequestRequest{
		IsPreflight:        true,
		Airport:            "KAPA",
		RequestedDeparture: &dep,
		FuelGrade:          "100LL",
		FuelQuantity:       40,
		NeedsO2:            true,
		NeedsTKS:           true,
		Notes:              "Two pax, light bags.",
	}

	got := ComposePreflightDescription(req)

	assert.True(t, strings.HasPrefix(got, "PREFLIGHT SERVICE REQUEST"))
	assert.Contains(t, got, "Flight Time: Mar 14, 2026 09:30 UTC from KAPA")
	assert.Contains(t, got, "Fuel: 100LL, 40.0 gal")
	assert.Contains(t, got, "Fluids/Ground: O2 top-off, TKS fill")
	assert.Contains(t, got, "Additional Notes:\nTwo pax, light bags.")
}

func TestComposePreflightDescriptionNotesOnly(t *testing.T) {
	req := &dto.CreateServiceRequestRequest{
		IsPreflight: true,
		Notes:       "Just pull her out of the hangar.",
	}

	got := ComposePreflightDescription(req)

	// header still wraps, but no optional lines appear
	assert.Equal(t,
		"PREFLIGHT SERVICE REQUEST\nAdditional Notes:\nJust pull her out of the hangar.",
		got)
}

func TestComposePreflightDescriptionEmpty(t *testing.T) {
	req := &dto.CreateServiceRequestRequest{IsPreflight: true}
	assert.Equal(t, "PREFLIGHT SERVICE REQUEST", ComposePreflightDescription(req))
}

func TestComposePreflightDescriptionPartialFuel(t *testing.T) {
	tests := []struct {
		name     string
		grade    string
		quantity float64
		want     string
	}{
		{"grade only", "Jet A", 0, "Fuel: Jet A"},
		{"quantity only", "", 25.5, "Fuel: 25.5 gal"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := &dto.CreateServiceRequestRequest{
				IsPreflight:  true,
				FuelGrade:    tc.grade,
				FuelQuantity: tc.quantity,
			}
			assert.Contains(t, ComposePreflightDescription(req), tc.want)
		})
	}
}

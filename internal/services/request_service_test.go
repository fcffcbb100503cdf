package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/dto"
	"github.com/skyharboraero/flightline-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestIsCustom(t *testing.T) {
	serviceID := uuid.New()

	tests := []struct {
		name        string
		serviceID   *uuid.UUID
		serviceType string
		want        bool
	}{
		{"no service id", nil, "", true},
		{"no service id with free text type", nil, "Window tint", true},
		{"sentinel type overrides service id", &serviceID, "custom", true},
		{"sentinel match is case-insensitive", &serviceID, "CUSTOM", true},
		{"mixed case sentinel", &serviceID, "Custom", true},
		{"catalog service", &serviceID, "Exterior Wash", false},
		{"catalog service, empty type", &serviceID, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := &dto.CreateServiceRequestRequest{
				ServiceID:   tc.serviceID,
				ServiceType: tc.serviceType,
			}
			assert.Equal(t, tc.want, isCustom(req))
		})
	}
}

func TestApplyCustomServiceNeverCovered(t *testing.T) {
	// whatever the submission carried, a custom request bills as an extra
	// charge with zero credits consumed
	record := models.ServiceRequest{
		ServiceType:   "Window tint",
		IsExtraCharge: false,
		CreditsUsed:   3,
	}
	applyCustomService(&record)

	assert.True(t, record.IsExtraCharge)
	assert.Equal(t, 0, record.CreditsUsed)
	assert.Equal(t, "Window tint", record.ServiceType)
}

func TestApplyCustomServiceDefaultsType(t *testing.T) {
	record := models.ServiceRequest{}
	applyCustomService(&record)

	assert.True(t, record.IsExtraCharge)
	assert.Equal(t, 0, record.CreditsUsed)
	assert.Equal(t, models.CustomServiceSentinel, record.ServiceType)
}

func TestNormalizePriority(t *testing.T) {
	assert.Equal(t, models.PriorityLow, normalizePriority("low"))
	assert.Equal(t, models.PriorityHigh, normalizePriority("high"))
	assert.Equal(t, models.PriorityMedium, normalizePriority(""))
	assert.Equal(t, models.PriorityMedium, normalizePriority("urgent"))
}

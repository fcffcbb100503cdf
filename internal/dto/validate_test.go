package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterRequest(t *testing.T) {
	ok := RegisterRequest{Email: "owner@example.com", Password: "longenough"}
	assert.Nil(t, Validate(&ok))

	bad := RegisterRequest{Email: "not-an-email", Password: "short"}
	fields := Validate(&bad)
	require.Len(t, fields, 2)
	assert.Equal(t, "email", fields[0].Field)
	assert.Equal(t, "email", fields[0].Rule)
	assert.Equal(t, "password", fields[1].Field)
	assert.Equal(t, "min=8", fields[1].Rule)
}

func TestValidateCreateServiceRequest(t *testing.T) {
	ok := CreateServiceRequest{Name: "Exterior Wash", Category: "detailing"}
	assert.Nil(t, Validate(&ok))

	bad := CreateServiceRequest{Name: "Catering", Category: "catering", CreditsRequired: -1}
	fields := Validate(&bad)
	require.Len(t, fields, 2)
	assert.Equal(t, "category", fields[0].Field)
	assert.Equal(t, "oneof=maintenance detailing readiness training concierge", fields[0].Rule)
	assert.Equal(t, "creditsrequired", fields[1].Field)
}

func TestValidateCreateServiceRequestRequest(t *testing.T) {
	ok := CreateServiceRequestRequest{AircraftID: uuid.New(), Priority: "high"}
	assert.Nil(t, Validate(&ok))

	// missing aircraft and unknown priority
	bad := CreateServiceRequestRequest{Priority: "urgent"}
	fields := Validate(&bad)
	require.Len(t, fields, 2)
	assert.Equal(t, "aircraftid", fields[0].Field)
	assert.Equal(t, "required", fields[0].Rule)
	assert.Equal(t, "priority", fields[1].Field)
}

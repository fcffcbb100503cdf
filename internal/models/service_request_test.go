package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from RequestStatus
		to   RequestStatus
		want bool
	}{
		{"pending to in_progress", RequestPending, RequestInProgress, true},
		{"pending straight to completed", RequestPending, RequestCompleted, true},
		{"pending to cancelled", RequestPending, RequestCancelled, true},
		{"in_progress to completed", RequestInProgress, RequestCompleted, true},
		{"in_progress to cancelled", RequestInProgress, RequestCancelled, true},
		{"in_progress back to pending", RequestInProgress, RequestPending, false},
		{"completed is terminal", RequestCompleted, RequestCancelled, false},
		{"cancelled is terminal", RequestCancelled, RequestPending, false},
		{"cancelled cannot complete", RequestCancelled, RequestCompleted, false},
		{"no self transition", RequestPending, RequestPending, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}

func TestRequestStatusValid(t *testing.T) {
	assert.True(t, RequestPending.Valid())
	assert.True(t, RequestInProgress.Valid())
	assert.True(t, RequestCompleted.Valid())
	assert.True(t, RequestCancelled.Valid())
	assert.False(t, RequestStatus("approved").Valid())
	assert.False(t, RequestStatus("").Valid())
}

func TestRequestStatusTerminal(t *testing.T) {
	assert.False(t, RequestPending.Terminal())
	assert.False(t, RequestInProgress.Terminal())
	assert.True(t, RequestCompleted.Terminal())
	assert.True(t, RequestCancelled.Terminal())
}

func TestValidCategory(t *testing.T) {
	for _, c := range ServiceCategories {
		assert.True(t, ValidCategory(c))
	}
	assert.False(t, ValidCategory("catering"))
	assert.False(t, ValidCategory(""))
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecideBilling(t *testing.T) {
	tests := []struct {
		name        string
		available   int
		required    int
		extraCharge bool
		creditsUsed int
	}{
		{"covered with surplus", 5, 3, false, 3},
		{"exactly enough", 3, 3, false, 3},
		{"insufficient balance", 2, 3, true, 0},
		{"zero balance", 0, 1, true, 0},
		{"unset required defaults to one", 1, 0, false, 1},
		{"unset required, empty balance", 0, 0, true, 0},
		{"negative required treated as one", 2, -4, false, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			extra, used := DecideBilling(tc.available, tc.required)
			assert.Equal(t, tc.extraCharge, extra)
			assert.Equal(t, tc.creditsUsed, used)
		})
	}
}

func TestSameCreditPeriod(t *testing.T) {
	base := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

	assert.True(t, SameCreditPeriod(base, base.AddDate(0, 0, -28)))
	assert.False(t, SameCreditPeriod(base, base.AddDate(0, -1, 0)))
	// same month number in a different year is a new period
	assert.False(t, SameCreditPeriod(base, base.AddDate(-1, 0, 0)))
}

func TestResetBalance(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		allotment int
		rollover  bool
		want      int
	}{
		{"no rollover discards remainder", 3, 10, false, 10},
		{"rollover carries remainder", 3, 10, true, 13},
		{"rollover with empty balance", 0, 10, true, 10},
		{"negative balance clamps", -2, 10, true, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResetBalance(tc.current, tc.allotment, tc.rollover))
		})
	}
}

package services

import (
	"testing"

	"github.com/skyharboraero/flightline-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDeriveReadinessNoTasks(t *testing.T) {
	assert.Equal(t, AircraftReady, DeriveReadiness(nil))
	assert.Equal(t, AircraftReady, DeriveReadiness([]models.ServiceTask{}))
}

func TestDeriveReadinessOpenTaskFlips(t *testing.T) {
	tasks := []models.ServiceTask{
		{Type: "oil", Status: "pending"},
	}
	assert.Equal(t, AircraftNeedsService, DeriveReadiness(tasks))

	// completing the task flips the aircraft back to Ready
	tasks[0].Status = models.TaskCompleted
	assert.Equal(t, AircraftReady, DeriveReadiness(tasks))
}

func TestDeriveReadinessCases(t *testing.T) {
	tests := []struct {
		name  string
		tasks []models.ServiceTask
		want  string
	}{
		{
			"irrelevant open task",
			[]models.ServiceTask{{Type: "logbook entry", Status: "pending"}},
			AircraftReady,
		},
		{
			"keyword match is case-insensitive",
			[]models.ServiceTask{{Type: "Exterior Detail", Status: "in_progress"}},
			AircraftNeedsService,
		},
		{
			"keyword inside longer type",
			[]models.ServiceTask{{Type: "50hr oil change", Status: "pending"}},
			AircraftNeedsService,
		},
		{
			"cancelled tasks do not count",
			[]models.ServiceTask{{Type: "tks refill", Status: models.TaskCancelled}},
			AircraftReady,
		},
		{
			"db_update keyword",
			[]models.ServiceTask{{Type: "nav db_update", Status: "pending"}},
			AircraftNeedsService,
		},
		{
			"o2 keyword",
			[]models.ServiceTask{{Type: "O2 service", Status: "waiting_parts"}},
			AircraftNeedsService,
		},
		{
			"mix of closed relevant and open irrelevant",
			[]models.ServiceTask{
				{Type: "cabin clean", Status: models.TaskCompleted},
				{Type: "paperwork", Status: "pending"},
			},
			AircraftReady,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveReadiness(tc.tasks))
		})
	}
}

func TestOpenReadinessTasks(t *testing.T) {
	tasks := []models.ServiceTask{
		{Type: "oil change", Status: "pending"},
		{Type: "detail", Status: models.TaskCompleted},
		{Type: "annual paperwork", Status: "pending"},
		{Type: "readiness check", Status: "in_progress"},
	}

	open := OpenReadinessTasks(tasks)
	assert.Equal(t, []string{"oil change", "readiness check"}, open)
}

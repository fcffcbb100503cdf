package services

import (
	"strings"

	"github.com/skyharboraero/flightline-backend/internal/models"
)

// Derived readiness values. Nothing is stored; readiness is recomputed from
// the task list every time it is displayed.
const (
	AircraftReady        = "Ready"
	AircraftNeedsService = "Needs Service"
)

// ReadinessKeywords is the vocabulary a task type is matched against,
// case-insensitively, to decide whether the task is readiness-relevant. Task
// type is free text; anything not containing one of these keywords (a
// paperwork task, say) does not ground the aircraft.
var ReadinessKeywords = []string{
	"readiness",
	"clean",
	"detail",
	"oil",
	"o2",
	"tks",
	"db_update",
}

// DeriveReadiness returns AircraftNeedsService when any open task (status not
// completed/cancelled) is readiness-relevant, otherwise AircraftReady. An
// aircraft with no tasks is Ready.
func DeriveReadiness(tasks []models.ServiceTask) string {
	for _, task := range tasks {
		if taskClosed(task.Status) {
			continue
		}
		if readinessRelevant(task.Type) {
			return AircraftNeedsService
		}
	}
	return AircraftReady
}

// OpenReadinessTasks returns the types of the open tasks blocking readiness.
func OpenReadinessTasks(tasks []models.ServiceTask) []string {
	var open []string
	for _, task := range tasks {
		if taskClosed(task.Status) {
			continue
		}
		if readinessRelevant(task.Type) {
			open = append(open, task.Type)
		}
	}
	return open
}

func taskClosed(status string) bool {
	return status == models.TaskCompleted || status == models.TaskCancelled
}

func readinessRelevant(taskType string) bool {
	lower := strings.ToLower(taskType)
	for _, kw := range ReadinessKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

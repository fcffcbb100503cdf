package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/dto"
	"github.com/skyharboraero/flightline-backend/internal/events"
	"github.com/skyharboraero/flightline-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("service task not found")

type TaskService struct {
	db  *gorm.DB
	bus *events.Bus
}

func NewTaskService(db *gorm.DB, bus *events.Bus) *TaskService {
	return &TaskService{db: db, bus: bus}
}

// Create opens a task on an aircraft. Staff only.
func (s *TaskService) Create(req *dto.CreateTaskRequest) (*models.ServiceTask, error) {
	var aircraft models.Aircraft
	if err := s.db.First(&aircraft, "id = ?", req.AircraftID).Error; err != nil {
		return nil, ErrAircraftNotFound
	}

	task := models.ServiceTask{
		ID:         uuid.New(),
		AircraftID: aircraft.ID,
		Type:       req.Type,
		Status:     "pending",
		AssigneeID: req.AssigneeID,
		Notes:      req.Notes,
	}
	if len(req.PhotoRefs) > 0 {
		task.PhotoRefs = datatypes.JSON(req.PhotoRefs)
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.publish("created", &task, aircraft.OwnerID)
	return &task, nil
}

// Update mutates an open task. Setting status to completed stamps the
// completion time; re-opening clears it.
func (s *TaskService) Update(taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.ServiceTask, error) {
	var task models.ServiceTask
	if err := s.db.Preload("Aircraft").First(&task, "id = ?", taskID).Error; err != nil {
		return nil, ErrTaskNotFound
	}

	if req.Status != nil {
		task.Status = *req.Status
		if task.Status == models.TaskCompleted {
			now := time.Now()
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
	}
	if req.AssigneeID != nil {
		task.AssigneeID = req.AssigneeID
	}
	if req.Notes != nil {
		task.Notes = *req.Notes
	}
	if len(req.PhotoRefs) > 0 {
		task.PhotoRefs = datatypes.JSON(req.PhotoRefs)
	}

	if err := s.db.Save(&task).Error; err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.publish("updated", &task, task.Aircraft.OwnerID)
	return &task, nil
}

// ListByAircraft returns an aircraft's tasks, newest first.
func (s *TaskService) ListByAircraft(aircraftID uuid.UUID) ([]models.ServiceTask, error) {
	var tasks []models.ServiceTask
	err := s.db.Where("aircraft_id = ?", aircraftID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Readiness derives the aircraft's status from its current task list.
func (s *TaskService) Readiness(aircraftID uuid.UUID) (*dto.ReadinessResponse, error) {
	tasks, err := s.ListByAircraft(aircraftID)
	if err != nil {
		return nil, err
	}
	return &dto.ReadinessResponse{
		AircraftID: aircraftID.String(),
		Readiness:  DeriveReadiness(tasks),
		OpenTasks:  OpenReadinessTasks(tasks),
	}, nil
}

func (s *TaskService) publish(action string, task *models.ServiceTask, ownerID uuid.UUID) {
	s.bus.Publish(events.Event{
		Topic:      events.TopicServiceTasks,
		Action:     action,
		EntityID:   task.ID,
		OwnerID:    ownerID,
		AircraftID: task.AircraftID,
	})
}

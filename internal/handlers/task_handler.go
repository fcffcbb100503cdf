package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/skyharboraero/flightline-backend/internal/dto"
	"github.com/skyharboraero/flightline-backend/internal/services"
)

// TaskHandler covers the staff side of service tasks; owners read tasks
// through the aircraft timeline.
type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// Create handles POST /admin/tasks.
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := dto.Validate(&req); fields != nil {
		return validationFailed(c, fields)
	}

	task, err := h.taskService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrAircraftNotFound) {
			return notFound(c, "Aircraft not found")
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// Update handles PATCH /admin/tasks/:id.
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fields := dto.Validate(&req); fields != nil {
		return validationFailed(c, fields)
	}

	task, err := h.taskService.Update(taskID, &req)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return notFound(c, "Task not found")
		}
		return internalError(c)
	}
	return c.JSON(task)
}

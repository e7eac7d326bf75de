package controllers

import (
	"log/slog"
	"net/http"
	"time"

	h "happenly/internal/delivery/http/helpers"
	"happenly/internal/delivery/http/middleware"
	"happenly/internal/domain"
)

// AddTaskRequest is the request body for POST /events/{eventID}/tasks.
type AddTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     string  `json:"due_date"`
	AssignedTo  string  `json:"assigned_to"`
	Status      *string `json:"status"`
}

// Validate implements Validator.
func (t AddTaskRequest) Validate() []string {
	var errs []string
	if t.Title == "" {
		errs = append(errs, "title is required")
	}
	if t.DueDate == "" {
		errs = append(errs, "due_date is required")
	}
	if t.Status != nil && !domain.KnownTaskStatus(*t.Status) {
		errs = append(errs, "status must be one of: Not Started, In Progress, Completed")
	}
	return errs
}

// UpdateTaskRequest is the request body for PATCH /events/{eventID}/tasks/{taskID}.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	AssignedTo  *string `json:"assigned_to"`
	Status      *string `json:"status"`
}

// Validate implements Validator.
func (t UpdateTaskRequest) Validate() []string {
	var errs []string
	if t.Title != nil && *t.Title == "" {
		errs = append(errs, "title must not be empty")
	}
	if t.Status != nil && !domain.KnownTaskStatus(*t.Status) {
		errs = append(errs, "status must be one of: Not Started, In Progress, Completed")
	}
	return errs
}

type TaskController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewTaskController(logger *slog.Logger, svc domain.EventService) *TaskController {
	return &TaskController{
		Logger:  logger,
		Service: svc,
	}
}

// AddTask godoc
// @Summary Add a task to an event
// @Description Adds a to-do task. Status defaults to "Not Started". Only the event owner can add tasks.
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body AddTaskRequest true "Task data"
// @Success 201 {object} helpers.APIResponse "data contains the created task"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/tasks [post]
func (c *TaskController) AddTask(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	var req AddTaskRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	now := time.Now()
	task := domain.NewTask(eventID, req.Title, req.DueDate, req.AssignedTo, now, now)
	task.Description = req.Description
	if req.Status != nil {
		task.Status = *req.Status
	}
	if err := c.Service.AddTask(r.Context(), eventID, userID, task); err != nil {
		respondServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, task)
}

// ListTasks godoc
// @Summary List tasks of an event
// @Description Returns all tasks of the event. Only the event owner can list tasks.
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the task list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/tasks [get]
func (c *TaskController) ListTasks(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	tasks, err := c.Service.ListTasks(r.Context(), eventID, userID)
	if err != nil {
		respondServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, tasks)
}

// UpdateTask godoc
// @Summary Update a task
// @Description Updates task fields, including status. Only the event owner can update.
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param taskID path string true "Task ID (UUID)"
// @Param body body UpdateTaskRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated task"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/tasks/{taskID} [patch]
func (c *TaskController) UpdateTask(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	taskID := r.PathValue("taskID")
	var req UpdateTaskRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	upd := domain.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
		Status:      req.Status,
	}
	task, err := c.Service.UpdateTask(r.Context(), eventID, taskID, userID, upd)
	if err != nil {
		respondServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, task)
}

// RemoveTask godoc
// @Summary Remove a task
// @Description Removes a task from the event. Only the event owner can remove tasks.
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param taskID path string true "Task ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/tasks/{taskID} [delete]
func (c *TaskController) RemoveTask(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	taskID := r.PathValue("taskID")
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.RemoveTask(r.Context(), eventID, taskID, userID); err != nil {
		respondServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "task removed"})
}

package domain

import (
	"context"
	"time"
)

// Task statuses. Unrecognized values count toward totals only (see report package).
const (
	TaskNotStarted = "Not Started"
	TaskInProgress = "In Progress"
	TaskCompleted  = "Completed"
)

// KnownTaskStatus reports whether s is one of the three task statuses.
func KnownTaskStatus(s string) bool {
	switch s {
	case TaskNotStarted, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// Task represents a to-do item for an event. DueDate is a calendar date
// string (YYYY-MM-DD).
// swagger:model Task
type Task struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	DueDate     string    `json:"due_date"`
	AssignedTo  string    `json:"assigned_to"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask returns a new Task with status defaulted to Not Started. ID is typically set by the repository on create.
func NewTask(eventID, title, dueDate, assignedTo string, createdAt, updatedAt time.Time) *Task {
	return &Task{
		EventID:    eventID,
		Title:      title,
		DueDate:    dueDate,
		AssignedTo: assignedTo,
		Status:     TaskNotStarted,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

// TaskUpdate carries optional field updates for a task. Nil fields are unchanged.
type TaskUpdate struct {
	Title       *string
	Description *string
	DueDate     *string
	AssignedTo  *string
	Status      *string
}

// TaskReminder is a pending task joined with its event and the owner's
// email address, used by the reminder scheduler.
type TaskReminder struct {
	TaskTitle  string
	DueDate    string
	AssignedTo string
	EventTitle string
	OwnerEmail string
}

// TaskRepository defines the interface for task storage
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id string) (*Task, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Task, error)
	Update(ctx context.Context, id string, upd TaskUpdate) (*Task, error)
	Delete(ctx context.Context, id string) error
	// ListRemindersDueOn returns non-completed tasks due on the given date
	// (YYYY-MM-DD) together with event title and owner email.
	ListRemindersDueOn(ctx context.Context, date string) ([]*TaskReminder, error)
}

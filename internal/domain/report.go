package domain

import (
	"context"
	"time"
)

// RSVPBreakdown is the guest count per RSVP status. Total counts every
// guest, including those with an unrecognized status.
// swagger:model RSVPBreakdown
type RSVPBreakdown struct {
	Accepted int `json:"accepted"`
	Pending  int `json:"pending"`
	Declined int `json:"declined"`
	Total    int `json:"total"`
}

// BudgetSummary compares the event budget against total vendor spend.
// Remaining may be negative when the event is over budget.
// swagger:model BudgetSummary
type BudgetSummary struct {
	Budget    float64 `json:"budget"`
	Spend     float64 `json:"spend"`
	Remaining float64 `json:"remaining"`
}

// TaskBreakdown is the task count per status. Total counts every task,
// including those with an unrecognized status.
// swagger:model TaskBreakdown
type TaskBreakdown struct {
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	NotStarted int `json:"not_started"`
	Total      int `json:"total"`
}

// EventDashboard is the full per-event summary served by the dashboard endpoint.
// swagger:model EventDashboard
type EventDashboard struct {
	Event  *Event        `json:"event"`
	RSVP   RSVPBreakdown `json:"rsvp"`
	Budget BudgetSummary `json:"budget"`
	Tasks  TaskBreakdown `json:"tasks"`
}

// TimeBlock is a display-ready calendar interval derived from an event.
// swagger:model TimeBlock
type TimeBlock struct {
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Color string    `json:"color"`
}

// DashboardService computes per-event summary statistics.
type DashboardService interface {
	GetEventDashboard(ctx context.Context, eventID, callerID string) (*EventDashboard, error)
}

// CalendarService projects a user's events into calendar time blocks.
type CalendarService interface {
	ListTimeBlocks(ctx context.Context, ownerID string) ([]TimeBlock, error)
	ExportICS(ctx context.Context, ownerID string) (string, error)
}

package domain

import (
	"context"
	"time"
)

// Event statuses. Stored as plain strings; values outside this set are
// tolerated on read (see report package) but rejected on write.
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
)

// DefaultEventTime is assigned when an event is created without a time of day.
const DefaultEventTime = "18:00:00"

// KnownEventStatus reports whether s is one of the three event statuses.
func KnownEventStatus(s string) bool {
	switch s {
	case EventStatusUpcoming, EventStatusOngoing, EventStatusCompleted:
		return true
	}
	return false
}

// Event represents a planned occasion owned by a user.
// Date is a calendar date string (YYYY-MM-DD) and Time an optional
// time-of-day string (HH:MM:SS); both are parsed only at the calendar
// projection boundary.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Date        string    `json:"date"`
	Time        *string   `json:"time"`
	Venue       *string   `json:"venue"`
	Category    *string   `json:"category"`
	Budget      float64   `json:"budget"`
	Status      string    `json:"status"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(title, date, ownerID string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:     title,
		Date:      date,
		Status:    EventStatusUpcoming,
		OwnerID:   ownerID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// EventUpdate carries optional field updates for an event. Nil fields are unchanged.
type EventUpdate struct {
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Venue       *string
	Category    *string
	Budget      *float64
	Status      *string
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*Event, error)
	Update(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for events and their guest,
// vendor, and task sub-resources. Every operation takes the caller's user ID
// and enforces event ownership.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEvent(ctx context.Context, eventID, callerID string) (*Event, error)
	ListEventsByOwner(ctx context.Context, ownerID string) ([]*Event, error)
	UpdateEvent(ctx context.Context, eventID, callerID string, upd EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, eventID, callerID string) error

	AddGuest(ctx context.Context, eventID, callerID string, guest *Guest) error
	ListGuests(ctx context.Context, eventID, callerID string) ([]*Guest, error)
	UpdateGuest(ctx context.Context, eventID, guestID, callerID string, upd GuestUpdate) (*Guest, error)
	RemoveGuest(ctx context.Context, eventID, guestID, callerID string) error

	AddVendor(ctx context.Context, eventID, callerID string, vendor *Vendor) error
	ListVendors(ctx context.Context, eventID, callerID string) ([]*Vendor, error)
	UpdateVendor(ctx context.Context, eventID, vendorID, callerID string, upd VendorUpdate) (*Vendor, error)
	RemoveVendor(ctx context.Context, eventID, vendorID, callerID string) error

	AddTask(ctx context.Context, eventID, callerID string, task *Task) error
	ListTasks(ctx context.Context, eventID, callerID string) ([]*Task, error)
	UpdateTask(ctx context.Context, eventID, taskID, callerID string, upd TaskUpdate) (*Task, error)
	RemoveTask(ctx context.Context, eventID, taskID, callerID string) error
}

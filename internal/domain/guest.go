package domain

import (
	"context"
	"time"
)

// RSVP statuses. Unrecognized values count toward totals only (see report package).
const (
	RSVPPending  = "Pending"
	RSVPAccepted = "Accepted"
	RSVPDeclined = "Declined"
)

// KnownRSVPStatus reports whether s is one of the three RSVP statuses.
func KnownRSVPStatus(s string) bool {
	switch s {
	case RSVPPending, RSVPAccepted, RSVPDeclined:
		return true
	}
	return false
}

// Guest represents an invited guest of an event.
// swagger:model Guest
type Guest struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Contact    *string   `json:"contact"`
	RSVPStatus string    `json:"rsvp_status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewGuest returns a new Guest with RSVP defaulted to Pending. ID is typically set by the repository on create.
func NewGuest(eventID, name, email string, createdAt, updatedAt time.Time) *Guest {
	return &Guest{
		EventID:    eventID,
		Name:       name,
		Email:      email,
		RSVPStatus: RSVPPending,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

// GuestUpdate carries optional field updates for a guest. Nil fields are unchanged.
type GuestUpdate struct {
	Name       *string
	Email      *string
	Contact    *string
	RSVPStatus *string
}

// GuestRepository defines the interface for guest storage
type GuestRepository interface {
	Create(ctx context.Context, guest *Guest) error
	GetByID(ctx context.Context, id string) (*Guest, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Guest, error)
	Update(ctx context.Context, id string, upd GuestUpdate) (*Guest, error)
	Delete(ctx context.Context, id string) error
}

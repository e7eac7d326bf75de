package domain

import (
	"context"
	"time"
)

// Vendor represents a hired vendor for an event (caterer, DJ, etc.).
// Cost is nullable in storage; a nil cost counts as zero spend.
// swagger:model Vendor
type Vendor struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	Type      *string   `json:"type"`
	Contact   *string   `json:"contact"`
	Cost      *float64  `json:"cost"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewVendor returns a new Vendor. ID is typically set by the repository on create.
func NewVendor(eventID, name string, createdAt, updatedAt time.Time) *Vendor {
	return &Vendor{
		EventID:   eventID,
		Name:      name,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// VendorUpdate carries optional field updates for a vendor. Nil fields are unchanged.
type VendorUpdate struct {
	Name    *string
	Type    *string
	Contact *string
	Cost    *float64
}

// VendorRepository defines the interface for vendor storage
type VendorRepository interface {
	Create(ctx context.Context, vendor *Vendor) error
	GetByID(ctx context.Context, id string) (*Vendor, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Vendor, error)
	Update(ctx context.Context, id string, upd VendorUpdate) (*Vendor, error)
	Delete(ctx context.Context, id string) error
}

package controllers

import (
	"context"
	"log/slog"

	"happenly/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// stubEventService implements domain.EventService with overridable hooks.
// Unset hooks return zero values.
type stubEventService struct {
	createEvent func(ctx context.Context, event *domain.Event) error
	getEvent    func(ctx context.Context, eventID, callerID string) (*domain.Event, error)
	listEvents  func(ctx context.Context, ownerID string) ([]*domain.Event, error)
	updateEvent func(ctx context.Context, eventID, callerID string, upd domain.EventUpdate) (*domain.Event, error)
	deleteEvent func(ctx context.Context, eventID, callerID string) error

	addGuest    func(ctx context.Context, eventID, callerID string, guest *domain.Guest) error
	listGuests  func(ctx context.Context, eventID, callerID string) ([]*domain.Guest, error)
	updateGuest func(ctx context.Context, eventID, guestID, callerID string, upd domain.GuestUpdate) (*domain.Guest, error)
	removeGuest func(ctx context.Context, eventID, guestID, callerID string) error

	addVendor    func(ctx context.Context, eventID, callerID string, vendor *domain.Vendor) error
	listVendors  func(ctx context.Context, eventID, callerID string) ([]*domain.Vendor, error)
	updateVendor func(ctx context.Context, eventID, vendorID, callerID string, upd domain.VendorUpdate) (*domain.Vendor, error)
	removeVendor func(ctx context.Context, eventID, vendorID, callerID string) error

	addTask    func(ctx context.Context, eventID, callerID string, task *domain.Task) error
	listTasks  func(ctx context.Context, eventID, callerID string) ([]*domain.Task, error)
	updateTask func(ctx context.Context, eventID, taskID, callerID string, upd domain.TaskUpdate) (*domain.Task, error)
	removeTask func(ctx context.Context, eventID, taskID, callerID string) error
}

func (s *stubEventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	if s.createEvent != nil {
		return s.createEvent(ctx, event)
	}
	return nil
}

func (s *stubEventService) GetEvent(ctx context.Context, eventID, callerID string) (*domain.Event, error) {
	if s.getEvent != nil {
		return s.getEvent(ctx, eventID, callerID)
	}
	return nil, domain.ErrNotFound
}

func (s *stubEventService) ListEventsByOwner(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	if s.listEvents != nil {
		return s.listEvents(ctx, ownerID)
	}
	return []*domain.Event{}, nil
}

func (s *stubEventService) UpdateEvent(ctx context.Context, eventID, callerID string, upd domain.EventUpdate) (*domain.Event, error) {
	if s.updateEvent != nil {
		return s.updateEvent(ctx, eventID, callerID, upd)
	}
	return nil, domain.ErrNotFound
}

func (s *stubEventService) DeleteEvent(ctx context.Context, eventID, callerID string) error {
	if s.deleteEvent != nil {
		return s.deleteEvent(ctx, eventID, callerID)
	}
	return nil
}

func (s *stubEventService) AddGuest(ctx context.Context, eventID, callerID string, guest *domain.Guest) error {
	if s.addGuest != nil {
		return s.addGuest(ctx, eventID, callerID, guest)
	}
	return nil
}

func (s *stubEventService) ListGuests(ctx context.Context, eventID, callerID string) ([]*domain.Guest, error) {
	if s.listGuests != nil {
		return s.listGuests(ctx, eventID, callerID)
	}
	return []*domain.Guest{}, nil
}

func (s *stubEventService) UpdateGuest(ctx context.Context, eventID, guestID, callerID string, upd domain.GuestUpdate) (*domain.Guest, error) {
	if s.updateGuest != nil {
		return s.updateGuest(ctx, eventID, guestID, callerID, upd)
	}
	return nil, domain.ErrNotFound
}

func (s *stubEventService) RemoveGuest(ctx context.Context, eventID, guestID, callerID string) error {
	if s.removeGuest != nil {
		return s.removeGuest(ctx, eventID, guestID, callerID)
	}
	return nil
}

func (s *stubEventService) AddVendor(ctx context.Context, eventID, callerID string, vendor *domain.Vendor) error {
	if s.addVendor != nil {
		return s.addVendor(ctx, eventID, callerID, vendor)
	}
	return nil
}

func (s *stubEventService) ListVendors(ctx context.Context, eventID, callerID string) ([]*domain.Vendor, error) {
	if s.listVendors != nil {
		return s.listVendors(ctx, eventID, callerID)
	}
	return []*domain.Vendor{}, nil
}

func (s *stubEventService) UpdateVendor(ctx context.Context, eventID, vendorID, callerID string, upd domain.VendorUpdate) (*domain.Vendor, error) {
	if s.updateVendor != nil {
		return s.updateVendor(ctx, eventID, vendorID, callerID, upd)
	}
	return nil, domain.ErrNotFound
}

func (s *stubEventService) RemoveVendor(ctx context.Context, eventID, vendorID, callerID string) error {
	if s.removeVendor != nil {
		return s.removeVendor(ctx, eventID, vendorID, callerID)
	}
	return nil
}

func (s *stubEventService) AddTask(ctx context.Context, eventID, callerID string, task *domain.Task) error {
	if s.addTask != nil {
		return s.addTask(ctx, eventID, callerID, task)
	}
	return nil
}

func (s *stubEventService) ListTasks(ctx context.Context, eventID, callerID string) ([]*domain.Task, error) {
	if s.listTasks != nil {
		return s.listTasks(ctx, eventID, callerID)
	}
	return []*domain.Task{}, nil
}

func (s *stubEventService) UpdateTask(ctx context.Context, eventID, taskID, callerID string, upd domain.TaskUpdate) (*domain.Task, error) {
	if s.updateTask != nil {
		return s.updateTask(ctx, eventID, taskID, callerID, upd)
	}
	return nil, domain.ErrNotFound
}

func (s *stubEventService) RemoveTask(ctx context.Context, eventID, taskID, callerID string) error {
	if s.removeTask != nil {
		return s.removeTask(ctx, eventID, taskID, callerID)
	}
	return nil
}

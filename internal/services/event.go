package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"happenly/internal/domain"
)

// dateLayout is the wire format for event and task dates.
const dateLayout = "2006-01-02"

type eventService struct {
	eventRepo      domain.EventRepository
	guestRepo      domain.GuestRepository
	vendorRepo     domain.VendorRepository
	taskRepo       domain.TaskRepository
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	guestRepo domain.GuestRepository,
	vendorRepo domain.VendorRepository,
	taskRepo domain.TaskRepository,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		guestRepo:      guestRepo,
		vendorRepo:     vendorRepo,
		taskRepo:       taskRepo,
		contextTimeout: timeout,
	}
}

// ownedEvent fetches the event and verifies callerID owns it.
func (s *eventService) ownedEvent(ctx context.Context, eventID, callerID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.OwnerID != callerID {
		return nil, domain.ErrForbidden
	}
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event.OwnerID == "" {
		return fmt.Errorf("event owner is required")
	}
	event.Title = strings.TrimSpace(event.Title)
	if event.Title == "" {
		return domain.ErrInvalidInput
	}
	if event.Budget < 0 {
		return domain.ErrInvalidInput
	}
	if _, err := time.Parse(dateLayout, event.Date); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDate, event.Date)
	}
	if event.Status == "" {
		event.Status = domain.EventStatusUpcoming
	}
	if !domain.KnownEventStatus(event.Status) {
		return domain.ErrInvalidInput
	}
	if event.Time == nil {
		t := domain.DefaultEventTime
		event.Time = &t
	}

	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	return s.eventRepo.Create(ctx, event)
}

func (s *eventService) GetEvent(ctx context.Context, eventID, callerID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.ownedEvent(ctx, eventID, callerID)
}

func (s *eventService) ListEventsByOwner(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID, callerID string, upd domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, callerID); err != nil {
		return nil, err
	}
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, domain.ErrInvalidInput
	}
	if upd.Budget != nil && *upd.Budget < 0 {
		return nil, domain.ErrInvalidInput
	}
	if upd.Status != nil && !domain.KnownEventStatus(*upd.Status) {
		return nil, domain.ErrInvalidInput
	}
	if upd.Date != nil {
		if _, err := time.Parse(dateLayout, *upd.Date); err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDate, *upd.Date)
		}
	}
	updated, err := s.eventRepo.Update(ctx, eventID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, callerID); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

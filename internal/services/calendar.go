package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	ics "github.com/arran4/golang-ical"

	"happenly/internal/domain"
	"happenly/internal/report"
)

type calendarService struct {
	eventRepo      domain.EventRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewCalendarService creates a CalendarService over the given event repository.
func NewCalendarService(eventRepo domain.EventRepository, logger *slog.Logger, timeout time.Duration) domain.CalendarService {
	return &calendarService{
		eventRepo:      eventRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// ListTimeBlocks projects all of the owner's events into calendar blocks.
// Events whose date does not parse are skipped and logged; one bad row must
// not blank the whole calendar.
func (s *calendarService) ListTimeBlocks(ctx context.Context, ownerID string) ([]domain.TimeBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	blocks := make([]domain.TimeBlock, 0, len(events))
	for _, e := range events {
		block, err := report.Project(e)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidDate) {
				s.logger.WarnContext(ctx, "skipping event with invalid date", "event_id", e.ID, "date", e.Date)
				continue
			}
			return nil, fmt.Errorf("project event %s: %w", e.ID, err)
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func (s *calendarService) ExportICS(ctx context.Context, ownerID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return "", fmt.Errorf("list events: %w", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Happenly//Event Calendar//EN")
	for _, e := range events {
		block, err := report.Project(e)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidDate) {
				s.logger.WarnContext(ctx, "skipping event with invalid date", "event_id", e.ID, "date", e.Date)
				continue
			}
			return "", fmt.Errorf("project event %s: %w", e.ID, err)
		}
		ev := cal.AddEvent(fmt.Sprintf("%s@happenly", e.ID))
		ev.SetDtStampTime(time.Now())
		ev.SetStartAt(block.Start)
		ev.SetEndAt(block.End)
		ev.SetSummary(block.Title)
		if e.Venue != nil && *e.Venue != "" {
			ev.SetLocation(*e.Venue)
		}
		if e.Description != nil && *e.Description != "" {
			ev.SetDescription(*e.Description)
		}
	}
	return cal.Serialize(), nil
}

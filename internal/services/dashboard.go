package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"happenly/internal/domain"
	"happenly/internal/report"
)

type dashboardService struct {
	eventRepo      domain.EventRepository
	guestRepo      domain.GuestRepository
	vendorRepo     domain.VendorRepository
	taskRepo       domain.TaskRepository
	contextTimeout time.Duration
}

// NewDashboardService creates a DashboardService over the given repositories.
func NewDashboardService(eventRepo domain.EventRepository,
	guestRepo domain.GuestRepository,
	vendorRepo domain.VendorRepository,
	taskRepo domain.TaskRepository,
	timeout time.Duration,
) domain.DashboardService {
	return &dashboardService{
		eventRepo:      eventRepo,
		guestRepo:      guestRepo,
		vendorRepo:     vendorRepo,
		taskRepo:       taskRepo,
		contextTimeout: timeout,
	}
}

func (s *dashboardService) GetEventDashboard(ctx context.Context, eventID, callerID string) (*domain.EventDashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

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

	var (
		guests  []*domain.Guest
		vendors []*domain.Vendor
		tasks   []*domain.Task
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		guests, err = s.guestRepo.ListByEventID(gctx, eventID)
		if err != nil {
			return fmt.Errorf("list guests: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		vendors, err = s.vendorRepo.ListByEventID(gctx, eventID)
		if err != nil {
			return fmt.Errorf("list vendors: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		tasks, err = s.taskRepo.ListByEventID(gctx, eventID)
		if err != nil {
			return fmt.Errorf("list tasks: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.EventDashboard{
		Event:  event,
		RSVP:   report.RSVPCounts(guests),
		Budget: report.BudgetSummary(event.Budget, vendors),
		Tasks:  report.TaskCounts(tasks),
	}, nil
}

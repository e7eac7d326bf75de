package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"happenly/internal/domain"
)

func (s *eventService) AddGuest(ctx context.Context, eventID, callerID string, guest *domain.Guest) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, callerID); err != nil {
		return err
	}
	guest.Name = strings.TrimSpace(guest.Name)
	guest.Email = strings.TrimSpace(strings.ToLower(guest.Email))
	if guest.Name == "" || guest.Email == "" {
		return domain.ErrInvalidInput
	}
	if guest.RSVPStatus == "" {
		guest.RSVPStatus = domain.RSVPPending
	}
	if !domain.KnownRSVPStatus(guest.RSVPStatus) {
		return domain.ErrInvalidInput
	}
	guest.EventID = eventID
	guest.CreatedAt = time.Now()
	guest.UpdatedAt = time.Now()

	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return fmt.Errorf("create guest: %w", err)
	}
	return nil
}

func (s *eventService) ListGuests(ctx context.Context, eventID, callerID string) ([]*domain.Guest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, callerID); err != nil {
		return nil, err
	}
	guests, err := s.guestRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	if guests == nil {
		guests = []*domain.Guest{}
	}
	return guests, nil
}

func (s *eventService) UpdateGuest(ctx context.Context, eventID, guestID, callerID string, upd domain.GuestUpdate) (*domain.Guest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, callerID); err != nil {
		return nil, err
	}
	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get guest: %w", err)
	}
	if guest.EventID != eventID {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if upd.Email != nil && strings.TrimSpace(*upd.Email) == "" {
		return nil, domain.ErrInvalidInput
	}
	if upd.RSVPStatus != nil && !domain.KnownRSVPStatus(*upd.RSVPStatus) {
		return nil, domain.ErrInvalidInput
	}
	updated, err := s.guestRepo.Update(ctx, guestID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update guest: %w", err)
	}
	return updated, nil
}

func (s *eventService) RemoveGuest(ctx context.Context, eventID, guestID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, callerID); err != nil {
		return err
	}
	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get guest: %w", err)
	}
	if guest.EventID != eventID {
		return domain.ErrNotFound
	}
	if err := s.guestRepo.Delete(ctx, guestID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete guest: %w", err)
	}
	return nil
}

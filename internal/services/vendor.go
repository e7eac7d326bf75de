package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"happenly/internal/domain"
)

func (s *eventService) AddVendor(ctx context.Context, eventID, callerID string, vendor *domain.Vendor) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, callerID); err != nil {
		return err
	}
	vendor.Name = strings.TrimSpace(vendor.Name)
	if vendor.Name == "" {
		return domain.ErrInvalidInput
	}
	if vendor.Cost != nil && *vendor.Cost < 0 {
		return domain.ErrInvalidInput
	}
	vendor.EventID = eventID
	vendor.CreatedAt = time.Now()
	vendor.UpdatedAt = time.Now()

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return fmt.Errorf("create vendor: %w", err)
	}
	return nil
}

func (s *eventService) ListVendors(ctx context.Context, eventID, callerID string) ([]*domain.Vendor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, callerID); err != nil {
		return nil, err
	}
	vendors, err := s.vendorRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	if vendors == nil {
		vendors = []*domain.Vendor{}
	}
	return vendors, nil
}

func (s *eventService) UpdateVendor(ctx context.Context, eventID, vendorID, callerID string, upd domain.VendorUpdate) (*domain.Vendor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, callerID); err != nil {
		return nil, err
	}
	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	if vendor.EventID != eventID {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if upd.Cost != nil && *upd.Cost < 0 {
		return nil, domain.ErrInvalidInput
	}
	updated, err := s.vendorRepo.Update(ctx, vendorID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update vendor: %w", err)
	}
	return updated, nil
}

func (s *eventService) RemoveVendor(ctx context.Context, eventID, vendorID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, callerID); err != nil {
		return err
	}
	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get vendor: %w", err)
	}
	if vendor.EventID != eventID {
		return domain.ErrNotFound
	}
	if err := s.vendorRepo.Delete(ctx, vendorID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete vendor: %w", err)
	}
	return nil
}

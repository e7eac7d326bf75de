package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"happenly/internal/domain"
)

func (s *eventService) AddTask(ctx context.Context, eventID, callerID string, task *domain.Task) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, callerID); err != nil {
		return err
	}
	task.Title = strings.TrimSpace(task.Title)
	task.AssignedTo = strings.TrimSpace(task.AssignedTo)
	if task.Title == "" || task.AssignedTo == "" {
		return domain.ErrInvalidInput
	}
	if _, err := time.Parse(dateLayout, task.DueDate); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDate, task.DueDate)
	}
	if task.Status == "" {
		task.Status = domain.TaskNotStarted
	}
	if !domain.KnownTaskStatus(task.Status) {
		return domain.ErrInvalidInput
	}
	task.EventID = eventID
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (s *eventService) ListTasks(ctx context.Context, eventID, callerID string) ([]*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, callerID); err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

func (s *eventService) UpdateTask(ctx context.Context, eventID, taskID, callerID string, upd domain.TaskUpdate) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, callerID); err != nil {
		return nil, err
	}
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task.EventID != eventID {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, domain.ErrInvalidInput
	}
	if upd.AssignedTo != nil && strings.TrimSpace(*upd.AssignedTo) == "" {
		return nil, domain.ErrInvalidInput
	}
	if upd.Status != nil && !domain.KnownTaskStatus(*upd.Status) {
		return nil, domain.ErrInvalidInput
	}
	if upd.DueDate != nil {
		if _, err := time.Parse(dateLayout, *upd.DueDate); err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDate, *upd.DueDate)
		}
	}
	updated, err := s.taskRepo.Update(ctx, taskID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return updated, nil
}

func (s *eventService) RemoveTask(ctx context.Context, eventID, taskID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, eventID, callerID); err != nil {
		return err
	}
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get task: %w", err)
	}
	if task.EventID != eventID {
		return domain.ErrNotFound
	}
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

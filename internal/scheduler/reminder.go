package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"happenly/internal/domain"
)

const reminderTimeout = 2 * time.Minute

// ReminderScheduler sends a daily email to event owners listing their tasks
// due the next day.
type ReminderScheduler struct {
	cron         *cron.Cron
	taskRepo     domain.TaskRepository
	emailService domain.EmailService
	logger       *slog.Logger
}

func NewReminderScheduler(taskRepo domain.TaskRepository, emailService domain.EmailService, logger *slog.Logger) *ReminderScheduler {
	return &ReminderScheduler{
		cron:         cron.New(),
		taskRepo:     taskRepo,
		emailService: emailService,
		logger:       logger,
	}
}

// Start registers the reminder job with the given cron expression and starts
// the scheduler.
func (s *ReminderScheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("reminder scheduler started", "cron", spec)
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *ReminderScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *ReminderScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), reminderTimeout)
	defer cancel()

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	reminders, err := s.taskRepo.ListRemindersDueOn(ctx, tomorrow)
	if err != nil {
		s.logger.Error("failed to load due tasks", "date", tomorrow, "err", err)
		return
	}
	if len(reminders) == 0 {
		return
	}

	// One email per owner, listing all of their tasks due tomorrow.
	byOwner := make(map[string][]domain.ReminderTask)
	for _, rem := range reminders {
		byOwner[rem.OwnerEmail] = append(byOwner[rem.OwnerEmail], domain.ReminderTask{
			Title:      rem.TaskTitle,
			DueDate:    rem.DueDate,
			AssignedTo: rem.AssignedTo,
			EventTitle: rem.EventTitle,
		})
	}

	sent := 0
	for email, tasks := range byOwner {
		data := &domain.TaskReminderEmailData{Email: email, Tasks: tasks}
		if err := s.emailService.SendTaskReminder(ctx, data); err != nil {
			s.logger.Error("failed to send task reminder", "to", email, "err", err)
			continue
		}
		sent++
	}
	s.logger.Info("task reminders sent", "date", tomorrow, "recipients", sent, "tasks", len(reminders))
}

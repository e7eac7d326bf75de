package services

import (
	"context"
	"fmt"

	"happenly/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendWelcome sends the sign-up welcome email using the "welcome" template.
func (s *emailService) SendWelcome(ctx context.Context, data *domain.WelcomeEmailData) error {
	if data == nil {
		return fmt.Errorf("welcome email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("welcome", data)
	if err != nil {
		return fmt.Errorf("failed to render welcome template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}

// SendTaskReminder sends a daily task reminder using the "task_reminder" template.
func (s *emailService) SendTaskReminder(ctx context.Context, data *domain.TaskReminderEmailData) error {
	if data == nil {
		return fmt.Errorf("task reminder data is nil")
	}
	if len(data.Tasks) == 0 {
		return nil
	}
	subject, htmlBody, textBody, err := s.renderer.Render("task_reminder", data)
	if err != nil {
		return fmt.Errorf("failed to render task_reminder template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send task reminder email: %w", err)
	}
	return nil
}

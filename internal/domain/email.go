package domain

import "context"

// Mailer sends a single email message.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders a named template into subject, html, and text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// WelcomeEmailData is the template data for the sign-up welcome email.
type WelcomeEmailData struct {
	Email string
	Name  string
}

// ReminderTask is a single task line in a reminder email.
type ReminderTask struct {
	Title      string
	DueDate    string
	AssignedTo string
	EventTitle string
}

// TaskReminderEmailData is the template data for the daily task reminder email.
type TaskReminderEmailData struct {
	Email string
	Tasks []ReminderTask
}

// EmailService renders and sends application emails.
type EmailService interface {
	SendWelcome(ctx context.Context, data *WelcomeEmailData) error
	SendTaskReminder(ctx context.Context, data *TaskReminderEmailData) error
}

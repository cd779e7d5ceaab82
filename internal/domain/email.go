package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ReportEmailData holds data for the report delivery email.
type ReportEmailData struct {
	To         string
	Conference string
	Status     string
	TalkCount  int
	JSON       string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendReport(ctx context.Context, data *ReportEmailData) error
}

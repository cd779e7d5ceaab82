package services

import (
	"context"
	"fmt"
	"log"

	"talkreport/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendReport sends the rendered report document using the "report" template.
func (s *emailService) SendReport(ctx context.Context, data *domain.ReportEmailData) error {
	if data == nil {
		return fmt.Errorf("report email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("report", data)
	if err != nil {
		return fmt.Errorf("failed to render report template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.To, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}
	log.Printf("[EMAIL] Talk report for %s sent to %s", data.Conference, data.To)
	return nil
}

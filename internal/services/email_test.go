package services

import (
	"context"
	"errors"
	"testing"

	"talkreport/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMailer implements domain.Mailer for tests.
type fakeMailer struct {
	to, subject, html, text string
	err                     error
	sent                    bool
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	if f.err != nil {
		return f.err
	}
	f.to, f.subject, f.html, f.text = to, subject, html, text
	f.sent = true
	return nil
}

// fakeRenderer implements domain.EmailTemplateRenderer for tests.
type fakeRenderer struct {
	name string
	err  error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	if f.err != nil {
		return "", "", "", f.err
	}
	f.name = templateName
	return "subject", "<p>html</p>", "text", nil
}

func TestEmailService_SendReport(t *testing.T) {
	ctx := context.Background()
	data := &domain.ReportEmailData{
		To:         "program@example.org",
		Conference: "pycon9",
		Status:     "accepted",
		TalkCount:  3,
		JSON:       "{}",
	}

	t.Run("renders the report template and sends", func(t *testing.T) {
		mailer := &fakeMailer{}
		renderer := &fakeRenderer{}
		svc := NewEmailService(mailer, renderer)

		require.NoError(t, svc.SendReport(ctx, data))
		assert.Equal(t, "report", renderer.name)
		assert.True(t, mailer.sent)
		assert.Equal(t, "program@example.org", mailer.to)
		assert.Equal(t, "subject", mailer.subject)
	})

	t.Run("nil data is rejected", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{}, &fakeRenderer{})
		require.Error(t, svc.SendReport(ctx, nil))
	})

	t.Run("render failure is wrapped", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{}, &fakeRenderer{err: errors.New("bad template")})
		err := svc.SendReport(ctx, data)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "render")
	})

	t.Run("send failure is wrapped", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{err: errors.New("ses down")}, &fakeRenderer{})
		err := svc.SendReport(ctx, data)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "send")
	})
}

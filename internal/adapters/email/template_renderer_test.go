package email

import (
	"strings"
	"testing"

	"talkreport/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_RenderReport(t *testing.T) {
	renderer := NewTemplateRenderer()
	data := &domain.ReportEmailData{
		To:         "program@example.org",
		Conference: "pycon9",
		Status:     "accepted",
		TalkCount:  42,
		JSON:       `{"talk": {}}`,
	}

	subject, htmlBody, textBody, err := renderer.Render("report", data)
	require.NoError(t, err)

	assert.Equal(t, "Talk report for pycon9 (accepted, 42 talks)", subject)
	assert.Contains(t, htmlBody, "pycon9")
	assert.Contains(t, htmlBody, "42 talks")
	assert.Contains(t, textBody, `{"talk": {}}`)
	assert.False(t, strings.HasPrefix(subject, " "))
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	renderer := NewTemplateRenderer()
	_, _, _, err := renderer.Render("missing", nil)
	require.Error(t, err)
}

package mail

import (
	"strings"
	"testing"

	"folio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderContactEmail(t *testing.T) {
	req := models.ContactRequest{
		Name:  "Ada",
		Email: "ada@example.com",
		Phone: "555-1234",
	}

	html, err := RenderContactEmail(req, 2026)
	require.NoError(t, err)

	assert.Contains(t, html, "Ada")
	assert.Contains(t, html, "ada@example.com")
	assert.Contains(t, html, "555-1234")
	assert.Equal(t, 2, strings.Count(html, "Not specified"),
		"both unset optional fields fall back to the default text")
	assert.Contains(t, html, "mailto:ada@example.com")
	assert.Contains(t, html, "2026")
	assert.Contains(t, html, "All rights reserved")
}

func TestRenderContactEmail_OptionalFields(t *testing.T) {
	req := models.ContactRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Phone:    "555-1234",
		Source:   "Referral",
		Services: "Web Design",
	}

	html, err := RenderContactEmail(req, 2026)
	require.NoError(t, err)

	assert.Contains(t, html, "Referral")
	assert.Contains(t, html, "Web Design")
	assert.NotContains(t, html, "Not specified")
}

func TestRenderContactEmail_EscapesFields(t *testing.T) {
	req := models.ContactRequest{
		Name:  "<script>alert(1)</script>",
		Email: "ada@example.com",
		Phone: "555-1234",
	}

	html, err := RenderContactEmail(req, 2026)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestOrNotSpecified(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: "Not specified"},
		{name: "whitespace only", input: "   ", expected: "Not specified"},
		{name: "value kept", input: "Referral", expected: "Referral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, orNotSpecified(tt.input))
		})
	}
}

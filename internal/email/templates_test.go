package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every built-in template must parse and render.
func TestBuiltinTemplatesRender(t *testing.T) {
	tm := NewTemplateManager()

	data := TemplateData{"Name": "Marc", "Note": "Document manquant"}
	for name := range builtinTemplates {
		body, err := tm.Render(name, data)
		require.NoError(t, err, "template %s", name)
		assert.Contains(t, body, "Marc")
	}
}

func TestRejectionNoteIsEscaped(t *testing.T) {
	tm := NewTemplateManager()

	body, err := tm.Render(TemplateProfileRejected, TemplateData{
		"Name": "Marc",
		"Note": "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestUnknownTemplate(t *testing.T) {
	tm := NewTemplateManager()

	_, err := tm.Render("missing", TemplateData{})
	assert.Error(t, err)
}

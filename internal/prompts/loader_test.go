package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownKeys(t *testing.T) {
	for _, key := range []string{"enhance_section", "single_line"} {
		prompt, err := Get(key)
		require.NoErrorf(t, err, "key %s", key)
		assert.NotEmptyf(t, prompt, "key %s", key)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("no_such_prompt")
	assert.ErrorContains(t, err, `prompt key "no_such_prompt" not found`)
}

func TestMustGet_PanicsOnUnknownKey(t *testing.T) {
	assert.Panics(t, func() { MustGet("no_such_prompt") })
}

func TestMustGet_KnownKey(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.NotEmpty(t, MustGet("enhance_section"))
	})
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	result := Format("Section: {{.Section}}\nText: {{.Text}}", map[string]string{
		"Section": "Experience",
		"Text":    "Built things",
	})
	assert.Equal(t, "Section: Experience\nText: Built things", result)
}

func TestFormat_MissingPlaceholdersLeftAsIs(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestFormat_EmptyData(t *testing.T) {
	assert.Equal(t, "plain text", Format("plain text", nil))
}

func TestEnhanceSectionPromptHasPlaceholders(t *testing.T) {
	prompt := MustGet("enhance_section")
	assert.Contains(t, prompt, "{{.Section}}")
	assert.Contains(t, prompt, "{{.Text}}")
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/config"
)

const validResumeJSON = `{
	"full_name": "Jane Doe",
	"job_title": "Software Engineer",
	"address": "Toronto, ON",
	"email": "jane@example.com",
	"phone": "555-0100",
	"linkedin_url": "https://linkedin.com/in/janedoe",
	"summary": "Backend engineer.",
	"languages": "English"
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"generate", "render", "enhance", "serve"} {
		assert.Truef(t, names[want], "command %s not registered", want)
	}
}

func TestLoadRecord_ValidFile(t *testing.T) {
	path := writeFile(t, "resume.json", validResumeJSON)

	rec, err := loadRecord(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", rec.FullName)
	assert.Equal(t, "jane@example.com", rec.Email)
}

func TestLoadRecord_MissingFile(t *testing.T) {
	_, err := loadRecord(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "failed to read resume file")
}

func TestLoadRecord_SchemaViolation(t *testing.T) {
	path := writeFile(t, "resume.json", `{"full_name": "Jane Doe"}`)

	_, err := loadRecord(path)
	assert.ErrorContains(t, err, "resume payload validation failed")
}

func TestMergeConfig_NoFileKeepsFlags(t *testing.T) {
	flags := config.Config{Model: "from-flag", Port: 9000}

	merged, err := mergeConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, flags, merged)
}

func TestMergeConfig_FlagsWinOverFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"model": "from-file", "port": 8081}`)

	merged, err := mergeConfig(path, config.Config{Model: "from-flag"})
	require.NoError(t, err)
	assert.Equal(t, "from-flag", merged.Model)
	assert.Equal(t, 8081, merged.Port)
}

func TestMergeConfig_InvalidFile(t *testing.T) {
	_, err := mergeConfig(filepath.Join(t.TempDir(), "nope.json"), config.Config{})
	assert.Error(t, err)
}

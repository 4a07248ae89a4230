package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPayload = `{
	"full_name": "Jane Doe",
	"job_title": "Software Engineer",
	"address": "Toronto, ON",
	"email": "jane@example.com",
	"phone": "555-0100",
	"linkedin_url": "https://linkedin.com/in/janedoe",
	"summary": "Backend engineer.",
	"languages": "English",
	"experience": [
		{"job_title": "Engineer", "company": "Acme", "description": "Shipped things"}
	]
}`

func TestValidateResume_ValidPayload(t *testing.T) {
	assert.NoError(t, ValidateResume([]byte(validPayload)))
}

func TestValidateResume_MissingRequiredField(t *testing.T) {
	err := ValidateResume([]byte(`{
		"full_name": "Jane Doe",
		"job_title": "Software Engineer",
		"address": "Toronto, ON",
		"email": "jane@example.com",
		"phone": "555-0100",
		"linkedin_url": "https://linkedin.com/in/janedoe",
		"summary": "Backend engineer."
	}`))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Errors)
	assert.Contains(t, err.Error(), "languages")
}

func TestValidateResume_WrongType(t *testing.T) {
	err := ValidateResume([]byte(`{
		"full_name": 12345,
		"job_title": "Software Engineer",
		"address": "Toronto, ON",
		"email": "jane@example.com",
		"phone": "555-0100",
		"linkedin_url": "https://linkedin.com/in/janedoe",
		"summary": "Backend engineer.",
		"languages": "English"
	}`))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "full_name")
}

func TestValidateResume_UnknownTopLevelField(t *testing.T) {
	err := ValidateResume([]byte(`{
		"full_name": "Jane Doe",
		"job_title": "Software Engineer",
		"address": "Toronto, ON",
		"email": "jane@example.com",
		"phone": "555-0100",
		"linkedin_url": "https://linkedin.com/in/janedoe",
		"summary": "Backend engineer.",
		"languages": "English",
		"unexpected_field": true
	}`))
	assert.Error(t, err)
}

func TestValidateResume_MalformedJSON(t *testing.T) {
	err := ValidateResume([]byte(`{not json`))
	require.Error(t, err)

	// Malformed JSON is a loader error, not a schema violation.
	var verr *ValidationError
	assert.NotErrorAs(t, err, &verr)
}

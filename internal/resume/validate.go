package resume

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldLabels maps struct field names to the labels shown to the user.
var fieldLabels = map[string]string{
	"FullName":    "Full Name",
	"JobTitle":    "Job Title",
	"Address":     "Address",
	"Email":       "Email",
	"Phone":       "Phone",
	"LinkedInURL": "LinkedIn URL",
	"GitHubURL":   "GitHub URL",
	"Website":     "Personal Website",
	"Summary":     "Professional Summary",
	"Languages":   "Languages",
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError reports required personal-info fields that are missing
// or malformed. Generation must not start while it is non-nil.
type ValidationError struct {
	Fields []FieldError
}

// FieldError is a single invalid field with a user-facing label.
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("resume validation failed:")
	for _, f := range e.Fields {
		sb.WriteString(fmt.Sprintf("\n  - %s: %s", f.Field, f.Message))
	}
	return sb.String()
}

// Validate checks that the required personal-info fields are present and
// well-formed. Entry slices may be empty.
func (r *Record) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("failed to validate resume: %w", err)
	}

	result := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		label := fieldLabels[fe.Field()]
		if label == "" {
			label = fe.Field()
		}
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "this field is required"
		case "email":
			msg = "must be a valid email address"
		case "url":
			msg = "must be a valid URL"
		default:
			msg = fmt.Sprintf("failed %s check", fe.Tag())
		}
		result.Fields = append(result.Fields, FieldError{Field: label, Message: msg})
	}
	return result
}

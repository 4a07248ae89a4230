package rendering

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed templates/resume.tex
var templateFS embed.FS

// docTemplate is the fixed one-page resume document. It is embedded so
// rendering has no filesystem precondition and a given TemplateData always
// produces byte-identical output.
var docTemplate = template.Must(
	template.New("resume.tex").ParseFS(templateFS, "templates/resume.tex"),
)

// Render executes the document template against pre-escaped data and
// returns the complete LaTeX source. Callers must build data through
// BuildTemplateData; Render itself performs no escaping.
func Render(data *TemplateData) (string, error) {
	var sb strings.Builder
	if err := docTemplate.ExecuteTemplate(&sb, "resume.tex", data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute resume template",
			Cause:   err,
		}
	}
	return sb.String(), nil
}

// Package enhancing provides best-effort AI rewriting of resume text.
// Enhancement is always optional: every failure degrades to the original
// text so it can never block document generation.
package enhancing

import "context"

// Section labels passed to the enhancer to steer the rewrite.
const (
	SectionSummary      = "Professional Summary"
	SectionExperience   = "Experience"
	SectionProjects     = "Projects"
	SectionAchievements = "Achievements"
)

// Result is the outcome of one enhancement call. Text is always usable:
// either the improved version or the unmodified input. Err records why the
// original was kept, for surfacing as a warning.
type Result struct {
	Text     string
	Enhanced bool
	Err      error
}

// Enhancer rewrites a text snippet for a given resume section.
type Enhancer interface {
	Enhance(ctx context.Context, text, section string) Result
}

// Noop keeps all text unchanged. Used when no API credential was supplied.
type Noop struct{}

// Enhance returns the input text as-is.
func (Noop) Enhance(_ context.Context, text, _ string) Result {
	return Result{Text: text}
}

package enhancing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/resume"
)

// upperEnhancer marks every snippet enhanced by upper-casing it.
type upperEnhancer struct{}

func (upperEnhancer) Enhance(_ context.Context, text, _ string) Result {
	return Result{Text: "ENHANCED: " + text, Enhanced: true}
}

// failingEnhancer fails every call, falling back to the original text.
type failingEnhancer struct{}

func (failingEnhancer) Enhance(_ context.Context, text, _ string) Result {
	return Result{Text: text, Err: errors.New("model unavailable")}
}

func enhanceableRecord() *resume.Record {
	return &resume.Record{
		FullName:  "Jane Doe",
		Summary:   "Built scalable systems",
		Languages: "English",
		Experience: []resume.ExperienceEntry{
			{JobTitle: "Engineer", Company: "Acme", Description: "Shipped the billing service"},
			{JobTitle: "Intern", Company: "Beta", Description: ""},
		},
		Projects: []resume.ProjectEntry{
			{Title: "CLI Tool", Description: "Wrote a parser"},
		},
		Achievements: []resume.AchievementEntry{
			{Title: "Hackathon Winner", Description: "placed first out of 200 teams"},
		},
	}
}

func TestEnhanceRecord_AppliesEnhancer(t *testing.T) {
	rec := enhanceableRecord()
	out, enhanced, warnings := EnhanceRecord(context.Background(), upperEnhancer{}, rec)

	assert.True(t, enhanced)
	assert.Empty(t, warnings)
	assert.Equal(t, "ENHANCED: Built scalable systems", out.Summary)
	assert.Equal(t, "ENHANCED: Shipped the billing service", out.Experience[0].Description)
	assert.Equal(t, "", out.Experience[1].Description)
	assert.Equal(t, "ENHANCED: Wrote a parser", out.Projects[0].Description)
}

func TestEnhanceRecord_CondensesAchievements(t *testing.T) {
	rec := enhanceableRecord()
	out, _, _ := EnhanceRecord(context.Background(), upperEnhancer{}, rec)

	require.Len(t, out.Achievements, 1)
	assert.Equal(t, "ENHANCED: Hackathon Winner: placed first out of 200 teams", out.Achievements[0].Title)
	assert.Equal(t, "", out.Achievements[0].Description)
}

func TestEnhanceRecord_FailureKeepsOriginalText(t *testing.T) {
	rec := enhanceableRecord()
	out, enhanced, warnings := EnhanceRecord(context.Background(), failingEnhancer{}, rec)

	assert.False(t, enhanced)
	assert.Equal(t, "Built scalable systems", out.Summary)
	assert.Equal(t, "Shipped the billing service", out.Experience[0].Description)
	assert.Equal(t, "Wrote a parser", out.Projects[0].Description)

	// summary, experience #1, project #1, achievement #1 each warn once.
	require.Len(t, warnings, 4)
	for _, w := range warnings {
		assert.Contains(t, w, "kept original text")
		assert.Contains(t, w, "model unavailable")
	}
}

func TestEnhanceRecord_DoesNotModifyInput(t *testing.T) {
	rec := enhanceableRecord()
	_, _, _ = EnhanceRecord(context.Background(), upperEnhancer{}, rec)

	assert.Equal(t, "Built scalable systems", rec.Summary)
	assert.Equal(t, "Shipped the billing service", rec.Experience[0].Description)
	assert.Equal(t, "Hackathon Winner", rec.Achievements[0].Title)
	assert.Equal(t, "placed first out of 200 teams", rec.Achievements[0].Description)
}

func TestEnhanceRecord_NoopLeavesRecordUnchanged(t *testing.T) {
	rec := enhanceableRecord()
	out, enhanced, warnings := EnhanceRecord(context.Background(), Noop{}, rec)

	assert.False(t, enhanced)
	assert.Empty(t, warnings)
	assert.Equal(t, rec.Summary, out.Summary)
	assert.Equal(t, rec.Experience[0].Description, out.Experience[0].Description)
	// Achievements are still collapsed to a single title line.
	assert.Equal(t, "Hackathon Winner: placed first out of 200 teams", out.Achievements[0].Title)
}

func TestCollapseLine(t *testing.T) {
	assert.Equal(t, "one two three", collapseLine("one\ntwo\n  three  "))
	assert.Equal(t, "", collapseLine("  \n "))
}

// Package resume defines the resume record types and input normalization
// helpers shared by the rendering and enhancement stages.
package resume

import (
	"strings"
)

// Record is a structured resume as collected by the presentation layer.
// The pipeline receives it as an immutable snapshot per generation request.
type Record struct {
	// Personal info
	FullName    string `json:"full_name" validate:"required"`
	JobTitle    string `json:"job_title" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	LinkedInURL string `json:"linkedin_url" validate:"required,url"`
	GitHubURL   string `json:"github_url,omitempty" validate:"omitempty,url"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`

	Summary   string `json:"summary" validate:"required"`
	Languages string `json:"languages" validate:"required"`

	Skills SkillGroups `json:"skills,omitempty"`

	Education    []EducationEntry   `json:"education,omitempty"`
	Experience   []ExperienceEntry  `json:"experience,omitempty"`
	Projects     []ProjectEntry     `json:"projects,omitempty"`
	Certificates []CertificateEntry `json:"certificates,omitempty"`
	Achievements []AchievementEntry `json:"achievements,omitempty"`
}

// SkillGroups holds comma-separated skill lists grouped by category.
type SkillGroups struct {
	Programming string `json:"programming,omitempty"`
	Frameworks  string `json:"frameworks,omitempty"`
	Databases   string `json:"databases,omitempty"`
	Tools       string `json:"tools,omitempty"`
}

// IsEmpty reports whether no skill category has content.
func (s SkillGroups) IsEmpty() bool {
	return strings.TrimSpace(s.Programming) == "" &&
		strings.TrimSpace(s.Frameworks) == "" &&
		strings.TrimSpace(s.Databases) == "" &&
		strings.TrimSpace(s.Tools) == ""
}

// EducationEntry is one education block, most recent first.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	StartYear   string `json:"start_year,omitempty"`
	EndYear     string `json:"end_year,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	Courses     string `json:"courses,omitempty"`
	Description string `json:"description,omitempty"`
}

// ExperienceEntry is one employment block. Description holds one bullet
// per line; see SplitBullets.
type ExperienceEntry struct {
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartYear   string `json:"start_year,omitempty"`
	EndYear     string `json:"end_year,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProjectEntry is one project block.
type ProjectEntry struct {
	Title       string `json:"title"`
	Link        string `json:"link,omitempty"`
	StartYear   string `json:"start_year,omitempty"`
	EndYear     string `json:"end_year,omitempty"`
	Description string `json:"description,omitempty"`
}

// CertificateEntry is one certificate line.
type CertificateEntry struct {
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`
	Year         string `json:"year,omitempty"`
	URL          string `json:"url,omitempty"`
}

// AchievementEntry is one achievement line.
type AchievementEntry struct {
	Title       string `json:"title"`
	Year        string `json:"year,omitempty"`
	Description string `json:"description,omitempty"`
}

// StandardizeName title-cases each whitespace-separated part of a name.
func StandardizeName(name string) string {
	parts := strings.Fields(name)
	for i, p := range parts {
		r := []rune(strings.ToLower(p))
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// SplitBullets converts free-form description text into bullet lines.
// Each non-empty line becomes one bullet; leading list markers
// (-, *, •) are stripped.
func SplitBullets(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•")
		line = strings.TrimSpace(line)
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}

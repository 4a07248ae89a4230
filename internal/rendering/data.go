package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/resume"
)

// maxBulletsPerEntry caps bullet lines per experience or project entry so a
// resume stays on one page.
const maxBulletsPerEntry = 5

// TemplateData is the fully escaped structure the document template is
// executed against. Every field is LaTeX-safe; nothing downstream escapes.
type TemplateData struct {
	FullName    string
	JobTitle    string
	Address     string
	Email       string
	Phone       string
	LinkedInURL string
	GitHubURL   string
	Website     string

	Summary   string
	Languages string

	Skills       []SkillRow
	Education    []EducationSection
	Experience   []ExperienceSection
	Projects     []ProjectSection
	Certificates []CertificateSection
	Achievements []AchievementSection
}

// SkillRow is one skills category line.
type SkillRow struct {
	Category string
	Items    string
}

// EducationSection is one formatted education block.
type EducationSection struct {
	Degree      string
	Institution string
	Detail      string // location, GPA
	Dates       string
	Courses     string
	Description string
}

// ExperienceSection is one formatted experience block.
type ExperienceSection struct {
	JobTitle string
	Company  string
	Dates    string
	Bullets  []string
}

// ProjectSection is one formatted project block.
type ProjectSection struct {
	Title   string
	Link    string
	Dates   string
	Bullets []string
}

// CertificateSection is one certificate line.
type CertificateSection struct {
	Name         string
	Organization string
	Year         string
	URL          string
}

// AchievementSection is one achievement line.
type AchievementSection struct {
	Title       string
	Year        string
	Description string
}

// BuildTemplateData maps a resume record to escaped template data. Entries
// missing their identifying fields are skipped; input order is preserved.
// This is the only place user text passes through the escaper.
func BuildTemplateData(rec *resume.Record) *TemplateData {
	data := &TemplateData{
		FullName:    EscapeLaTeX(resume.StandardizeName(rec.FullName)),
		JobTitle:    EscapeLaTeX(rec.JobTitle),
		Address:     EscapeLaTeX(rec.Address),
		Email:       EscapeLaTeX(rec.Email),
		Phone:       EscapeLaTeX(rec.Phone),
		LinkedInURL: EscapeLaTeX(rec.LinkedInURL),
		GitHubURL:   EscapeLaTeX(rec.GitHubURL),
		Website:     EscapeLaTeX(rec.Website),
		Summary:     EscapeLaTeX(rec.Summary),
		Languages:   EscapeLaTeX(rec.Languages),
	}

	for _, row := range []SkillRow{
		{Category: "Programming", Items: rec.Skills.Programming},
		{Category: "Frameworks & Libraries", Items: rec.Skills.Frameworks},
		{Category: "Databases", Items: rec.Skills.Databases},
		{Category: "Tools / Platforms", Items: rec.Skills.Tools},
	} {
		if strings.TrimSpace(row.Items) == "" {
			continue
		}
		data.Skills = append(data.Skills, SkillRow{
			Category: EscapeLaTeX(row.Category),
			Items:    EscapeLaTeX(strings.TrimSpace(row.Items)),
		})
	}

	for _, e := range rec.Education {
		if e.Degree == "" || e.Institution == "" {
			continue
		}
		detail := ""
		if e.Location != "" {
			detail = "(" + EscapeLaTeX(e.Location) + ")"
		}
		if e.GPA != "" {
			if detail != "" {
				detail += " | "
			}
			detail += "GPA: " + EscapeLaTeX(e.GPA)
		}
		data.Education = append(data.Education, EducationSection{
			Degree:      EscapeLaTeX(e.Degree),
			Institution: EscapeLaTeX(e.Institution),
			Detail:      detail,
			Dates:       formatDates(e.StartYear, e.EndYear),
			Courses:     EscapeLaTeX(e.Courses),
			Description: EscapeLaTeX(e.Description),
		})
	}

	for _, x := range rec.Experience {
		if x.JobTitle == "" || x.Company == "" {
			continue
		}
		data.Experience = append(data.Experience, ExperienceSection{
			JobTitle: EscapeLaTeX(x.JobTitle),
			Company:  EscapeLaTeX(x.Company),
			Dates:    formatDates(x.StartYear, x.EndYear),
			Bullets:  escapeBullets(x.Description),
		})
	}

	for _, p := range rec.Projects {
		if p.Title == "" {
			continue
		}
		data.Projects = append(data.Projects, ProjectSection{
			Title:   EscapeLaTeX(p.Title),
			Link:    EscapeLaTeX(p.Link),
			Dates:   formatDates(p.StartYear, p.EndYear),
			Bullets: escapeBullets(p.Description),
		})
	}

	for _, c := range rec.Certificates {
		if c.Name == "" {
			continue
		}
		data.Certificates = append(data.Certificates, CertificateSection{
			Name:         EscapeLaTeX(c.Name),
			Organization: EscapeLaTeX(c.Organization),
			Year:         EscapeLaTeX(c.Year),
			URL:          EscapeLaTeX(c.URL),
		})
	}

	for _, a := range rec.Achievements {
		if a.Title == "" {
			continue
		}
		data.Achievements = append(data.Achievements, AchievementSection{
			Title:       EscapeLaTeX(a.Title),
			Year:        EscapeLaTeX(a.Year),
			Description: EscapeLaTeX(a.Description),
		})
	}

	return data
}

// formatDates joins a year range as "start -- end", or just the start year.
func formatDates(start, end string) string {
	start = EscapeLaTeX(start)
	end = EscapeLaTeX(end)
	if start == "" {
		return end
	}
	if end == "" {
		return start
	}
	return start + " -- " + end
}

// escapeBullets splits description text into bullets and escapes each line,
// capped at maxBulletsPerEntry.
func escapeBullets(description string) []string {
	lines := resume.SplitBullets(description)
	if len(lines) > maxBulletsPerEntry {
		lines = lines[:maxBulletsPerEntry]
	}
	bullets := make([]string, len(lines))
	for i, line := range lines {
		bullets[i] = EscapeLaTeX(line)
	}
	return bullets
}

package enhancing

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/resume"
)

// maxConcurrentCalls bounds parallel enhancement calls within one
// generation request.
const maxConcurrentCalls = 4

// EnhanceRecord returns a copy of rec with the enhancer applied to the
// summary, experience and project descriptions, and achievement titles.
// Sections whose enhancement fails keep their original text; the returned
// warnings describe what was kept and why. The input record is not
// modified.
func EnhanceRecord(ctx context.Context, enh Enhancer, rec *resume.Record) (*resume.Record, bool, []string) {
	out := *rec
	out.Experience = slices.Clone(rec.Experience)
	out.Projects = slices.Clone(rec.Projects)
	out.Achievements = slices.Clone(rec.Achievements)

	var (
		mu       sync.Mutex
		enhanced bool
		warnings []string
	)
	record := func(label string, res Result) {
		mu.Lock()
		defer mu.Unlock()
		if res.Enhanced {
			enhanced = true
		} else if res.Err != nil {
			warnings = append(warnings, fmt.Sprintf("%s kept original text: %v", label, res.Err))
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentCalls)

	if strings.TrimSpace(out.Summary) != "" {
		g.Go(func() error {
			res := enh.Enhance(gctx, out.Summary, SectionSummary)
			record("summary", res)
			mu.Lock()
			out.Summary = res.Text
			mu.Unlock()
			return nil
		})
	}

	for i := range out.Experience {
		if strings.TrimSpace(out.Experience[i].Description) == "" {
			continue
		}
		g.Go(func() error {
			res := enh.Enhance(gctx, out.Experience[i].Description, SectionExperience)
			record(fmt.Sprintf("experience #%d", i+1), res)
			mu.Lock()
			out.Experience[i].Description = res.Text
			mu.Unlock()
			return nil
		})
	}

	for i := range out.Projects {
		if strings.TrimSpace(out.Projects[i].Description) == "" {
			continue
		}
		g.Go(func() error {
			res := enh.Enhance(gctx, out.Projects[i].Description, SectionProjects)
			record(fmt.Sprintf("project #%d", i+1), res)
			mu.Lock()
			out.Projects[i].Description = res.Text
			mu.Unlock()
			return nil
		})
	}

	for i := range out.Achievements {
		line := out.Achievements[i].Title
		if out.Achievements[i].Description != "" {
			line = line + ": " + out.Achievements[i].Description
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		g.Go(func() error {
			res := enh.Enhance(gctx, line, SectionAchievements)
			record(fmt.Sprintf("achievement #%d", i+1), res)
			mu.Lock()
			out.Achievements[i].Title = collapseLine(res.Text)
			out.Achievements[i].Description = ""
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; failed calls already fell back to the
	// original text.
	_ = g.Wait()

	sort.Strings(warnings)
	return &out, enhanced, warnings
}

// collapseLine flattens multi-line text into a single line.
func collapseLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Package pipeline orchestrates one resume generation request: validate,
// best-effort enhance, render, compile. Each invocation owns its state;
// nothing persists across requests.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/compiling"
	"github.com/jonathan/resume-builder/internal/enhancing"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/resume"
)

// Options configures one generation request. APIKey is supplied by the
// caller for this request only; it is never read from the environment or
// stored.
type Options struct {
	APIKey         string
	Model          string
	EnhanceTimeout time.Duration
	CompileTimeout time.Duration
	SkipEnhance    bool

	// Enhancer overrides the Gemini enhancer when set. Used by tests.
	Enhancer enhancing.Enhancer
}

// Result is a completed generation. It is offered for download and then
// discarded.
type Result struct {
	ID         uuid.UUID
	PDF        []byte
	Source     string
	Enhanced   bool
	CompileLog string
	Warnings   []string
}

// Generate runs the full pipeline for one record. Validation and
// compilation failures abort the request; enhancement failures only add
// warnings and keep the original text.
func Generate(ctx context.Context, rec *resume.Record, opts Options) (*Result, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	result := &Result{ID: uuid.New()}

	enhancer, cleanup, warning := newEnhancer(ctx, opts)
	if cleanup != nil {
		defer cleanup()
	}
	if warning != "" {
		result.Warnings = append(result.Warnings, warning)
	}

	enhanced, didEnhance, warnings := enhancing.EnhanceRecord(ctx, enhancer, rec)
	result.Enhanced = didEnhance
	result.Warnings = append(result.Warnings, warnings...)

	source, err := rendering.Render(rendering.BuildTemplateData(enhanced))
	if err != nil {
		return nil, err
	}
	result.Source = source

	compiled, err := compiling.CompileWithTimeout(ctx, source, opts.CompileTimeout)
	if err != nil {
		return nil, err
	}
	result.PDF = compiled.PDF
	result.CompileLog = compiled.Log

	return result, nil
}

// Render validates the record and returns the rendered LaTeX source
// without compiling or enhancing.
func Render(rec *resume.Record) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}
	return rendering.Render(rendering.BuildTemplateData(rec))
}

// newEnhancer selects the enhancer for this request. A missing credential
// degrades to the no-op enhancer with a user-facing warning.
func newEnhancer(ctx context.Context, opts Options) (enhancing.Enhancer, func(), string) {
	if opts.Enhancer != nil {
		return opts.Enhancer, nil, ""
	}
	if opts.SkipEnhance {
		return enhancing.Noop{}, nil, ""
	}
	if opts.APIKey == "" {
		return enhancing.Noop{}, nil, "enhancement skipped: no API key provided"
	}

	enhancer, err := enhancing.NewGemini(ctx, opts.APIKey, opts.Model, opts.EnhanceTimeout)
	if err != nil {
		return enhancing.Noop{}, nil, "enhancement skipped: " + err.Error()
	}
	return enhancer, func() { _ = enhancer.Close() }, ""
}

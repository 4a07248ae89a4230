package enhancing

import (
	"context"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
)

// DefaultTimeout bounds a single enhancement network call.
const DefaultTimeout = 30 * time.Second

// TextEnhancer enhances text through an LLM client. Failures are absorbed
// into the returned Result, never propagated.
type TextEnhancer struct {
	client  llm.Client
	timeout time.Duration
}

// New wraps an LLM client as an Enhancer. A zero timeout uses
// DefaultTimeout.
func New(client llm.Client, timeout time.Duration) *TextEnhancer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &TextEnhancer{client: client, timeout: timeout}
}

// NewGemini creates a Gemini-backed enhancer from a caller-supplied API
// key. An empty model name uses the default.
func NewGemini(ctx context.Context, apiKey, model string, timeout time.Duration) (*TextEnhancer, error) {
	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig().WithModel(model), apiKey)
	if err != nil {
		return nil, err
	}
	return New(client, timeout), nil
}

// Enhance rewrites text for the given section. On timeout, network error,
// or an empty response it returns the original text with Err set.
func (e *TextEnhancer) Enhance(ctx context.Context, text, section string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Text: text}
	}

	key := "enhance_section"
	if section == SectionAchievements {
		key = "single_line"
	}
	prompt := prompts.Format(prompts.MustGet(key), map[string]string{
		"Section": section,
		"Text":    text,
	})

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	out, err := e.client.GenerateContent(ctx, prompt)
	if err != nil {
		return Result{Text: text, Err: err}
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return Result{Text: text}
	}
	return Result{Text: out, Enhanced: true}
}

// Close releases the underlying client.
func (e *TextEnhancer) Close() error {
	return e.client.Close()
}

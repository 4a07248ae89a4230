package llm

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds the generation settings for enhancement calls.
type Config struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultConfig returns the default generation settings. Temperature is
// moderate: enhancement rewrites prose rather than extracting structure.
func DefaultConfig() *Config {
	return &Config{
		Model:           DefaultModel,
		Temperature:     0.7,
		MaxOutputTokens: 1024,
	}
}

// WithModel returns a copy of the config using the given model name.
// An empty name keeps the current model.
func (c *Config) WithModel(model string) *Config {
	out := *c
	if model != "" {
		out.Model = model
	}
	return &out
}

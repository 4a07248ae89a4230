// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents CLI configuration loadable from a JSON file. All fields
// are optional; missing values use defaults or come from CLI flags. The
// Gemini API key is deliberately not a config field: credentials are only
// accepted at runtime, never from a file.
type Config struct {
	Resume string `json:"resume,omitempty"` // Path to resume JSON file
	Out    string `json:"out,omitempty"`    // Path to output PDF

	Model              string `json:"model,omitempty"`                // Gemini model name for enhancement
	CompileTimeoutSecs int    `json:"compile_timeout_secs,omitempty"` // Per-pass pdflatex timeout
	EnhanceTimeoutSecs int    `json:"enhance_timeout_secs,omitempty"` // Per-call enhancement timeout

	Port    int  `json:"port,omitempty"`    // HTTP server port
	Verbose bool `json:"verbose,omitempty"` // Print detailed progress
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.CompileTimeoutSecs < 0 {
		return fmt.Errorf("config error: 'compile_timeout_secs' must be non-negative")
	}
	if c.EnhanceTimeoutSecs < 0 {
		return fmt.Errorf("config error: 'enhance_timeout_secs' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.CompileTimeoutSecs == 0 {
		result.CompileTimeoutSecs = defaults.CompileTimeoutSecs
	}
	if result.EnhanceTimeoutSecs == 0 {
		result.EnhanceTimeoutSecs = defaults.EnhanceTimeoutSecs
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields are not merged: flags always win since unset and false
	// are indistinguishable.

	return result
}

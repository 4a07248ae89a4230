package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/compiling"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/schemas"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a resume PDF",
	Long: "Generates a one-page ATS-friendly PDF from a resume JSON file. " +
		"With an API key, free text is enhanced via Gemini first; on any " +
		"enhancement failure the original text is used.",
	RunE: runGenerate,
}

var (
	generateResumeFile  string
	generateOutFile     string
	generateAPIKey      string
	generateModel       string
	generateConfigFile  string
	generateNoEnhance   bool
	generateCompileSecs int
	generateEnhanceSecs int
)

func init() {
	generateCmd.Flags().StringVarP(&generateResumeFile, "resume", "r", "", "Path to resume JSON file (required)")
	generateCmd.Flags().StringVarP(&generateOutFile, "out", "o", "", "Path to output PDF (default <Full_Name>_Resume.pdf)")
	generateCmd.Flags().StringVarP(&generateAPIKey, "api-key", "k", "", "Gemini API key for text enhancement (optional)")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "Gemini model name")
	generateCmd.Flags().StringVarP(&generateConfigFile, "config", "c", "", "Path to JSON config file")
	generateCmd.Flags().BoolVar(&generateNoEnhance, "no-enhance", false, "Skip AI enhancement even if an API key is given")
	generateCmd.Flags().IntVar(&generateCompileSecs, "compile-timeout", 0, "Per-pass pdflatex timeout in seconds")
	generateCmd.Flags().IntVar(&generateEnhanceSecs, "enhance-timeout", 0, "Per-call enhancement timeout in seconds")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := mergeConfig(generateConfigFile, config.Config{
		Resume:             generateResumeFile,
		Out:                generateOutFile,
		Model:              generateModel,
		CompileTimeoutSecs: generateCompileSecs,
		EnhanceTimeoutSecs: generateEnhanceSecs,
	})
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}

	rec, err := loadRecord(cfg.Resume)
	if err != nil {
		return err
	}

	result, err := pipeline.Generate(cmd.Context(), rec, pipeline.Options{
		APIKey:         generateAPIKey,
		Model:          cfg.Model,
		EnhanceTimeout: time.Duration(cfg.EnhanceTimeoutSecs) * time.Second,
		CompileTimeout: time.Duration(cfg.CompileTimeoutSecs) * time.Second,
		SkipEnhance:    generateNoEnhance,
	})
	if err != nil {
		var cerr *compiling.Error
		if errors.As(err, &cerr) && cerr.Log != "" {
			fmt.Fprintln(os.Stderr, cerr.Log)
		}
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	outPath := cfg.Out
	if outPath == "" {
		outPath = strings.ReplaceAll(resume.StandardizeName(rec.FullName), " ", "_") + "_Resume.pdf"
	}
	if err := os.WriteFile(outPath, result.PDF, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Generated %s (%d bytes, enhanced: %t)\n", outPath, len(result.PDF), result.Enhanced)
	return nil
}

// loadRecord reads, schema-validates, and unmarshals a resume JSON file.
func loadRecord(path string) (*resume.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	if err := schemas.ValidateResume(data); err != nil {
		return nil, err
	}
	var rec resume.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return &rec, nil
}

// mergeConfig applies an optional config file underneath flag values.
func mergeConfig(path string, flags config.Config) (config.Config, error) {
	if path == "" {
		return flags, nil
	}
	fileCfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	merged := flags.MergeWithDefaults(*fileCfg)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

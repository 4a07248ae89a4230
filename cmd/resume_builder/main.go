// Package main provides the resume_builder CLI: generate an ATS-friendly
// one-page resume PDF from structured JSON input.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "ATS-friendly resume builder",
	Long: "resume_builder renders a structured resume into a one-page, " +
		"ATS-friendly PDF via LaTeX, with optional AI text enhancement.",
}

func main() {
	// Load .env for non-secret settings (port, model). API keys are only
	// accepted via flags or per-request fields.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

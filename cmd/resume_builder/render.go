package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/pipeline"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the LaTeX source without compiling",
	Long: "Renders a resume JSON file into LaTeX source for inspection or " +
		"manual compilation. No enhancement is applied.",
	RunE: runRender,
}

var (
	renderResumeFile string
	renderOutFile    string
)

func init() {
	renderCmd.Flags().StringVarP(&renderResumeFile, "resume", "r", "", "Path to resume JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutFile, "out", "o", "", "Path to output .tex file (default stdout)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	if renderResumeFile == "" {
		return fmt.Errorf("--resume is required")
	}

	rec, err := loadRecord(renderResumeFile)
	if err != nil {
		return err
	}

	source, err := pipeline.Render(rec)
	if err != nil {
		return err
	}

	if renderOutFile == "" {
		fmt.Fprint(os.Stdout, source)
		return nil
	}
	if err := os.WriteFile(renderOutFile, []byte(source), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Rendered LaTeX source to %s\n", renderOutFile)
	return nil
}

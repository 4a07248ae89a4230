package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/enhancing"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance",
	Short: "Enhance a text snippet",
	Long: "Runs a single text snippet through AI enhancement and prints the " +
		"result. On any failure the original text is printed unchanged.",
	RunE: runEnhance,
}

var (
	enhanceAPIKey      string
	enhanceText        string
	enhanceFile        string
	enhanceSection     string
	enhanceModel       string
	enhanceTimeoutSecs int
)

func init() {
	enhanceCmd.Flags().StringVarP(&enhanceAPIKey, "api-key", "k", "", "Gemini API key (required)")
	enhanceCmd.Flags().StringVarP(&enhanceText, "text", "t", "", "Text to enhance")
	enhanceCmd.Flags().StringVarP(&enhanceFile, "file", "f", "", "Read text from file instead of --text")
	enhanceCmd.Flags().StringVarP(&enhanceSection, "section", "s", enhancing.SectionSummary, "Resume section label")
	enhanceCmd.Flags().StringVar(&enhanceModel, "model", "", "Gemini model name")
	enhanceCmd.Flags().IntVar(&enhanceTimeoutSecs, "timeout", 0, "Timeout in seconds")
	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(cmd *cobra.Command, _ []string) error {
	if enhanceAPIKey == "" {
		return fmt.Errorf("--api-key is required")
	}
	if enhanceText == "" && enhanceFile == "" {
		return fmt.Errorf("either --text or --file is required")
	}
	if enhanceText != "" && enhanceFile != "" {
		return fmt.Errorf("--text and --file are mutually exclusive")
	}

	text := enhanceText
	if enhanceFile != "" {
		data, err := os.ReadFile(enhanceFile)
		if err != nil {
			return fmt.Errorf("failed to read text file: %w", err)
		}
		text = string(data)
	}

	enhancer, err := enhancing.NewGemini(cmd.Context(), enhanceAPIKey, enhanceModel,
		time.Duration(enhanceTimeoutSecs)*time.Second)
	if err != nil {
		return err
	}
	defer func() { _ = enhancer.Close() }()

	result := enhancer.Enhance(cmd.Context(), text, enhanceSection)
	if result.Err != nil {
		fmt.Fprintf(os.Stderr, "Warning: enhancement failed, using original text: %v\n", result.Err)
	}
	fmt.Fprintln(os.Stdout, result.Text)
	return nil
}

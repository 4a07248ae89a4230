package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: "Starts an HTTP server exposing resume generation endpoints for a " +
		"web form. The Gemini API key is supplied per request, never held " +
		"by the server.",
	RunE: runServe,
}

var (
	servePort        int
	serveModel       string
	serveConfigFile  string
	serveCompileSecs int
	serveEnhanceSecs int
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Gemini model name")
	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to JSON config file")
	serveCmd.Flags().IntVar(&serveCompileSecs, "compile-timeout", 0, "Per-pass pdflatex timeout in seconds")
	serveCmd.Flags().IntVar(&serveEnhanceSecs, "enhance-timeout", 0, "Per-call enhancement timeout in seconds")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := mergeConfig(serveConfigFile, config.Config{
		Port:               servePort,
		Model:              serveModel,
		CompileTimeoutSecs: serveCompileSecs,
		EnhanceTimeoutSecs: serveEnhanceSecs,
	})
	if err != nil {
		return err
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	srv := server.New(server.Config{
		Port:           cfg.Port,
		Model:          cfg.Model,
		EnhanceTimeout: time.Duration(cfg.EnhanceTimeoutSecs) * time.Second,
		CompileTimeout: time.Duration(cfg.CompileTimeoutSecs) * time.Second,
	})
	return srv.Start()
}

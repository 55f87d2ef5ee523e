package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahmoud/recruitify/internal/analysis"
	"github.com/mahmoud/recruitify/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing submission, review, job-posting, and statistics endpoints over the shared record store.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	analyzer, err := analysis.NewGeminiAnalyzer(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	srv, err := server.New(server.Config{
		Port:     cfg.Port,
		Store:    st,
		Analyzer: analyzer,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start()
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kupranin/jobswipe/internal/config"
	"github.com/kupranin/jobswipe/internal/server"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing the match scoring, deck, and ledger endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Default()
	if serveConfig != "" {
		loaded, err := config.Load(serveConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Environment supplies the secrets; flags win over the file.
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}
	if url := os.Getenv("REDIS_URL"); url != "" {
		cfg.RedisURL = url
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

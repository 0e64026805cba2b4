package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dutchdutchdutch/signalscore/internal/config"
	"github.com/dutchdutchdutch/signalscore/internal/crawl"
	"github.com/dutchdutchdutch/signalscore/internal/scoring"
	"github.com/dutchdutchdutch/signalscore/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scoring companies and retrieving score history.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	scoringCfg := scoring.DefaultConfig()
	if cfg.ScoringConfig != "" {
		scoringCfg, err = scoring.LoadConfig(cfg.ScoringConfig)
		if err != nil {
			return fmt.Errorf("failed to load scoring config: %w", err)
		}
	}

	srv, err := server.New(server.Config{
		Port:          cfg.Port,
		DatabaseURL:   cfg.DatabaseURL,
		Scoring:       scoringCfg,
		Crawl:         crawlOptions(cfg),
		MaxSatellites: cfg.MaxSatellites,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// resolveConfig loads the optional config file and overlays environment
// variables and defaults.
func resolveConfig(path string) (config.Config, error) {
	cfg := config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}
	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Default())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func crawlOptions(cfg config.Config) *crawl.Options {
	opts := crawl.DefaultOptions()
	if cfg.TimeoutSeconds > 0 {
		opts.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	if cfg.UserAgent != "" {
		opts.UserAgent = cfg.UserAgent
	}
	opts.UseBrowser = cfg.UseBrowser
	opts.Verbose = cfg.Verbose
	return opts
}

// Package config provides configuration loading and validation for the
// scoring service and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config holds the application configuration. Values come from a JSON
// file, environment variables, or CLI flags; later sources win.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty" validate:"gte=0,lte=65535"`
	DatabaseURL string `json:"database_url,omitempty"`

	// Scoring
	ScoringConfig string `json:"scoring_config,omitempty"` // Path to scoring weights JSON; empty uses built-in defaults

	// Harvesting
	MaxSatellites  int    `json:"max_satellites,omitempty" validate:"gte=0,lte=25"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" validate:"gte=0,lte=300"`
	UserAgent      string `json:"user_agent,omitempty"`
	UseBrowser     bool   `json:"use_browser,omitempty"` // Headless browser fallback for SPA sites
	Verbose        bool   `json:"verbose,omitempty"`
}

var validate = validator.New()

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:           8080,
		MaxSatellites:  5,
		TimeoutSeconds: 30,
	}
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field ranges and that referenced files exist.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("config error: field %q failed %q validation", e.Field(), e.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.ScoringConfig != "" {
		if _, err := os.Stat(c.ScoringConfig); os.IsNotExist(err) {
			return fmt.Errorf("config error: scoring config file not found: %s", c.ScoringConfig)
		}
	}

	return nil
}

// MergeWithDefaults returns a copy of c with zero-valued fields filled
// from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ScoringConfig == "" {
		result.ScoringConfig = defaults.ScoringConfig
	}
	if result.MaxSatellites == 0 {
		result.MaxSatellites = defaults.MaxSatellites
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.UserAgent == "" {
		result.UserAgent = defaults.UserAgent
	}
	if !result.UseBrowser {
		result.UseBrowser = defaults.UseBrowser
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

// FromEnv overlays environment variables onto c. PORT, DATABASE_URL,
// SCORING_CONFIG, MAX_SATELLITES, USE_BROWSER and VERBOSE are read when
// set.
func (c *Config) FromEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("SCORING_CONFIG"); v != "" {
		c.ScoringConfig = v
	}
	if v := os.Getenv("MAX_SATELLITES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxSatellites = n
		}
	}
	if v := os.Getenv("USE_BROWSER"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UseBrowser = b
		}
	}
	if v := os.Getenv("VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Verbose = b
		}
	}
}

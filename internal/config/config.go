// Package config provides configuration loading and validation for the server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kupranin/jobswipe/internal/deck"
)

// Config represents server configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or come from the
// environment (DATABASE_URL, REDIS_URL).
type Config struct {
	Port          int    `json:"port,omitempty"`           // HTTP listen port
	DatabaseURL   string `json:"database_url,omitempty"`   // PostgreSQL connection URL
	RedisURL      string `json:"redis_url,omitempty"`      // Optional Redis URL for the deck cache
	DeckThreshold int    `json:"deck_threshold,omitempty"` // Minimum score for deck entries (0-100)
	DeckPoolSize  int    `json:"deck_pool_size,omitempty"` // Maximum counterpart profiles evaluated per deck
	DeckCacheTTL  int    `json:"deck_cache_ttl,omitempty"` // Deck cache TTL in seconds
	MatchListMax  int    `json:"match_list_max,omitempty"` // Page size cap for GET /matches
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:          8080,
		DeckThreshold: deck.DefaultThreshold,
		DeckPoolSize:  500,
		MatchListMax:  100,
	}
}

// Load loads configuration from a JSON file, merged over defaults.
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

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in 1-65535")
	}
	if c.DeckThreshold < 0 || c.DeckThreshold > 100 {
		return fmt.Errorf("config error: 'deck_threshold' must be in 0-100")
	}
	if c.DeckPoolSize < 0 {
		return fmt.Errorf("config error: 'deck_pool_size' must be non-negative")
	}
	if c.DeckCacheTTL < 0 {
		return fmt.Errorf("config error: 'deck_cache_ttl' must be non-negative")
	}
	if c.MatchListMax < 0 {
		return fmt.Errorf("config error: 'match_list_max' must be non-negative")
	}
	return nil
}

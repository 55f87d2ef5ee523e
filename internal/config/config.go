// Package config provides configuration loading and validation.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/mahmoud/recruitify/internal/session"
)

// Config holds the settings shared by the CLI and the server. All fields
// are optional in the file; missing values fall back to environment
// variables and defaults.
type Config struct {
	// Remote record store
	DatabaseURL   string `json:"database_url,omitempty"`   // Realtime Database base URL
	DatabaseToken string `json:"database_token,omitempty"` // optional auth token

	// AI service
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`

	// Local state
	SessionFile string `json:"session_file,omitempty"`

	// Server
	Port int `json:"port,omitempty"`
}

// Environment variable names.
const (
	EnvDatabaseURL   = "FIREBASE_DATABASE_URL"
	EnvDatabaseToken = "FIREBASE_DATABASE_TOKEN"
	EnvGeminiAPIKey  = "GEMINI_API_KEY"
	EnvPort          = "PORT"
)

// DefaultPort is used when neither the file nor the environment sets one.
const DefaultPort = 8080

// Load reads the optional JSON config file at path and fills any gaps
// from the environment. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv(EnvDatabaseURL)
	}
	if c.DatabaseToken == "" {
		c.DatabaseToken = os.Getenv(EnvDatabaseToken)
	}
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv(EnvGeminiAPIKey)
	}
	if c.Port == 0 {
		if port, err := strconv.Atoi(os.Getenv(EnvPort)); err == nil {
			c.Port = port
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.SessionFile == "" {
		c.SessionFile = session.DefaultFile
	}
}

// Validate checks that the settings required for store access are present.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: database URL is required (set %s)", EnvDatabaseURL)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	return nil
}

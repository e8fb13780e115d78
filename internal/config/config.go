// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the server configuration, loadable from a JSON file.
// All fields are optional; missing values use defaults or environment
// variables (DATABASE_URL, JWT_SECRET).
type Config struct {
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	ContentDir  string `json:"content_dir,omitempty"`  // Directory with site content JSON files
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	JWTSecret   string `json:"jwt_secret,omitempty"`   // Admin token signing secret
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

	return &cfg, nil
}

// ApplyEnv fills unset values from environment variables.
func (c *Config) ApplyEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.JWTSecret == "" {
		c.JWTSecret = os.Getenv("JWT_SECRET")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.ContentDir != "" {
		if _, err := os.Stat(c.ContentDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: content directory not found: %s", c.ContentDir)
		}
	}
	return nil
}

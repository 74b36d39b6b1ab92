// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment.
type Config struct {
	// DatabaseURL is the PostgreSQL connection URL. Falls back to the
	// DATABASE_URL environment variable.
	DatabaseURL string `json:"database_url,omitempty"`

	// JobKey selects the job dedup key strategy: "source_url" (default)
	// or "title_company". Pick one per deployment and keep it; mixing
	// strategies across runs makes duplicate detection inconsistent.
	JobKey string `json:"job_key,omitempty"`

	// Vocabulary is an optional path to a JSON file overriding the
	// built-in extraction vocabularies.
	Vocabulary string `json:"vocabulary,omitempty"`

	// Verbose prints detailed per-entry extraction information.
	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
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

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.JobKey {
	case "", "source_url", "title_company":
	default:
		return fmt.Errorf("config error: 'job_key' must be 'source_url' or 'title_company', got %q", c.JobKey)
	}

	if c.Vocabulary != "" {
		if _, err := os.Stat(c.Vocabulary); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.Vocabulary)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values underneath CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.JobKey == "" {
		result.JobKey = defaults.JobKey
	}
	if result.Vocabulary == "" {
		result.Vocabulary = defaults.Vocabulary
	}
	// Bool fields: cannot distinguish unset from false, so CLI flags win.

	return result
}

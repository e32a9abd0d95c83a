// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Job    string `json:"job,omitempty"`     // Path to job description JSON file
	JobURL string `json:"job_url,omitempty"` // URL to fetch a job posting from

	// Matching
	TopK               int     `json:"top_k,omitempty"`                // Number of matches to return
	MinExperience      float64 `json:"min_experience,omitempty"`       // Hard filter: minimum years of experience
	Location           string  `json:"location,omitempty"`             // Hard filter: exact location
	MinAssessmentScore float64 `json:"min_assessment_score,omitempty"` // Hard filter: minimum average assessment score (0-100)

	// Behavior
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name
	UseBrowser     bool   `json:"use_browser,omitempty"`     // Use headless browser for SPA job boards
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed debug information
	DatabaseURL    string `json:"database_url,omitempty"`    // PostgreSQL connection URL
	ListenAddr     string `json:"listen_addr,omitempty"`     // HTTP server listen address
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.TopK < 0 {
		return fmt.Errorf("config error: 'top_k' must be non-negative")
	}
	if c.MinExperience < 0 {
		return fmt.Errorf("config error: 'min_experience' must be non-negative")
	}
	if c.MinAssessmentScore < 0 || c.MinAssessmentScore > 100 {
		return fmt.Errorf("config error: 'min_assessment_score' must be between 0 and 100")
	}

	// Validate file paths exist (if specified)
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}

	// Numeric fields: use default if zero
	if result.TopK == 0 {
		result.TopK = defaults.TopK
	}
	if result.MinExperience == 0 {
		result.MinExperience = defaults.MinExperience
	}
	if result.MinAssessmentScore == 0 {
		result.MinAssessmentScore = defaults.MinAssessmentScore
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

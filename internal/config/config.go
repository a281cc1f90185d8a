// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harshtikone/resumeforge/internal/keywords"
	"github.com/harshtikone/resumeforge/internal/pagefit"
	"github.com/harshtikone/resumeforge/internal/selection"
)

// Config holds the tunables that gate generation behavior plus collaborator
// settings. All fields are optional in the JSON file; missing values use the
// documented defaults or must be provided via CLI flags / environment.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Generative collaborator
	GeminiAPIKey string `json:"api_key,omitempty"`
	GeminiModel  string `json:"model,omitempty"`

	// Page budget and trimming
	MaxResumeLines   int `json:"max_resume_lines,omitempty"`   // rendered line ceiling (default 70)
	MaxFitIterations int `json:"max_fit_iterations,omitempty"` // trim loop bound (default 200)

	// Selection caps
	MaxExperiences    int `json:"max_experiences,omitempty"`    // default 3
	MaxProjects       int `json:"max_projects,omitempty"`       // default 2
	MaxCertifications int `json:"max_certifications,omitempty"` // default 3

	// Keyword extraction
	MaxKeywords int `json:"max_keywords,omitempty"` // default 30
}

// Default returns a Config populated with the documented defaults.
func Default() *Config {
	return &Config{
		Port:              8080,
		GeminiModel:       "gemini-2.0-flash",
		MaxResumeLines:    pagefit.DefaultMaxLines,
		MaxFitIterations:  pagefit.DefaultMaxIterations,
		MaxExperiences:    selection.DefaultMaxExperiences,
		MaxProjects:       selection.DefaultMaxProjects,
		MaxCertifications: selection.DefaultMaxCertification,
		MaxKeywords:       keywords.MaxKeywords,
	}
}

// Load reads configuration from a JSON file and fills unset fields with
// defaults. Returns an error if the file cannot be read or parsed.
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

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills zero-valued fields with the documented defaults.
func (c *Config) ApplyDefaults() {
	d := Default()
	if c.Port == 0 {
		c.Port = d.Port
	}
	if c.GeminiModel == "" {
		c.GeminiModel = d.GeminiModel
	}
	if c.MaxResumeLines == 0 {
		c.MaxResumeLines = d.MaxResumeLines
	}
	if c.MaxFitIterations == 0 {
		c.MaxFitIterations = d.MaxFitIterations
	}
	if c.MaxExperiences == 0 {
		c.MaxExperiences = d.MaxExperiences
	}
	if c.MaxProjects == 0 {
		c.MaxProjects = d.MaxProjects
	}
	if c.MaxCertifications == 0 {
		c.MaxCertifications = d.MaxCertifications
	}
	if c.MaxKeywords == 0 {
		c.MaxKeywords = d.MaxKeywords
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxResumeLines < 1 {
		return fmt.Errorf("config error: 'max_resume_lines' must be positive")
	}
	if c.MaxFitIterations < 1 {
		return fmt.Errorf("config error: 'max_fit_iterations' must be positive")
	}
	if c.MaxExperiences < 1 || c.MaxProjects < 1 || c.MaxCertifications < 1 {
		return fmt.Errorf("config error: selection caps must be positive")
	}
	if c.MaxKeywords < 1 {
		return fmt.Errorf("config error: 'max_keywords' must be positive")
	}
	return nil
}

// Caps returns the selection caps as a selection.Caps value.
func (c *Config) Caps() selection.Caps {
	return selection.Caps{
		Experiences:    c.MaxExperiences,
		Projects:       c.MaxProjects,
		Certifications: c.MaxCertifications,
	}
}

// FitOptions returns the page-fit options derived from this configuration.
func (c *Config) FitOptions() pagefit.Options {
	return pagefit.Options{
		MaxLines:      c.MaxResumeLines,
		MaxIterations: c.MaxFitIterations,
	}
}

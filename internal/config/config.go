// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/yuvaraja/smartpay-agent/internal/backend"
)

// DefaultReportDir is where generated reports land unless configured otherwise.
const DefaultReportDir = "reports"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	// Backend
	BackendURL string `json:"backend_url,omitempty"` // Base URL of the prediction backend
	APIKey     string `json:"api_key,omitempty"`     // Optional static credential sent as x-api-key

	// Timeouts (seconds)
	PredictTimeoutSec   int `json:"predict_timeout_sec,omitempty"`
	AnalyticsTimeoutSec int `json:"analytics_timeout_sec,omitempty"`

	// Behavior
	ReportDir string `json:"report_dir,omitempty"` // Directory for generated PDF reports
	Verbose   bool   `json:"verbose,omitempty"`    // Print detailed output
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

// FromEnv builds a Config from SMARTPAY_* environment variables.
func FromEnv() Config {
	return Config{
		BackendURL: os.Getenv("SMARTPAY_BACKEND_URL"),
		APIKey:     os.Getenv("SMARTPAY_API_KEY"),
		ReportDir:  os.Getenv("SMARTPAY_REPORT_DIR"),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("config error: backend URL is required (flag, config file, or SMARTPAY_BACKEND_URL)")
	}
	parsed, err := url.Parse(c.BackendURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config error: invalid backend URL %q", c.BackendURL)
	}

	if c.PredictTimeoutSec < 0 {
		return fmt.Errorf("config error: 'predict_timeout_sec' must be non-negative")
	}
	if c.AnalyticsTimeoutSec < 0 {
		return fmt.Errorf("config error: 'analytics_timeout_sec' must be non-negative")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values over environment values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BackendURL == "" {
		result.BackendURL = defaults.BackendURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ReportDir == "" {
		result.ReportDir = defaults.ReportDir
	}
	if result.PredictTimeoutSec == 0 {
		result.PredictTimeoutSec = defaults.PredictTimeoutSec
	}
	if result.AnalyticsTimeoutSec == 0 {
		result.AnalyticsTimeoutSec = defaults.AnalyticsTimeoutSec
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// PredictTimeout returns the configured prediction timeout or the default.
func (c *Config) PredictTimeout() time.Duration {
	if c.PredictTimeoutSec > 0 {
		return time.Duration(c.PredictTimeoutSec) * time.Second
	}
	return backend.DefaultPredictTimeout
}

// AnalyticsTimeout returns the configured analytics timeout or the default.
func (c *Config) AnalyticsTimeout() time.Duration {
	if c.AnalyticsTimeoutSec > 0 {
		return time.Duration(c.AnalyticsTimeoutSec) * time.Second
	}
	return backend.DefaultAnalyticsTimeout
}

// ResolvedReportDir returns the configured report directory or the default.
func (c *Config) ResolvedReportDir() string {
	if c.ReportDir != "" {
		return c.ReportDir
	}
	return DefaultReportDir
}

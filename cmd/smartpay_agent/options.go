package main

import (
	"github.com/yuvaraja/smartpay-agent/internal/backend"
	"github.com/yuvaraja/smartpay-agent/internal/config"
)

// buildConfig merges the config file (if any), environment variables, and
// flag values into one validated Config. Flags win over the file; the file
// wins over the environment.
func buildConfig(configPath, backendURL, apiKey string) (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	merged := cfg.MergeWithDefaults(config.FromEnv())
	if backendURL != "" {
		merged.BackendURL = backendURL
	}
	if apiKey != "" {
		merged.APIKey = apiKey
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// newBackendClient builds the backend client from a validated config.
func newBackendClient(cfg *config.Config) (*backend.Client, error) {
	return backend.NewClient(cfg.BackendURL, &backend.Options{
		APIKey:           cfg.APIKey,
		PredictTimeout:   cfg.PredictTimeout(),
		AnalyticsTimeout: cfg.AnalyticsTimeout(),
	})
}

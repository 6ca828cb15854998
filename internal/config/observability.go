package config

import (
	"fmt"
	"slices"
)

// ServiceName identifies this service in logs.
const ServiceName = "reqvalidate"

// ObservabilityConfig groups all configuration related to runtime visibility.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs.
	// Always overwritten in LoadConfig.
	ServiceName string `koanf:"service_name" validate:"required"`

	// Environment is a label used to split logs by environment
	// (production, staging, development, etc.).
	Environment string `koanf:"environment" validate:"required"`

	// Logging config controls structured logger behavior.
	Logging LoggingConfig `koanf:"logging" validate:"required"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	// An empty level is resolved by GetLogLevel.
	Level string `koanf:"level"`

	// Format selects the output format: "json" or "console".
	Format string `koanf:"format" validate:"required,oneof=json console"`
}

// validLevels is the accepted set of logging levels.
var validLevels = []string{"debug", "info", "warn", "error"}

// DefaultObservabilityConfig provides a safe set of defaults.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: ServiceName,
		Environment: "development",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate applies custom validation rules that go beyond struct tags.
//
// Returns:
//   - nil if configuration is valid
//   - an error describing the first validation failure
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	if level := c.GetLogLevel(); !slices.Contains(validLevels, level) {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", level)
	}

	return nil
}

// GetLogLevel returns the effective log level to use at runtime.
//
// It supports "defaulting by environment":
//   - In production: default to "info" if no level is set.
//   - Anywhere else: default to "debug" if no level is set.
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}

	if c.IsProduction() {
		return "info"
	}
	return "debug"
}

// IsProduction reports whether the application is running in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}

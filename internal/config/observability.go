package config

import (
	"fmt"
)

// ServiceName identifies this function in logs and APM dashboards.
const ServiceName = "connect-case-creator"

// ObservabilityConfig groups all configuration related to telemetry and runtime visibility.
//
// This includes:
//   - logging settings (format, level)
//   - New Relic APM agent settings
//
// It is optional at the root level (pointer in Config). If omitted, defaults are injected.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs/traces/APM dashboards.
	// Always forced to ServiceName.
	ServiceName string `koanf:"service_name"`

	// Environment splits telemetry by environment (production, staging, development).
	// Always copied from Primary.Env.
	Environment string `koanf:"environment"`

	Logging LoggingConfig `koanf:"logging"`

	NewRelic NewRelicConfig `koanf:"new_relic"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	// Empty means "pick by environment", see GetLogLevel.
	Level string `koanf:"level" env:"LOG_LEVEL"`

	// Format selects the output format: "json" for CloudWatch,
	// "console" for humans running the function locally.
	Format string `koanf:"format" env:"LOG_FORMAT" validate:"oneof=json console"`
}

// NewRelicConfig holds configuration for the New Relic agent.
//
// LicenseKey is required only if New Relic is enabled.
type NewRelicConfig struct {
	Enabled bool `koanf:"enabled" env:"NEW_RELIC_ENABLED"`

	AppName string `koanf:"app_name" env:"NEW_RELIC_APP_NAME"`

	LicenseKey string `koanf:"license_key" env:"NEW_RELIC_LICENSE_KEY"`

	// AppLogForwardingEnabled decorates zerolog lines with New Relic linking metadata.
	AppLogForwardingEnabled bool `koanf:"app_log_forwarding_enabled" env:"NEW_RELIC_APP_LOG_FORWARDING_ENABLED"`

	DistributedTracingEnabled bool `koanf:"distributed_tracing_enabled" env:"NEW_RELIC_DISTRIBUTED_TRACING_ENABLED"`

	// DebugLogging enables debug output for the agent.
	// Off by default to avoid mixed log formats.
	DebugLogging bool `koanf:"debug_logging" env:"NEW_RELIC_DEBUG_LOGGING"`
}

// DefaultObservabilityConfig provides a safe set of defaults.
//
// Used as the base that environment values are unmarshalled on top of.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: ServiceName,
		Environment: "production",

		// Level is left empty so GetLogLevel can choose by environment.
		Logging: LoggingConfig{
			Format: "json",
		},

		NewRelic: NewRelicConfig{
			Enabled:                   false,
			AppName:                   ServiceName,
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false,
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

	validLevels := map[string]bool{
		"":      true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	if c.NewRelic.Enabled {
		if c.NewRelic.AppName == "" {
			return fmt.Errorf("new_relic app_name is required when new_relic is enabled")
		}
		if c.NewRelic.LicenseKey == "" {
			return fmt.Errorf("new_relic license_key is required when new_relic is enabled")
		}
	}

	return nil
}

// GetLogLevel returns the effective log level to use at runtime.
//
// It supports "defaulting by environment":
//   - In production: default to "info" if no level is set.
//   - In development: default to "debug" if no level is set.
//   - Anywhere else: default to "info".
//
// Otherwise it returns whatever c.Logging.Level is set to.
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}

	if c.Environment == "development" {
		return "debug"
	}

	return "info"
}

// IsProduction reports whether the function is running in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}

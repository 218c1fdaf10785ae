// Package config resolves the pathgraph CLI settings from the environment.
// Flags parsed by internal/cli override these values.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config aggregates CLI configuration values.
type Config struct {
	Logging LoggingConfig
	Output  string // json|yaml
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string // debug|info|warn|error
	Format string // console|json
}

// Environment variable names.
const (
	EnvLogLevel  = "PATHGRAPH_LOG_LEVEL"
	EnvLogFormat = "PATHGRAPH_LOG_FORMAT"
	EnvOutput    = "PATHGRAPH_OUTPUT"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	defaultOutput    = "json"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load reads configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom reads configuration through lookup, applying defaults for unset
// or blank variables, and validates the result.
func LoadFrom(lookup LookupFunc) (Config, error) {
	cfg := Config{
		Logging: LoggingConfig{
			Level:  valueOrDefault(lookup, EnvLogLevel, defaultLogLevel),
			Format: valueOrDefault(lookup, EnvLogFormat, defaultLogFormat),
		},
		Output: valueOrDefault(lookup, EnvOutput, defaultOutput),
	}

	return cfg, cfg.Validate()
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unsupported log level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: unsupported log format %q", c.Logging.Format)
	}
	switch c.Output {
	case "json", "yaml":
	default:
		return fmt.Errorf("config: unsupported output format %q", c.Output)
	}

	return nil
}

func valueOrDefault(lookup LookupFunc, key, fallback string) string {
	if v, ok := lookup(key); ok {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			return v
		}
	}

	return fallback
}

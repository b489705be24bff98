// Package config provides configuration types and defaults for modelstore.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/modelstore/internal/log"
)

// Config holds all configuration options for modelstore.
type Config struct {
	// EnvironmentPath points at the YAML environment file to load.
	// Default: ./environment.yaml
	EnvironmentPath string `mapstructure:"environment_path"`

	AutoReload bool          `mapstructure:"auto_reload"`
	Cache      CacheConfig   `mapstructure:"cache"`
	Tracing    TracingConfig `mapstructure:"tracing"`
	Providers  []string      `mapstructure:"providers"` // extra environment files consulted after the primary
}

// CacheConfig holds read-through cache configuration.
type CacheConfig struct {
	// Enabled controls whether lookups go through the in-memory cache.
	// Default: true
	Enabled *bool `mapstructure:"enabled"`

	// TTLSeconds is how long a resolved identifiable stays cached.
	// Default: 600
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

// IsEnabled returns whether caching is enabled (defaults to true if nil).
func (c CacheConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// TracingConfig holds tracing configuration for provider lookups.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/modelstore/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/modelstore/traces/traces.jsonl or empty string if home
// dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "modelstore", "traces", "traces.jsonl")
}

// Validate checks the configuration for errors.
// Empty values fall back to defaults and are not errors.
func Validate(cfg Config) error {
	if cfg.Cache.TTLSeconds < 0 {
		return fmt.Errorf("cache.ttl_seconds must not be negative, got %d", cfg.Cache.TTLSeconds)
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		EnvironmentPath: "environment.yaml",
		AutoReload:      true,
		Cache: CacheConfig{
			TTLSeconds: 600,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Modelstore Configuration

# Path to the YAML environment file (default: ./environment.yaml)
environment_path: environment.yaml

# Reload the store automatically when the environment file changes
auto_reload: true

# Additional environment files consulted, in order, when an identifier is
# not found in the primary environment
# providers:
#   - /path/to/shared-environment.yaml

# Read-through cache for provider lookups
cache:
  enabled: true
  ttl_seconds: 600

# Tracing for provider lookups
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/modelstore/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}

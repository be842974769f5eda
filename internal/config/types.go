package config

import (
	"time"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Defaults.
const (
	DefaultTickInterval = 500 * time.Millisecond
	DefaultFallbackWait = 250 * time.Millisecond
	DefaultColor        = "auto"
	DefaultLogLevel     = "info"

	// MinTickInterval keeps the redraw rate sane.
	MinTickInterval = 50 * time.Millisecond
)

// Config represents the .fasam.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// TickInterval is the target time between redraws.
	TickInterval time.Duration `yaml:"tick_interval" mapstructure:"tick_interval"`

	// FallbackWait bounds the input wait when a tick has already overrun.
	FallbackWait time.Duration `yaml:"fallback_wait" mapstructure:"fallback_wait"`

	// LogRetention keeps only the newest N log entries. 0 keeps everything.
	LogRetention int `yaml:"log_retention" mapstructure:"log_retention"`

	// Seed fixes the synthetic alarm history. 0 picks a random seed.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`

	// Color mode: "auto", "always", or "never".
	Color string `yaml:"color" mapstructure:"color"`

	// DebugLog is a file for diagnostics. Empty disables them.
	DebugLog string `yaml:"debug_log" mapstructure:"debug_log"`

	// LogLevel for the diagnostics file: "debug", "info", "warn", or "error".
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`

	// MetricsFile receives a Prometheus textfile dump on exit. Empty disables it.
	MetricsFile string `yaml:"metrics_file" mapstructure:"metrics_file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:      CurrentConfigVersion,
		TickInterval: DefaultTickInterval,
		FallbackWait: DefaultFallbackWait,
		Color:        DefaultColor,
		LogLevel:     DefaultLogLevel,
	}
}

// fileConfig is the on-disk shape. Durations are written as strings like "500ms".
type fileConfig struct {
	Version      int    `yaml:"version"`
	TickInterval string `yaml:"tick_interval"`
	FallbackWait string `yaml:"fallback_wait"`
	LogRetention int    `yaml:"log_retention"`
	Seed         uint64 `yaml:"seed"`
	Color        string `yaml:"color"`
	DebugLog     string `yaml:"debug_log"`
	LogLevel     string `yaml:"log_level"`
	MetricsFile  string `yaml:"metrics_file"`
}

// MarshalYAML implements yaml.Marshaler.
func (c Config) MarshalYAML() (interface{}, error) {
	return fileConfig{
		Version:      c.Version,
		TickInterval: c.TickInterval.String(),
		FallbackWait: c.FallbackWait.String(),
		LogRetention: c.LogRetention,
		Seed:         c.Seed,
		Color:        c.Color,
		DebugLog:     c.DebugLog,
		LogLevel:     c.LogLevel,
		MetricsFile:  c.MetricsFile,
	}, nil
}

// Keys lists every config key in file order.
var Keys = []string{
	"version",
	"tick_interval",
	"fallback_wait",
	"log_retention",
	"seed",
	"color",
	"debug_log",
	"log_level",
	"metrics_file",
}

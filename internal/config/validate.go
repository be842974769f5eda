package config

import (
	"fmt"
	"slices"

	"github.com/rileyhilliard/fasam/internal/errors"
	"github.com/rileyhilliard/fasam/internal/logger"
)

// ColorModes are the accepted values of the color key.
var ColorModes = []string{"auto", "always", "never"}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but fasam only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade fasam or lower the version in your config.")
	}

	if cfg.TickInterval < MinTickInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("tick_interval %s is too short", cfg.TickInterval),
			fmt.Sprintf("Use %s or more, e.g. tick_interval: 500ms", MinTickInterval))
	}

	if cfg.FallbackWait <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("fallback_wait must be positive, got %s", cfg.FallbackWait),
			"Set fallback_wait to a duration like 250ms.")
	}

	if cfg.LogRetention < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("log_retention can't be negative, got %d", cfg.LogRetention),
			"Use 0 to keep every entry, or a positive count.")
	}

	if !slices.Contains(ColorModes, cfg.Color) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown color mode '%s'", cfg.Color),
			"Use one of: auto, always, never.")
	}

	if !slices.Contains(logger.Levels, cfg.LogLevel) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown log_level '%s'", cfg.LogLevel),
			"Use one of: debug, info, warn, error.")
	}

	return nil
}

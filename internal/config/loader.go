package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/rileyhilliard/fasam/internal/errors"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".fasam.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/fasam"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. FASAM_TICK_INTERVAL.
	EnvPrefix = "FASAM"
)

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .fasam.yaml in current directory
// 3. ~/.config/fasam/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct, or run 'fasam config init --path "+explicit+"'")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}
	if local := filepath.Join(cwd, ConfigFileName); fileExists(local) {
		return local, nil
	}

	if global := GlobalPath(); global != "" && fileExists(global) {
		return global, nil
	}

	return "", nil
}

// GlobalPath returns ~/.config/fasam/config.yaml, or "" when the home
// directory is unknown.
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
}

// Load resolves the config from defaults, the config file found by Find
// and FASAM_* environment variables, in increasing precedence. The returned
// path is the file that was read, or "" when only defaults and env applied.
func Load(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check "+path+" is valid YAML")
		}
	}

	cfg, err := decode(v, path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// parseBytes decodes YAML content as if it were a config file.
func parseBytes(data []byte, path string) (*Config, error) {
	v := newViper()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse config",
			"Check "+path+" is valid YAML")
	}
	return decode(v, path)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers every key so env overrides apply on Unmarshal.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("tick_interval", d.TickInterval.String())
	v.SetDefault("fallback_wait", d.FallbackWait.String())
	v.SetDefault("log_retention", d.LogRetention)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("color", d.Color)
	v.SetDefault("debug_log", d.DebugLog)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("metrics_file", d.MetricsFile)
}

// decode unmarshals and validates.
func decode(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		source := "your config"
		if path != "" {
			source = path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the values in "+source+" and any FASAM_* environment variables")
	}

	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/fasam/internal/errors"
)

func TestMarshal_WritesDurationsAsStrings(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "tick_interval: 500ms")
	assert.Contains(t, out, "fallback_wait: 250ms")
	assert.Contains(t, out, "color: auto")
	assert.Contains(t, out, "log_level: info")
	for _, key := range Keys {
		assert.Contains(t, out, key+":")
	}
}

func TestWrite_RoundTripsThroughLoad(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.TickInterval = 750 * time.Millisecond
	cfg.Seed = 99
	cfg.LogRetention = 10
	require.NoError(t, Write(path, cfg, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# fasam dashboard configuration")

	loaded, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestWrite_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("seed: 1\n"), 0644))

	err := Write(path, DefaultConfig(), false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "--force")

	require.NoError(t, Write(path, DefaultConfig(), true))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "seed: 0")
}

func TestSet(t *testing.T) {
	tests := []struct {
		name         string
		initialYAML  string
		key          string
		value        string
		wantContains []string
		wantErr      string
	}{
		{
			name:         "replace existing key",
			initialYAML:  "# keep me\ntick_interval: 500ms\nseed: 1\n",
			key:          "seed",
			value:        "42",
			wantContains: []string{"# keep me", "seed: 42", "tick_interval: 500ms"},
		},
		{
			name:         "append missing key",
			initialYAML:  "seed: 1\n",
			key:          "color",
			value:        "never",
			wantContains: []string{"seed: 1", "color: never"},
		},
		{
			name:         "empty file",
			initialYAML:  "",
			key:          "log_retention",
			value:        "50",
			wantContains: []string{"log_retention: 50"},
		},
		{
			name:        "unknown key",
			initialYAML: "seed: 1\n",
			key:         "hosts",
			value:       "x",
			wantErr:     "Unknown config key",
		},
		{
			name:        "invalid value",
			initialYAML: "seed: 1\n",
			key:         "tick_interval",
			value:       "1ms",
			wantErr:     "too short",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), ConfigFileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.initialYAML), 0644))

			err := Set(path, tt.key, tt.value)

			data, readErr := os.ReadFile(path)
			require.NoError(t, readErr)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, tt.initialYAML, string(data), "file is untouched on error")
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, string(data), want)
			}
		})
	}
}

func TestSet_MissingFile(t *testing.T) {
	err := Set(filepath.Join(t.TempDir(), "missing.yaml"), "seed", "1")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

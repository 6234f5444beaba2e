package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, ":9090", cfg.GRPCAddr)
	assert.Equal(t, "data/loot_items.json", cfg.CatalogPath)
	assert.Equal(t, "data/materials.json", cfg.MaterialsPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 2*time.Second, cfg.WatchInterval)
	assert.Equal(t, 100000, cfg.MaxBudget)
	assert.Equal(t, 10000, cfg.MaxTrials)
	assert.Equal(t, 16, cfg.CacheSize)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("LOOTGEN_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("LOOTGEN_LOG_FORMAT", "json")
	t.Setenv("LOOTGEN_WATCH_INTERVAL", "0s")
	t.Setenv("LOOTGEN_MAX_BUDGET", "500")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, time.Duration(0), cfg.WatchInterval)
	assert.Equal(t, 500, cfg.MaxBudget)
}

func TestFromEnv_Errors(t *testing.T) {
	tests := []struct {
		name, key, value, want string
	}{
		{"bad int", "LOOTGEN_MAX_BUDGET", "lots", "parse env"},
		{"bad duration", "LOOTGEN_WATCH_INTERVAL", "soon", "parse env"},
		{"unknown level", "LOOTGEN_LOG_LEVEL", "loud", "invalid config"},
		{"zero trials", "LOOTGEN_MAX_TRIALS", "0", "invalid config"},
		{"negative interval", "LOOTGEN_WATCH_INTERVAL", "-1s", "invalid config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

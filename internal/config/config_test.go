package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USER", "tester")
	for _, key := range []string{
		"STUDYPAL_CONFIG", "STUDYPAL_DB", "STUDYPAL_USER", "STUDYPAL_ADAPTIVE",
		"STUDYPAL_RECOMPUTE_INTERVAL", "STUDYPAL_LOG_LEVEL", "STUDYPAL_LOG_FORMAT",
		"STUDYPAL_CACHE_SIZE", "STUDYPAL_METRICS_ADDR", "STUDYPAL_DETERMINISTIC",
	} {
		t.Setenv(key, "")
	}
	return home
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".studypal", "studypal.db"), cfg.DBPath)
	assert.Equal(t, "tester", cfg.UserID)
	assert.False(t, cfg.Adaptive)
	assert.Equal(t, DefaultRecomputeInterval, cfg.RecomputeInterval)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 1, cfg.CacheSize)
	assert.Empty(t, cfg.MetricsAddr)
	assert.False(t, cfg.Deterministic)
}

func TestLoad_HomeFileOverridesDefaults(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".studypal", "config.yaml"), `
user_id: alice
adaptive: true
recompute_interval: 90s
log_format: json
deterministic: true
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.UserID)
	assert.True(t, cfg.Adaptive)
	assert.Equal(t, 90*time.Second, cfg.RecomputeInterval)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.Deterministic)
	assert.Equal(t, "info", cfg.LogLevel, "keys missing from the file keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.yaml")
	writeFile(t, path, "user_id: alice\ncache_size: 4\n")
	t.Setenv("STUDYPAL_CONFIG", path)
	t.Setenv("STUDYPAL_USER", "bob")
	t.Setenv("STUDYPAL_DB", ":memory:")
	t.Setenv("STUDYPAL_ADAPTIVE", "true")
	t.Setenv("STUDYPAL_RECOMPUTE_INTERVAL", "1m")
	t.Setenv("STUDYPAL_METRICS_ADDR", ":9464")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "bob", cfg.UserID)
	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.True(t, cfg.Adaptive)
	assert.Equal(t, time.Minute, cfg.RecomputeInterval)
	assert.Equal(t, 4, cfg.CacheSize)
	assert.Equal(t, ":9464", cfg.MetricsAddr)
}

func TestLoad_MalformedEnvKeepsPreviousValue(t *testing.T) {
	isolate(t)
	t.Setenv("STUDYPAL_CACHE_SIZE", "many")
	t.Setenv("STUDYPAL_RECOMPUTE_INTERVAL", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultCacheSize, cfg.CacheSize)
	assert.Equal(t, DefaultRecomputeInterval, cfg.RecomputeInterval)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	home := isolate(t)
	t.Setenv("STUDYPAL_CONFIG", filepath.Join(home, "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidYAMLFails(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".studypal", "config.yaml"), "user_id: [unclosed\n")

	_, err := Load()
	assert.ErrorContains(t, err, "parsing config")
}

func TestValidate(t *testing.T) {
	base := Defaults("/tmp")
	base.UserID = "u1"
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty user", func(c *Config) { c.UserID = " " }},
		{"zero interval", func(c *Config) { c.RecomputeInterval = 0 }},
		{"zero cache", func(c *Config) { c.CacheSize = 0 }},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, DefaultTargetURL, cfg.Scraper.TargetURL)
	assert.Equal(t, 3*time.Second, cfg.Browser.InitialWait)
	assert.Equal(t, 6*time.Second, cfg.Browser.RenderWait)
	assert.False(t, cfg.Cache.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8080
scraper:
  timeout: 5s
  cloud_mode: true
browser:
  render_wait: 2s
prediction:
  noise: 0
  team_strengths:
    Gor Mahia: 0.6
cache:
  enabled: true
  ttl: 2m
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 5*time.Second, cfg.Scraper.Timeout)
	assert.True(t, cfg.Scraper.CloudMode)
	assert.Equal(t, 2*time.Second, cfg.Browser.RenderWait)
	assert.Equal(t, 3*time.Second, cfg.Browser.InitialWait)
	require.NotNil(t, cfg.Prediction.Noise)
	assert.Equal(t, 0.0, *cfg.Prediction.Noise)
	assert.Equal(t, 0.6, cfg.Prediction.TeamStrengths["Gor Mahia"])
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [1, 2"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PORT":             "9090",
		"DEBUG":            "TRUE",
		"RUNNING_IN_CLOUD": "true",
		"REDIS_ADDR":       "redis:6379",
		"LOG_LEVEL":        "warn",
	}
	cfg := Default()

	require.NoError(t, cfg.ApplyEnv(func(k string) string { return env[k] }))

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Server.Debug)
	assert.True(t, cfg.Scraper.CloudMode)
	assert.Equal(t, "redis:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestApplyEnv_FalseValues(t *testing.T) {
	cfg := Default()
	cfg.Scraper.CloudMode = true

	require.NoError(t, cfg.ApplyEnv(func(k string) string {
		if k == "RUNNING_IN_CLOUD" {
			return "false"
		}
		return ""
	}))
	assert.False(t, cfg.Scraper.CloudMode)
}

func TestApplyEnv_BadPort(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(func(k string) string {
		if k == "PORT" {
			return "abc"
		}
		return ""
	})
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	noise := 1.5
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"no read header timeout", func(c *Config) { c.Server.ReadHeaderTimeout = 0 }},
		{"empty url", func(c *Config) { c.Scraper.TargetURL = "  " }},
		{"negative wait", func(c *Config) { c.Browser.RenderWait = -time.Second }},
		{"noise out of range", func(c *Config) { c.Prediction.Noise = &noise }},
		{"strength out of range", func(c *Config) { c.Prediction.TeamStrengths = map[string]float64{"X": 2} }},
		{"cache without ttl", func(c *Config) { c.Cache.Enabled = true; c.Cache.TTL = 0 }},
		{"cache without addr", func(c *Config) { c.Cache.Enabled = true; c.Cache.RedisAddr = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EASYBETS_TEST_VALUE=from-dotenv\n"), 0o644))
	t.Setenv("EASYBETS_TEST_VALUE", "")
	os.Unsetenv("EASYBETS_TEST_VALUE")

	require.NoError(t, LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "from-dotenv", os.Getenv("EASYBETS_TEST_VALUE"))
}

func TestLoad_ShippedLocalConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "..", "configs", "local.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 60*time.Second, cfg.Browser.Timeout)
	assert.False(t, cfg.Cache.Enabled)
	require.NotNil(t, cfg.Prediction.Noise)
	assert.InDelta(t, 0.05, *cfg.Prediction.Noise, 1e-9)
	assert.Equal(t, "https://www.ke.sportpesa.com/", cfg.Scraper.Headers["Referer"])
}

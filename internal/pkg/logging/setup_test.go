package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vodeneev/easybets/internal/pkg/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestSetupLogger_JSONWithService(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	logger, err := setupLogger(&buf, &config.LoggingConfig{Level: "info", Format: "json"}, "odds-api", false)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible", "matches", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "visible", rec["msg"])
	assert.Equal(t, "odds-api", rec["service"])
	assert.EqualValues(t, 3, rec["matches"])
}

func TestSetupLogger_DebugFlag(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	logger, err := setupLogger(&buf, &config.LoggingConfig{Level: "error"}, "odds-api", true)
	require.NoError(t, err)

	logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetupLogger_BadFormat(t *testing.T) {
	_, err := setupLogger(&bytes.Buffer{}, &config.LoggingConfig{Format: "xml"}, "odds-api", false)
	assert.Error(t, err)
}

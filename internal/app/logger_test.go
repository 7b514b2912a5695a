package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{name: "debug", want: slog.LevelDebug},
		{name: "info", want: slog.LevelInfo},
		{name: "WARN", want: slog.LevelWarn},
		{name: "error", want: slog.LevelError},
		{name: "trace", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseLevel(tc.name)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid log level")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var buf bytes.Buffer
	cfg, err := NewConfig(Config{LogLevel: "warn", LogFormat: "json"})
	require.NoError(t, err)

	// --- Act ---
	logger := newLogger(cfg, &buf)
	logger.Info("dropped")
	logger.Warn("kept", "path", "/repo/jest.config.json")

	// --- Assert ---
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
	assert.Contains(t, buf.String(), `"path":"/repo/jest.config.json"`)
}

func TestNewLogger_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newLogger(&Config{LogLevel: "debug", LogFormat: "text"}, &buf).Debug("resolving preset")
	assert.Contains(t, buf.String(), "level=DEBUG msg=\"resolving preset\"")
}

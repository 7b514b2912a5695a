package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_ReturnsEmbeddedLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := WithLogger(context.Background(), logger)

	got := FromContext(ctx)
	require.Same(t, logger, got)

	got.Debug("resolving preset", "path", "/repo/jest.config.json")
	assert.Contains(t, buf.String(), "resolving preset")
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	t.Parallel()
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestWith_AddsAttributes(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := WithLogger(context.Background(), logger)

	// --- Act ---
	nested := With(With(ctx, "config", "/repo/jest.config.json"), "project", 1)
	FromContext(nested).Debug("Extracted configuration dependencies.")
	FromContext(ctx).Debug("outer")

	// --- Assert ---
	out := buf.String()
	assert.Contains(t, out, `config=/repo/jest.config.json project=1`)
	assert.NotContains(t, out, `msg=outer config=`)
}

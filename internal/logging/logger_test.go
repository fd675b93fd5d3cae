package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediarental/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestSetupWritesFileAndConsole(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "db.log")
	var console bytes.Buffer

	logger, closer, err := Setup(config.LoggingConfig{Level: "info", File: logFile}, &console)
	require.NoError(t, err)

	NewSlogSink(logger).RecordEvent(context.Background(), "P000001 added to database", "product_id", "P000001")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)

	for _, out := range []string{string(data), console.String()} {
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "source=")
		assert.Contains(t, out, "time=")
		assert.Contains(t, out, "P000001 added to database")
	}
}

func TestSetupAppendsToExistingFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "db.log")
	require.NoError(t, os.WriteFile(logFile, []byte("earlier run\n"), 0o644))

	logger, closer, err := Setup(config.LoggingConfig{File: logFile}, &bytes.Buffer{})
	require.NoError(t, err)
	logger.Info("next run")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "earlier run\n")
	assert.Contains(t, string(data), "next run")
}

func TestSetupWithoutFile(t *testing.T) {
	var console bytes.Buffer
	logger, closer, err := Setup(config.LoggingConfig{Format: "json", Level: "warn"}, &console)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, closer.Close())

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), `"msg":"shown"`)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard.RecordEvent(context.Background(), "ignored", "k", "v")
	})
}

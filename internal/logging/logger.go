// Package logging configures the structured logger used by the importer.
//
// Records go to the console and, when a file is configured, to an append-only
// log file. Each record carries a timestamp, the source location, the level
// and the message.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"mediarental/internal/config"
)

// Setup builds a logger from cfg. The returned closer releases the log file
// and must be called when the program exits.
func Setup(cfg config.LoggingConfig, console io.Writer) (*slog.Logger, io.Closer, error) {
	if console == nil {
		console = os.Stderr
	}

	var out io.Writer = console
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = io.MultiWriter(f, console)
		closer = f
	}

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: true,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler), closer, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// EventSink receives one record per notable event, such as an imported row.
type EventSink interface {
	RecordEvent(ctx context.Context, msg string, attrs ...any)
}

type slogSink struct {
	logger *slog.Logger
}

// NewSlogSink records events as info-level entries on logger.
func NewSlogSink(logger *slog.Logger) EventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return slogSink{logger: logger}
}

func (s slogSink) RecordEvent(ctx context.Context, msg string, attrs ...any) {
	s.logger.InfoContext(ctx, msg, attrs...)
}

// Discard drops every event.
var Discard EventSink = discardSink{}

type discardSink struct{}

func (discardSink) RecordEvent(context.Context, string, ...any) {}

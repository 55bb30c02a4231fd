package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"nitpick/internal/config"
	"nitpick/internal/logging"
)

func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "text", Output: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	logger.Debug("dial attempt", logging.Args(logging.Int("attempt", 3))...)
	if !strings.Contains(buf.String(), "attempt=3") {
		t.Fatalf("expected attempt attr in output, got %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewFromConfigDisabled(t *testing.T) {
	cfg := config.Default()
	logger := logging.NewFromConfig(&cfg)
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("logger must be a no-op outside debug mode")
	}
	if logger := logging.NewFromConfig(nil); logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nil config must yield a no-op logger")
	}
}

func TestNewFromConfigHonorsFormat(t *testing.T) {
	cfg := config.Default()
	cfg.Debug = true
	cfg.Logging.Format = "json"
	logger := logging.NewFromConfig(&cfg)
	if _, ok := logger.Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("expected JSON handler, got %T", logger.Handler())
	}
}

func TestNewFromConfigHonorsLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Debug = true
	cfg.Logging.Level = "error"
	logger := logging.NewFromConfig(&cfg)
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("error level must suppress debug traces")
	}
	if !logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("error level must keep error traces")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Info("should not panic", logging.Error(nil), logging.Bool("flag", true))
}

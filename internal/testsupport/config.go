package testsupport

import (
	"path/filepath"
	"testing"

	"nitpick/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config pointing at a unique per-test socket path so
// tests never touch a real daemon.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Daemon.Socket = filepath.Join(t.TempDir(), "nitpickd.sock")
	cfg.Daemon.RetryDelayMS = 5

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithReadyTimeout bounds the daemon ready-wait so a misbehaving test fails
// instead of hanging.
func WithReadyTimeout(ms int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Daemon.ReadyTimeoutMS = ms
	}
}

// WithDebug enables diagnostic mode.
func WithDebug() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Debug = true
	}
}

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Daemon contains settings for reaching and launching the nitpickd daemon.
type Daemon struct {
	// Socket overrides the computed channel address when non-empty.
	Socket string `toml:"socket"`
	// Executable overrides daemon executable resolution when non-empty.
	Executable string `toml:"executable"`
	// ExtraArgs are appended to the daemon launch command line.
	ExtraArgs []string `toml:"extra_args"`
	// RetryDelayMS is slept between ready-wait dial attempts in debug mode.
	RetryDelayMS int `toml:"retry_delay_ms"`
	// ReadyTimeoutMS bounds the ready-wait loop. Zero keeps the loop
	// unbounded, matching the daemon's prompt-bind contract.
	ReadyTimeoutMS int `toml:"ready_timeout_ms"`
}

// Logging contains diagnostic trace output settings.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all client configuration values.
type Config struct {
	// Debug enables diagnostic tracing, inherits the client's stdio into a
	// launched daemon, and arms the retry sleep.
	Debug   bool    `toml:"debug"`
	Daemon  Daemon  `toml:"daemon"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/nitpick/config.toml")
}

// Sample returns the embedded sample configuration file contents.
func Sample() string {
	return sampleConfig
}

// Load locates, parses, and validates a configuration file. A missing file is
// not an error; defaults apply. The empty path selects NITPICK_CONFIG, then
// the default location.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = strings.TrimSpace(os.Getenv("NITPICK_CONFIG"))
	}
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// RetryDelay returns the ready-wait retry delay as a duration.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.Daemon.RetryDelayMS) * time.Millisecond
}

// ReadyTimeout returns the ready-wait bound, or zero for an unbounded wait.
func (c *Config) ReadyTimeout() time.Duration {
	return time.Duration(c.Daemon.ReadyTimeoutMS) * time.Millisecond
}

func (c *Config) normalize() error {
	var err error
	if c.Daemon.Socket = strings.TrimSpace(c.Daemon.Socket); c.Daemon.Socket != "" {
		if c.Daemon.Socket, err = expandPath(c.Daemon.Socket); err != nil {
			return fmt.Errorf("daemon.socket: %w", err)
		}
	}
	if c.Daemon.Executable = strings.TrimSpace(c.Daemon.Executable); c.Daemon.Executable != "" {
		if c.Daemon.Executable, err = expandPath(c.Daemon.Executable); err != nil {
			return fmt.Errorf("daemon.executable: %w", err)
		}
	}
	if c.Daemon.RetryDelayMS == 0 {
		c.Daemon.RetryDelayMS = defaultRetryDelayMS
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Daemon.RetryDelayMS < 0 {
		return fmt.Errorf("daemon.retry_delay_ms must not be negative (got %d)", c.Daemon.RetryDelayMS)
	}
	if c.Daemon.ReadyTimeoutMS < 0 {
		return fmt.Errorf("daemon.ready_timeout_ms must not be negative (got %d)", c.Daemon.ReadyTimeoutMS)
	}
	switch c.Logging.Format {
	case "text", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

package config

const (
	defaultRetryDelayMS = 200
	defaultLogLevel     = "debug"
	defaultLogFormat    = "text"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Daemon: Daemon{
			RetryDelayMS: defaultRetryDelayMS,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

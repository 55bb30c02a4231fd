package main

import (
	"strings"
	"sync"

	"nitpick/internal/config"
)

type commandContext struct {
	flags *rootFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the client configuration once and folds the client-only
// flags on top of it. The flag wins over the file for every overlap.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load("")
		if err != nil {
			c.configErr = err
			return
		}
		if socket := strings.TrimSpace(c.flags.socket); socket != "" {
			cfg.Daemon.Socket = socket
		}
		if c.flags.debug {
			cfg.Debug = true
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

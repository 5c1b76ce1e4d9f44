package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateDefaults()
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateDefaults() error {
	if v := c.Defaults.LastMinutes; v != nil && *v < 0 {
		return fmt.Errorf("defaults.last_minutes must be non-negative")
	}
	if v := c.Defaults.CurrentSize; v != nil && (*v < 0 || *v > 100) {
		return fmt.Errorf("defaults.current_size must be between 0 and 100")
	}
	if v := c.Defaults.OverviewMinSize; v != nil && *v <= 0 {
		return fmt.Errorf("defaults.overview_min_size must be positive")
	}
	return nil
}

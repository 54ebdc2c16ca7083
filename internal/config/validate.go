package config

import (
	"github.com/cockroachdb/errors"

	"github.com/simonhull/flactag/internal/block"
)

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSave(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSave() error {
	if c.Save.Padding < 0 {
		return errors.Newf("save.padding must not be negative, got %d", c.Save.Padding)
	}
	if c.Save.Padding > block.MaxPayloadSize {
		return errors.Newf("save.padding must be at most %d, got %d", block.MaxPayloadSize, c.Save.Padding)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logLevels[c.Logging.Level] {
		return errors.Newf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}

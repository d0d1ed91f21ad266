package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateSubtitles(); err != nil {
		return err
	}
	if err := c.validateProfiles(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateScan() error {
	if c.Scan.Extension == "." {
		return errors.New("scan.extension must name a file extension")
	}
	if c.Scan.Workers > 256 {
		return fmt.Errorf("scan.workers %d is unreasonably high (max 256)", c.Scan.Workers)
	}
	return nil
}

func (c *Config) validateSubtitles() error {
	if len(c.Subtitles.Codecs) == 0 {
		return errors.New("subtitles.codecs must not be empty")
	}
	if len(c.Subtitles.Languages) == 0 {
		return errors.New("subtitles.languages must map at least one stream tag")
	}
	return nil
}

func (c *Config) validateProfiles() error {
	if len(c.Profiles.Targets) == 0 {
		return errors.New("profiles.targets must not be empty")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/joshuapare/slrkit/diag"
)

// Validate checks if the configuration is valid and normalizes case.
func (c *Config) Validate() error {
	c.Source = strings.ToLower(c.Source)
	switch c.Source {
	case "heap", "mmap":
	default:
		return fmt.Errorf("unknown source %q: want heap or mmap", c.Source)
	}

	if c.Limit < 0 {
		return fmt.Errorf("limit must be >= 0, got %d", c.Limit)
	}

	if _, err := diag.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	c.LogFormat = strings.ToLower(c.LogFormat)
	switch c.LogFormat {
	case "text", "json", "console":
	default:
		return fmt.Errorf("unknown log_format %q: want text, json or console", c.LogFormat)
	}

	if c.Steps < 1 {
		return fmt.Errorf("steps must be >= 1, got %d", c.Steps)
	}
	if c.Adds < 0 || c.Shared < 0 {
		return fmt.Errorf("adds and shared must be >= 0")
	}
	return nil
}

// Package config loads slrctl settings from defaults, a YAML file,
// SLRCTL_ environment variables and command-line flags.
package config

import "github.com/joshuapare/slrkit/diag"

// Defaults.
const (
	DefaultSource    = "heap"
	DefaultLogLevel  = "warning"
	DefaultLogFormat = "console"
	DefaultSteps     = 15
	DefaultAdds      = 1000
	DefaultShared    = 64
)

// Config file names searched in the working directory when --config is not set.
var FileNames = []string{"slrctl.yaml", "slrctl.yml"}

// EnvPrefix is the prefix of environment overrides: SLRCTL_LOG_LEVEL sets log_level.
const EnvPrefix = "SLRCTL_"

// Config holds resolved CLI settings.
type Config struct {
	// Source selects the allocator backing: "heap" or "mmap".
	Source string `koanf:"source"`
	// Limit caps live allocator bytes; 0 means unlimited.
	Limit int64 `koanf:"limit"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
	JSON      bool   `koanf:"json"`

	Steps  int `koanf:"steps"`
	Adds   int `koanf:"adds"`
	Shared int `koanf:"shared"`

	// FileUsed is the config file that was read, empty if none.
	FileUsed string `koanf:"-"`
}

// Level returns the parsed log level. Call Validate first.
func (c *Config) Level() diag.Level {
	l, err := diag.ParseLevel(c.LogLevel)
	if err != nil {
		return diag.LevelWarning
	}
	return l
}

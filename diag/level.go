package diag

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level is the severity of a reported failure.
type Level uint8

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
)

// String returns the display name used by the console sink.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "Error"
	case LevelWarning:
		return "Warning"
	case LevelInfo:
		return "Info"
	default:
		return "Unknown"
	}
}

// Slog maps the severity onto the equivalent slog level.
func (l Level) Slog() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// ParseLevel accepts "error", "warning"/"warn" and "info" in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "info":
		return LevelInfo, nil
	default:
		return 0, fmt.Errorf("diag: unknown level %q", s)
	}
}

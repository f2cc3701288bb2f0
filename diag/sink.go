package diag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Sink receives failure reports. attrs are alternating key/value pairs in the
// style of log/slog.
type Sink interface {
	Log(level Level, msg string, attrs ...any)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(level Level, msg string, attrs ...any)

// Log calls f.
func (f SinkFunc) Log(level Level, msg string, attrs ...any) { f(level, msg, attrs...) }

// Discard drops every report.
var Discard Sink = SinkFunc(func(Level, string, ...any) {})

// Console writes one line per report in the form "[Error]: message k=v".
type Console struct {
	mu  sync.Mutex
	w   io.Writer
	min Level
}

// NewConsole returns a console sink writing to w. Reports below min severity
// (numerically greater) are dropped; pass LevelInfo to keep everything.
func NewConsole(w io.Writer, min Level) *Console {
	return &Console{w: w, min: min}
}

// Log writes the report.
func (c *Console) Log(level Level, msg string, attrs ...any) {
	if level > c.min {
		return
	}

	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(level.String())
	sb.WriteString("]: ")
	sb.WriteString(msg)
	for i := 0; i < len(attrs); i += 2 {
		sb.WriteByte(' ')
		if i+1 < len(attrs) {
			fmt.Fprintf(&sb, "%v=%v", attrs[i], attrs[i+1])
		} else {
			fmt.Fprintf(&sb, "!BADKEY=%v", attrs[i])
		}
	}
	sb.WriteByte('\n')

	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.w, sb.String())
}

// Slog forwards reports to a *slog.Logger.
type Slog struct {
	l *slog.Logger
}

// NewSlog adapts l. A nil logger uses slog.Default().
func NewSlog(l *slog.Logger) *Slog {
	if l == nil {
		l = slog.Default()
	}
	return &Slog{l: l}
}

// Log forwards the report at the matching slog level.
func (s *Slog) Log(level Level, msg string, attrs ...any) {
	s.l.Log(context.Background(), level.Slog(), msg, attrs...)
}

// Logger returns the wrapped logger.
func (s *Slog) Logger() *slog.Logger { return s.l }

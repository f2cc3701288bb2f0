package diag

import (
	"io"
	"os"
	"sync"
)

var (
	activeMu sync.Mutex
	active   Sink = NewConsole(os.Stderr, LevelInfo)
)

// Install makes s the process-wide active sink. The previous sink is disposed
// of: if it implements io.Closer, Close is called once it has been replaced.
// Installing nil restores a stderr console.
func Install(s Sink) {
	if s == nil {
		s = NewConsole(os.Stderr, LevelInfo)
	}

	activeMu.Lock()
	prev := active
	active = s
	activeMu.Unlock()

	if prev == s {
		return
	}
	if c, ok := prev.(io.Closer); ok {
		_ = c.Close()
	}
}

// Active returns the process-wide active sink.
func Active() Sink {
	activeMu.Lock()
	defer activeMu.Unlock()
	return active
}

// Resolve returns s when it is set, otherwise the active sink.
func Resolve(s Sink) Sink {
	if s != nil {
		return s
	}
	return Active()
}

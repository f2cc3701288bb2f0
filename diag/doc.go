// Package diag is the failure-reporting side channel of the memory substrate.
//
// # Overview
//
// Every failed precondition in memory/alloc, containers/dynarray and
// memory/shared is returned to the caller as an error AND reported to a Sink
// with one of three severities:
//
//   - LevelError: invalid arguments and resource exhaustion
//   - LevelWarning: harmless misuse, such as releasing nothing
//   - LevelInfo: informational notes
//
// The sink is informational only. It never aborts, and it is not a substitute
// for checking returned errors.
//
// # Injection
//
// Components accept a Sink through their Options. A nil sink means "use the
// process-wide active sink", resolved every time a message is logged so that a
// later Install is observed:
//
//	a := alloc.New(&alloc.Options{Sink: diag.NewSlog(logger)})
//
// # Process-wide sink
//
// Install replaces the active sink and disposes of the previous one (Close is
// called when it implements io.Closer). The default is a Console writing to
// stderr:
//
//	rec := diag.NewRecorder()
//	diag.Install(rec)
//	defer diag.Install(nil) // back to the stderr console
//
// # Implementations
//
//   - Console: "[Error]: message key=value" lines on an io.Writer
//   - Slog: adapts any *slog.Logger
//   - Recorder: keeps entries in memory, used by tests
//   - Discard: drops everything
package diag

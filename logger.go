package sketchpad

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can race with logging from a host's event loop.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for sketchpad and its sub-packages.
// By default, sketchpad produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// The logger is also handed to gg so rasteriser diagnostics end up in the
// same place. Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by sketchpad:
//   - [slog.LevelDebug]: gesture and history lifecycle (commit, undo, resize)
//   - [slog.LevelInfo]: host lifecycle events (session started)
//   - [slog.LevelWarn]: recoverable failures (snapshot decode, dropped points, feedback errors)
//   - [slog.LevelError]: recovered rasteriser panics, inert surfaces
//
// Example:
//
//	// Enable info-level logging to stderr:
//	sketchpad.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	sketchpad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current logger used by sketchpad.
// Sub-packages (audio/, script/) and the commands call this to share the
// same logger configuration.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

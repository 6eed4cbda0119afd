package bubble

import (
	"log/slog"
	"sync/atomic"
)

var (
	silent = slog.New(slog.DiscardHandler)
	logger atomic.Pointer[slog.Logger]
)

// SetLogger routes package logs to l. Pass nil to silence them again, which
// is also the state before the first call.
//
// Levels:
//   - [slog.LevelDebug]: zoom targets, normalized views, transition starts and ends
//   - [slog.LevelInfo]: window and export events
//   - [slog.LevelWarn]: requests on paths that no longer resolve
//   - [slog.LevelError]: script screenshots that could not be written
//
// For example, to trace navigation on stderr:
//
//	bubble.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger package code writes to. Safe for concurrent use.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return silent
}

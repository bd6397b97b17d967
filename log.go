package quill

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used for warnings (unrecognized tags,
// operations on unregistered tween targets) and debug stats. Passing nil
// restores slog.Default.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func logf() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

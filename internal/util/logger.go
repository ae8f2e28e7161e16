package util

import (
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

var (
	logger      atomic.Pointer[slog.Logger]
	defaultOnce sync.Once
)

// InitLogger installs the process-wide JSON logger at the given level.
func InitLogger(level string) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     parseLevel(level),
	})
	l := slog.New(handler)
	logger.Store(l)
	slog.SetDefault(l)
}

// GetLogger returns the initialized logger, creating an info-level one on first use.
// Safe for concurrent use.
func GetLogger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	defaultOnce.Do(func() {
		if logger.Load() == nil {
			InitLogger("info")
		}
	})
	return logger.Load()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package pkglog

import (
	"log/slog"
	"os"
	"strings"
)

// InitLogging installs the process-wide structured logger. The level can
// be overridden with the LOG_LEVEL environment variable.
func InitLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

package logger_config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the shared structured logger.
// It is safe for concurrent use.
var Logger *slog.Logger

// level backs every handler built by this package so it can change at runtime.
var level = new(slog.LevelVar)

func init() {
	level.Set(parseLevel(os.Getenv("LOG_LEVEL"))) // debug|info|warn|error
	SetOutput(os.Stdout)
}

// SetOutput rebuilds the shared logger on top of w. The terminal host uses
// this to keep log lines off the screen it draws on.
func SetOutput(w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: true, // file:line
	}

	handler := slog.NewTextHandler(w, opts)
	Logger = slog.New(handler)

	// Make it the default logger (optional but convenient).
	slog.SetDefault(Logger)
}

// SetLevel applies a debug|info|warn|error level name. Unknown names mean info.
func SetLevel(s string) {
	level.Set(parseLevel(s))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info", "":
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}

// Sugar helpers (printf-style), convenient for quick telemetry.
func Debugf(format string, args ...any) { Logger.Debug(fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { Logger.Info(fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { Logger.Warn(fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { Logger.Error(fmt.Sprintf(format, args...)) }

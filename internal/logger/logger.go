// ABOUTME: Structured logging configuration using log/slog.
// ABOUTME: Provides Init() for the default logger and a debug log file that keeps stdout clean.

package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the log file inside the config directory
const FileName = "debug.log"

// Options selects where and how the default logger writes.
type Options struct {
	Level  string // debug, info, warn, error (default: info)
	Format string // text, json (default: text)
	Output io.Writer
}

// Init configures the default slog logger.
func Init(opts Options) {
	out := opts.Output
	if out == nil {
		out = io.Discard
	}

	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(opts.Level),
	}

	var handler slog.Handler
	if strings.ToLower(opts.Format) == "json" {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	slog.SetDefault(slog.New(handler))
}

// OpenLogFile opens the append-only debug log in configDir, creating the
// directory if needed. The caller closes the file.
func OpenLogFile(configDir string) (*os.File, error) {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(configDir, FileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
}

// parseLevel converts a string log level to slog.Level.
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

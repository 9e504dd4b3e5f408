package app

import (
	"errors"
	"io"
	"log/slog"
	"strings"
)

var (
	ErrInvalidLogFormat = errors.New("invalid log-format: must be 'text' or 'json'")
	ErrInvalidLogLevel  = errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

var logHandlers = map[string]func(io.Writer, *slog.HandlerOptions) slog.Handler{
	"text": func(w io.Writer, opts *slog.HandlerOptions) slog.Handler { return slog.NewTextHandler(w, opts) },
	"json": func(w io.Writer, opts *slog.HandlerOptions) slog.Handler { return slog.NewJSONHandler(w, opts) },
}

// normalizeLogging lowercases level and format, fills in defaults for empty
// values and rejects anything newLogger does not know.
func normalizeLogging(level, format string) (string, string, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = defaultLogLevel
	}
	if _, ok := logLevels[level]; !ok {
		return "", "", ErrInvalidLogLevel
	}

	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = defaultLogFormat
	}
	if _, ok := logHandlers[format]; !ok {
		return "", "", ErrInvalidLogFormat
	}
	return level, format, nil
}

// newLogger builds the process logger from a level and format already
// checked by NewConfig. It does not set the global logger.
func newLogger(level, format string, outW io.Writer) *slog.Logger {
	lvl, ok := logLevels[level]
	if !ok {
		lvl = logLevels[defaultLogLevel]
	}
	build, ok := logHandlers[format]
	if !ok {
		build = logHandlers[defaultLogFormat]
	}
	return slog.New(build(outW, &slog.HandlerOptions{Level: lvl}))
}

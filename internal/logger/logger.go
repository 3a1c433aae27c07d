package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	// ReplaceAttr rewrites attributes, e.g. to follow the request log schema.
	ReplaceAttr func(groups []string, a slog.Attr) slog.Attr
}

// New builds a text logger writing to stdout and, when File is set, to a rotating file.
func New(opts Options) *slog.Logger {
	var writer io.Writer = os.Stdout
	if opts.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		}
		writer = io.MultiWriter(os.Stdout, fileWriter)
	}

	return slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level:       ParseLevel(opts.Level),
		ReplaceAttr: opts.ReplaceAttr,
	}))
}

// NewWithWriter builds a text logger on w without file rotation.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// ParseLevel maps a level name to slog.Level, falling back to info.
func ParseLevel(level string) slog.Level {
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

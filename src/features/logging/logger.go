package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"
	"github.com/contre95/namer/src/features/config"
)

// SetupLogger builds the application logger from the configuration and makes
// it the slog default. Commands pass stderr so stdout stays free for output.
func SetupLogger(cfg *config.Manager, w io.Writer) *slog.Logger {
	logger := NewLogger(w, cfg.Get().Logger)
	slog.SetDefault(logger)
	logger.Debug("Logger initialized", "time", time.Now().Format(time.RFC3339))
	return logger
}

// NewLogger returns a charmbracelet/log backed slog.Logger writing to w.
// A disabled logger discards everything.
func NewLogger(w io.Writer, cfg config.Logger) *slog.Logger {
	if !cfg.Enabled {
		return slog.New(slog.DiscardHandler)
	}

	var formatter log.Formatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "text":
		formatter = log.TextFormatter
	default:
		formatter = log.LogfmtFormatter
	}

	level := log.InfoLevel
	switch cfg.Level {
	case "debug":
		level = log.DebugLevel
	case "warn":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "namer",
		Formatter:       formatter,
		Level:           level,
	})
	return slog.New(handler)
}

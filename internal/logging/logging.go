// Package logging configures the process-wide slog logger. Level and
// output format come from the environment, and every record can carry a
// static service attribute so resolver and admin-API logs stay
// distinguishable when aggregated.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Config selects the logger's verbosity and output shape.
type Config struct {
	Level   string // debug, info, warn, error; defaults to info
	Format  string // "json" for machine-readable output, anything else is text
	Service string // optional static service attribute on every record
}

// Configure builds the logger described by cfg, installs it as the slog
// default, and returns it. Output always goes to standard error.
func Configure(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	if cfg.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("service", cfg.Service)})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

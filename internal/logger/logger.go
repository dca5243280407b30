// Package logger builds the slog loggers used by mountd.
package logger

import (
	"log/slog"
	"os"
	"slices"

	charmlog "github.com/charmbracelet/log"
)

// Supported log formats.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// Formats lists the accepted values for the log_format setting.
var Formats = []string{FormatText, FormatJSON, FormatPretty}

// New returns a logger writing to stderr at Info level unless configured
// otherwise.
func New(opts ...Option) *slog.Logger {
	c := &config{
		level:  slog.LevelInfo,
		writer: os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return slog.New(newHandler(c))
}

func newHandler(c *config) slog.Handler {
	switch {
	case c.pretty:
		return charmlog.NewWithOptions(c.writer, charmlog.Options{
			Level:           charmlog.Level(c.level),
			ReportTimestamp: false,
		})
	case c.json:
		return slog.NewJSONHandler(c.writer, &slog.HandlerOptions{Level: c.level})
	default:
		return slog.NewTextHandler(c.writer, &slog.HandlerOptions{Level: c.level})
	}
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ValidFormat reports whether format is one of Formats.
func ValidFormat(format string) bool {
	return slices.Contains(Formats, format)
}

// Package logging provides the console logger and the session journal.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// NewConsoleLogger creates a leveled logger for diagnostics. User-facing
// command output does not go through it; only load/save problems and
// journal errors do.
func NewConsoleLogger(w io.Writer, level, format string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           parseLevel(level),
		Formatter:       parseFormat(format),
		ReportTimestamp: false,
		Prefix:          "taskline",
	})
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func parseFormat(format string) log.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

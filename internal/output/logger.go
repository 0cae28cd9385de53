/*
PURPOSE:
  Provides a structured logger for Bench Runner.
  Wraps slog with a tint handler for readable terminal output.

REQUIREMENTS:
  User-specified:
  - Stdout belongs to the report (and to the simple runner's child).

  Implementation-discovered:
  - Diagnostics therefore go to stderr, quiet unless --verbose.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

IMPLEMENTATION RULES:
  - Use `log/slog` with `github.com/lmittmann/tint`.

USAGE:
  output.Logger.Debug("message", "key", "value")
*/

package output

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

var Logger *slog.Logger

func init() {
	Logger = NewLogger(os.Stderr, slog.LevelWarn, false)
}

// NewLogger builds a tint-backed logger writing to w.
func NewLogger(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}))
}

// Configure replaces Logger according to the CLI verbosity flags.
func Configure(verbose, noColor bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	SetLogger(NewLogger(os.Stderr, level, noColor))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}

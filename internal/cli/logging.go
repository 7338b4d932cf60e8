package cli

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// newLogger builds the text logger for a command. Level is Info, or Debug
// with --verbose. Logs go to w, normally stderr, so they never mix with
// report or JSON output on stdout.
func newLogger(opts *RootOptions, w io.Writer) *slog.Logger {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}

// newRunID returns a time-ordered UUIDv7 for correlating a run's log lines
// with its JSON response.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the random source does.
		return uuid.NewString()
	}
	return id.String()
}

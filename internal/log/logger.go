package log

import (
	"io"
	"log/slog"
)

// level returns the minimum level for the given verbosity.
func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a logger that writes logfmt-style text to w.
// verbose lowers the level from Warn to Debug.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level(verbose),
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewJSONLogger creates a logger that writes one JSON object per record to w.
// Useful when a CI system collects the logs.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level(verbose),
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// New picks NewJSONLogger or NewLogger.
func New(w io.Writer, verbose, jsonFormat bool) *slog.Logger {
	if jsonFormat {
		return NewJSONLogger(w, verbose)
	}
	return NewLogger(w, verbose)
}

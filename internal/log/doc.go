// Package log builds the structured loggers used by datecheck, on top of
// the standard slog package.
//
// Logs always go to a separate writer from the report (stderr in the CLI),
// so piping the report into another tool never mixes in diagnostics.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("annotations extracted", "path", "guide/intro.md", "count", 3)
//
// Without verbose mode only warnings and errors are written.
package log

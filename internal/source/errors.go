package source

import "errors"

// Input access errors.
// Callers can match them with errors.Is; the wrapped message carries the path.
var (
	// ErrRootNotFound is returned when the root directory does not exist.
	ErrRootNotFound = errors.New("root directory not found")

	// ErrNotDirectory is returned when the root exists but is not a directory.
	ErrNotDirectory = errors.New("root is not a directory")

	// ErrUnreadable is returned when a directory or document cannot be read.
	ErrUnreadable = errors.New("cannot read input")

	// ErrUndecodable is returned when a document is not valid text.
	ErrUndecodable = errors.New("document is not valid UTF-8 or BOM-marked UTF-16 text")
)

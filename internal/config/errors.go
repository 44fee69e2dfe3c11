package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so callers can use
// errors.Is() while users still get a readable message.
var (
	// ErrNoRoot is returned when no root directory is given.
	ErrNoRoot = errors.New("no root directory specified: provide the directory to scan")

	// ErrInvalidThreshold is returned when the threshold is negative.
	ErrInvalidThreshold = errors.New("invalid threshold: must be zero or more months")

	// ErrUnknownFormat is returned when the report format is not supported.
	ErrUnknownFormat = errors.New("unknown report format: use markdown, json, yaml or text")
)

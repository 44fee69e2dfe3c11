package config

import (
	"slices"

	"github.com/nao1215/datecheck/internal/model"
	"github.com/nao1215/datecheck/internal/report"
	"github.com/nao1215/datecheck/internal/staleness"
)

// AppName is the application name.
const AppName = "datecheck"

// DefaultFormat is the report format used when none is given.
const DefaultFormat = report.FormatMarkdown

// Config holds all configuration options for datecheck.
// It is populated from CLI flags and passed through the application
// rather than kept in global state.
type Config struct {
	// Root is the directory scanned for Markdown documents.
	Root string

	// Threshold is the minimum age, in months, of a stale annotation.
	Threshold int

	// Format is the report format: markdown, json or yaml.
	Format string

	// ReportFile is the output file path for the report.
	// When empty, the report is written to stdout.
	ReportFile string

	// Reference overrides the month annotations are aged against.
	// When nil, the current month from the system clock is used.
	Reference *model.YearMonth

	// Verbose enables debug log output on stderr.
	Verbose bool

	// JSONLog switches log output on stderr to JSON.
	JSONLog bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Threshold: staleness.DefaultThreshold,
		Format:    DefaultFormat,
	}
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.Root == "" {
		return ErrNoRoot
	}

	if c.Threshold < 0 {
		return ErrInvalidThreshold
	}

	if !slices.Contains(report.Formats(), c.Format) {
		return ErrUnknownFormat
	}

	return nil
}

package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/nao1215/datecheck/internal/model"
)

// Supported output formats.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatText     = "text"
)

// ErrUnknownFormat is returned by NewWriter for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown report format")

// Formats returns the supported format names.
func Formats() []string {
	return []string{FormatMarkdown, FormatJSON, FormatYAML, FormatText}
}

// Writer defines the interface for report output.
type Writer interface {
	// Write renders the stale annotations of the triage.
	// Returns the number of bytes written and any error encountered.
	Write(triage *model.Triage) (int, error)
}

// NewWriter returns the Writer for format, writing to output.
func NewWriter(format string, output io.Writer) (Writer, error) {
	switch format {
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case FormatYAML:
		return NewYAMLWriter(output), nil
	case FormatText:
		return NewTextWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// summary is the structured form shared by the JSON and YAML writers.
type summary struct {
	Reference string     `json:"reference" yaml:"reference"`
	Threshold int        `json:"threshold" yaml:"threshold"`
	Documents []document `json:"documents" yaml:"documents"`
}

type document struct {
	Path        string  `json:"path" yaml:"path"`
	Annotations []entry `json:"annotations" yaml:"annotations"`
}

type entry struct {
	Line int    `json:"line" yaml:"line"`
	Date string `json:"date" yaml:"date"`
}

// newSummary converts the stale annotations of a triage into a summary.
// Documents is never nil so that an empty run encodes as an empty list.
func newSummary(triage *model.Triage) summary {
	s := summary{
		Reference: triage.Reference.String(),
		Threshold: triage.Threshold,
		Documents: make([]document, 0),
	}
	if triage.Stale == nil {
		return s
	}

	for _, path := range triage.Stale.Paths() {
		annotations, _ := triage.Stale.Get(path)
		doc := document{
			Path:        path,
			Annotations: make([]entry, 0, len(annotations)),
		}
		for _, a := range annotations {
			doc.Annotations = append(doc.Annotations, entry{Line: a.Line, Date: a.Date.String()})
		}
		s.Documents = append(s.Documents, doc)
	}
	return s
}

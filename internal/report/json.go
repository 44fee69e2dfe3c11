package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/datecheck/internal/model"
)

// JSONWriter outputs the triage in JSON format.
type JSONWriter struct {
	baseWriter

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string; empty means compact output.
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables indented JSON output.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint is WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
// Output is compact unless an indent option is given.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the stale annotations as a JSON document followed by a newline.
func (w *JSONWriter) Write(triage *model.Triage) (int, error) {
	var (
		data []byte
		err  error
	)
	if w.indentPrefix != "" || w.indentString != "" {
		data, err = json.MarshalIndent(newSummary(triage), w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(newSummary(triage))
	}
	if err != nil {
		return 0, err
	}

	return w.output.Write(append(data, '\n'))
}

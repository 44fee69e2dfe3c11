package report

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/datecheck/internal/model"
)

// yamlIndent is the number of spaces per nesting level.
const yamlIndent = 2

// YAMLWriter outputs the triage in YAML format.
type YAMLWriter struct {
	baseWriter
}

// NewYAMLWriter creates a YAMLWriter that outputs to the given writer.
func NewYAMLWriter(output io.Writer) *YAMLWriter {
	return &YAMLWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the stale annotations as a single YAML document.
func (w *YAMLWriter) Write(triage *model.Triage) (int, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(newSummary(triage)); err != nil {
		return 0, err
	}
	if err := enc.Close(); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/datecheck/internal/model"
	"github.com/nao1215/datecheck/internal/staleness"
)

// ruleWidth is the width of the horizontal rules between sections.
const ruleWidth = 70

// TextWriter outputs a plain text summary for terminal display.
// Stale dates are listed as "path:line" so editors and grep-like tools
// can jump to them.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the summary followed by every stale date with its age.
func (w *TextWriter) Write(triage *model.Triage) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, triage)
	w.writeSummary(&sb, triage)
	w.writeDates(&sb, triage)

	return w.output.Write([]byte(sb.String()))
}

// writeSection writes a section title between two rules.
func (w *TextWriter) writeSection(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n\n")
}

// writeHeader writes the run parameters.
func (w *TextWriter) writeHeader(sb *strings.Builder, triage *model.Triage) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString("DATE REFERENCE TRIAGE\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")

	if triage.Root != "" {
		fmt.Fprintf(sb, "Root:       %s\n", triage.Root)
	}
	fmt.Fprintf(sb, "Reference:  %s\n", triage.Reference)
	fmt.Fprintf(sb, "Threshold:  %d months\n", triage.Threshold)
	sb.WriteString("\n")
}

// writeSummary writes the document and annotation counts.
func (w *TextWriter) writeSummary(sb *strings.Builder, triage *model.Triage) {
	w.writeSection(sb, "SUMMARY")

	found := 0
	if triage.Found != nil {
		found = triage.Found.AnnotationCount()
	}
	stale, staleDocs := 0, 0
	if triage.Stale != nil {
		stale = triage.Stale.AnnotationCount()
		staleDocs = triage.Stale.Len()
	}

	fmt.Fprintf(sb, "  Documents scanned:  %d\n", len(triage.Paths))
	fmt.Fprintf(sb, "  Dates found:        %d\n", found)
	fmt.Fprintf(sb, "  Stale dates:        %d in %d documents\n", stale, staleDocs)
	sb.WriteString("\n")
}

// writeDates writes one line per stale date.
func (w *TextWriter) writeDates(sb *strings.Builder, triage *model.Triage) {
	w.writeSection(sb, "STALE DATES")

	if !triage.HasStale() {
		sb.WriteString("  No stale dates\n")
		return
	}

	for _, path := range triage.Stale.Paths() {
		annotations, _ := triage.Stale.Get(path)
		for _, a := range annotations {
			age := staleness.Age(triage.Reference, path, a)
			fmt.Fprintf(sb, "  %s:%d: %s (%d months old)\n", path, a.Line, a.Date, age)
		}
	}
}

package report

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"

	"github.com/nao1215/datecheck/internal/model"
)

// EmptySentinel is printed instead of a report when nothing is stale.
// CI jobs compare against it to decide whether to open an issue.
const EmptySentinel = "empty"

const (
	procedureUpdate = "Each of these dates should be checked to see if the docs they annotate are " +
		"up-to-date. Each date should be updated (in the Markdown file where it appears) to " +
		"use the current month (%s), or removed if the docs it annotates are not " +
		"expected to fall out of date quickly."

	procedureCheckOff = "Please check off each date once a PR to update it (and, if applicable, its " +
		"surrounding docs) has been merged. Please also mention that you are working on a " +
		"particular set of dates so duplicate work is avoided."

	procedureClose = "Finally, once all the dates have been updated, please close this issue."
)

// MarkdownWriter outputs the triage as a Markdown checklist.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the checklist, or EmptySentinel when nothing is stale.
func (w *MarkdownWriter) Write(triage *model.Triage) (int, error) {
	if !triage.HasStale() {
		return fmt.Fprintln(w.output, EmptySentinel)
	}

	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, triage)
	w.writeProcedure(md, triage)
	w.writeDates(md, triage)

	return len(md.String()), md.Build()
}

// writeHeader writes the title line naming the reference month.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, triage *model.Triage) {
	md.PlainTextf("Date Reference Triage for %s", triage.Reference)
}

// writeProcedure writes the fixed instructions for reviewers.
func (w *MarkdownWriter) writeProcedure(md *markdown.Markdown, triage *model.Triage) {
	md.H2("Procedure")
	md.PlainText("")
	md.PlainTextf(procedureUpdate, triage.Reference)
	md.PlainText("")
	md.PlainText(procedureCheckOff)
	md.PlainText("")
	md.PlainText(procedureClose)
	md.PlainText("")
}

// writeDates writes one checklist item per document with its annotations
// nested underneath.
func (w *MarkdownWriter) writeDates(md *markdown.Markdown, triage *model.Triage) {
	md.H2("Dates")
	md.PlainText("")

	for _, path := range triage.Stale.Paths() {
		md.CheckBox([]markdown.CheckBoxSet{{Checked: false, Text: path}})

		annotations, _ := triage.Stale.Get(path)
		for _, a := range annotations {
			md.PlainTextf("  - [ ] line %d: %s", a.Line, a.Date)
		}
	}
	md.PlainText("")
}

// Package report renders the result of a triage run.
//
// This package contains writers for different output formats:
//   - MarkdownWriter: The checklist meant to be pasted into a tracking issue
//   - JSONWriter: Structured JSON output for tool integration
//   - YAMLWriter: The same structure as YAML
//   - TextWriter: A plain summary for reading in a terminal
//
// Every writer iterates documents in path order and prints nothing that
// depends on the environment besides the reference month and root, so the
// same input always renders to the same bytes.
package report

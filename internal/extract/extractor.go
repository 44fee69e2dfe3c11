package extract

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"

	"github.com/nao1215/datecheck/internal/model"
)

// pattern matches "as of", a single word and a four-digit year.
// Submatch 1 is the month word and submatch 2 is the year.
var pattern = regexp.MustCompile(`(?i)\bas\s+of\s+(\w+)\s+(\d{4})`)

// Extractor finds annotations in document text.
// It holds no per-document state, so one Extractor can be reused for
// every file of a run.
type Extractor struct {
	// pattern is the phrase matcher.
	pattern *regexp.Regexp

	// logger receives a debug record for every skipped phrase.
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used to report skipped phrases.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// New creates an Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		pattern: pattern,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Pattern returns the phrase matcher.
func (e *Extractor) Pattern() *regexp.Regexp {
	return e.pattern
}

// Extract returns the annotations in text in order of appearance.
//
// Line numbers come from a running newline count that is advanced only over
// the text between the previous match end and the current match end, so
// the whole document is scanned once.
func (e *Extractor) Extract(text string) []model.Annotation {
	matches := e.pattern.FindAllStringSubmatchIndex(text, -1)
	annotations := make([]model.Annotation, 0, len(matches))

	line := 1
	consumed := 0
	for _, m := range matches {
		end := m[1]
		line += strings.Count(text[consumed:end], "\n")
		consumed = end

		token := text[m[2]:m[3]]
		month, ok := ParseMonth(token)
		if !ok {
			e.logSkipped(token, line)
			continue
		}

		// The year group is exactly four ASCII digits.
		year, err := strconv.Atoi(text[m[4]:m[5]])
		if err != nil {
			continue
		}

		annotations = append(annotations, model.Annotation{
			Line: line,
			Date: model.YearMonth{Year: year, Month: month},
		})
	}

	return annotations
}

// logSkipped records a phrase whose month word did not resolve.
func (e *Extractor) logSkipped(token string, line int) {
	attrs := []any{"token", token, "line", line}
	if hint := nearestMonth(token); hint != "" {
		attrs = append(attrs, "nearest", hint)
	}
	e.logger.Debug("skipping phrase with unrecognized month", attrs...)
}

// nearestMonth returns the best fuzzy match among the full month names,
// or "" if none of them contains the token's letters in order.
func nearestMonth(token string) string {
	matches := fuzzy.Find(cases.Fold().String(token), fullMonthNames)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/datecheck/internal/extract"
	"github.com/nao1215/datecheck/internal/model"
	"github.com/nao1215/datecheck/internal/source"
	"github.com/nao1215/datecheck/internal/staleness"
)

// DiscoverStep lists the documents to scan.
type DiscoverStep struct {
	src    source.Source
	logger *slog.Logger
}

// NewDiscoverStep creates a DiscoverStep reading from src.
func NewDiscoverStep(src source.Source, logger *slog.Logger) *DiscoverStep {
	return &DiscoverStep{src: src, logger: logger}
}

// Name returns the step name.
func (s *DiscoverStep) Name() string {
	return "discover"
}

// Do stores the discovered document paths in the triage.
func (s *DiscoverStep) Do(_ context.Context, triage *model.Triage) error {
	paths, err := s.src.Paths()
	if err != nil {
		return err
	}
	triage.Paths = paths

	s.logger.Info("documents discovered", "root", triage.Root, "count", len(paths))
	return nil
}

// ExtractStep reads every discovered document and collects its annotations.
type ExtractStep struct {
	src    source.Source
	logger *slog.Logger
}

// NewExtractStep creates an ExtractStep reading from src.
func NewExtractStep(src source.Source, logger *slog.Logger) *ExtractStep {
	return &ExtractStep{src: src, logger: logger}
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract"
}

// Do reads the documents one at a time, in path order.
// The first unreadable document aborts the step.
func (s *ExtractStep) Do(ctx context.Context, triage *model.Triage) error {
	for _, path := range triage.Paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		text, err := s.src.ReadText(path)
		if err != nil {
			return err
		}

		extractor := extract.New(extract.WithLogger(s.logger.With("path", path)))
		annotations := extractor.Extract(text)
		triage.Found.Set(path, annotations)

		s.logger.Debug("annotations extracted", "path", path, "count", len(annotations))
	}

	return nil
}

// FilterStep keeps the annotations that meet the staleness threshold.
type FilterStep struct {
	logger *slog.Logger
}

// NewFilterStep creates a FilterStep.
func NewFilterStep(logger *slog.Logger) *FilterStep {
	return &FilterStep{logger: logger}
}

// Name returns the step name.
func (s *FilterStep) Name() string {
	return "filter"
}

// Do replaces triage.Stale with the filtered annotations.
func (s *FilterStep) Do(_ context.Context, triage *model.Triage) error {
	triage.Stale = staleness.Filter(triage.Reference, triage.Threshold, triage.Found)

	s.logger.Info("stale annotations filtered",
		"reference", triage.Reference.String(),
		"threshold", triage.Threshold,
		"documents", triage.Stale.Len(),
		"annotations", triage.Stale.AnnotationCount(),
	)
	return nil
}

// DefaultPipeline creates the discover, extract and filter pipeline over src.
func DefaultPipeline(src source.Source, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewDiscoverStep(src, p.logger),
		NewExtractStep(src, p.logger),
		NewFilterStep(p.logger),
	)
	return p
}

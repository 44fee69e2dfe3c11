package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nao1215/datecheck/internal/model"
)

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, with each step receiving the triage
// state left by the previous ones.
type Step interface {
	// Do executes the step. Any error is fatal for the run.
	Do(ctx context.Context, triage *model.Triage) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in order and stops at the first error.
// The returned error names the failed step and wraps its cause.
func (p *Pipeline) Execute(ctx context.Context, triage *model.Triage) error {
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"root", triage.Root,
		)

		if err := step.Do(ctx, triage); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"root", triage.Root,
				"error", err,
			)
			return fmt.Errorf("%s: %w", step.Name(), err)
		}

		triage.PerformedSteps = append(triage.PerformedSteps, step.Name())
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}

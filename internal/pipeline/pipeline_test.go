package pipeline

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/nao1215/datecheck/internal/model"
)

// mockStep is a test helper that implements the Step interface.
type mockStep struct {
	name      string
	doFunc    func(ctx context.Context, triage *model.Triage) error
	callCount int
}

// Do implements Step.Do.
func (m *mockStep) Do(ctx context.Context, triage *model.Triage) error {
	m.callCount++
	if m.doFunc != nil {
		return m.doFunc(ctx, triage)
	}
	return nil
}

// Name implements Step.Name.
func (m *mockStep) Name() string {
	return m.name
}

func newTestTriage() *model.Triage {
	return model.NewTriage("docs", model.YearMonth{Year: 2021, Month: 7}, 6)
}

// TestPipelineNew tests the Pipeline constructor.
func TestPipelineNew(t *testing.T) {
	t.Parallel()

	p := New()

	if p == nil {
		t.Fatal("expected non-nil pipeline")
	}
	if p.StepCount() != 0 {
		t.Errorf("expected 0 steps, got %d", p.StepCount())
	}
	if p.logger == nil {
		t.Error("expected default logger")
	}
}

// TestPipelineAddStep tests adding steps to the pipeline.
func TestPipelineAddStep(t *testing.T) {
	t.Parallel()

	t.Run("adds single step", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{name: "test-step"})

		if p.StepCount() != 1 {
			t.Errorf("expected 1 step, got %d", p.StepCount())
		}
	})

	t.Run("adds multiple steps with AddSteps", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddSteps(&mockStep{name: "a"}, &mockStep{name: "b"}, &mockStep{name: "c"})

		expected := []string{"a", "b", "c"}
		if got := p.StepNames(); !reflect.DeepEqual(got, expected) {
			t.Errorf("got %v, expected %v", got, expected)
		}
	})
}

// TestPipelineExecute tests step ordering and error handling.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("runs steps in order and records them", func(t *testing.T) {
		t.Parallel()

		var order []string
		record := func(name string) *mockStep {
			return &mockStep{
				name: name,
				doFunc: func(_ context.Context, _ *model.Triage) error {
					order = append(order, name)
					return nil
				},
			}
		}

		p := New()
		p.AddSteps(record("first"), record("second"), record("third"))

		triage := newTestTriage()
		if err := p.Execute(context.Background(), triage); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []string{"first", "second", "third"}
		if !reflect.DeepEqual(order, expected) {
			t.Errorf("got order %v, expected %v", order, expected)
		}
		if !reflect.DeepEqual(triage.PerformedSteps, expected) {
			t.Errorf("got performed steps %v, expected %v", triage.PerformedSteps, expected)
		}
	})

	t.Run("stops at the first error", func(t *testing.T) {
		t.Parallel()

		errBoom := errors.New("boom")
		failing := &mockStep{
			name: "failing",
			doFunc: func(_ context.Context, _ *model.Triage) error {
				return errBoom
			},
		}
		after := &mockStep{name: "after"}

		p := New()
		p.AddSteps(&mockStep{name: "before"}, failing, after)

		triage := newTestTriage()
		err := p.Execute(context.Background(), triage)
		if !errors.Is(err, errBoom) {
			t.Fatalf("expected errBoom, got %v", err)
		}
		if err.Error() != "failing: boom" {
			t.Errorf("expected step name in error, got %q", err.Error())
		}
		if after.callCount != 0 {
			t.Error("expected later steps not to run")
		}
		if !reflect.DeepEqual(triage.PerformedSteps, []string{"before"}) {
			t.Errorf("got performed steps %v", triage.PerformedSteps)
		}
	})

	t.Run("returns context error when cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		step := &mockStep{name: "never"}
		p := New()
		p.AddStep(step)

		if err := p.Execute(ctx, newTestTriage()); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if step.callCount != 0 {
			t.Error("expected step not to run")
		}
	})
}

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/datecheck/internal/model"
)

// createTestTriage creates a triage with stale annotations in two documents.
// Documents are inserted out of order on purpose.
func createTestTriage() *model.Triage {
	triage := model.NewTriage("docs", model.YearMonth{Year: 2021, Month: 7}, 6)
	triage.Stale.Set("z/last.md", []model.Annotation{
		{Line: 9, Date: model.YearMonth{Year: 2019, Month: 11}},
	})
	triage.Stale.Set("guide/mixed.md", []model.Annotation{
		{Line: 3, Date: model.YearMonth{Year: 2021, Month: 1}},
		{Line: 14, Date: model.YearMonth{Year: 2020, Month: 5}},
	})
	return triage
}

func createEmptyTriage() *model.Triage {
	return model.NewTriage("docs", model.YearMonth{Year: 2021, Month: 7}, 6)
}

// TestMarkdownWriter tests the checklist output.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes empty sentinel when nothing is stale", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewMarkdownWriter(&buf).Write(createEmptyTriage())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "empty\n" {
			t.Errorf("expected exactly the empty sentinel, got %q", buf.String())
		}
		if n != len("empty\n") {
			t.Errorf("expected %d bytes written, got %d", len("empty\n"), n)
		}
	})

	t.Run("starts with the title line", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createTestTriage()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.HasPrefix(buf.String(), "Date Reference Triage for 2021-07") {
			t.Errorf("unexpected title in %q", buf.String())
		}
	})

	t.Run("writes procedure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createTestTriage()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"## Procedure",
			"use the current month (2021-07)",
			"Please check off each date",
			"please close this issue.",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("writes nested checklist in path order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createTestTriage()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		items := []string{
			"## Dates",
			"- [ ] guide/mixed.md",
			"  - [ ] line 3: 2021-01",
			"  - [ ] line 14: 2020-05",
			"- [ ] z/last.md",
			"  - [ ] line 9: 2019-11",
		}

		last := -1
		for _, item := range items {
			idx := strings.Index(output, item)
			if idx < 0 {
				t.Fatalf("expected output to contain %q, got %q", item, output)
			}
			if idx <= last {
				t.Errorf("expected %q after the previous item", item)
			}
			last = idx
		}
	})

	t.Run("output is byte-stable", func(t *testing.T) {
		t.Parallel()

		var first, second bytes.Buffer
		if _, err := NewMarkdownWriter(&first).Write(createTestTriage()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		reordered := createEmptyTriage()
		reordered.Stale.Set("guide/mixed.md", []model.Annotation{
			{Line: 3, Date: model.YearMonth{Year: 2021, Month: 1}},
			{Line: 14, Date: model.YearMonth{Year: 2020, Month: 5}},
		})
		reordered.Stale.Set("z/last.md", []model.Annotation{
			{Line: 9, Date: model.YearMonth{Year: 2019, Month: 11}},
		})
		if _, err := NewMarkdownWriter(&second).Write(reordered); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first.String() != second.String() {
			t.Errorf("expected identical output\nfirst:\n%s\nsecond:\n%s", first.String(), second.String())
		}
	})
}

// TestJSONWriter tests the structured JSON output.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("encodes documents in path order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(createTestTriage()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got summary
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if got.Reference != "2021-07" || got.Threshold != 6 {
			t.Errorf("unexpected header: %+v", got)
		}
		if len(got.Documents) != 2 {
			t.Fatalf("expected 2 documents, got %d", len(got.Documents))
		}
		if got.Documents[0].Path != "guide/mixed.md" || got.Documents[1].Path != "z/last.md" {
			t.Errorf("unexpected document order: %+v", got.Documents)
		}
		if got.Documents[0].Annotations[1] != (entry{Line: 14, Date: "2020-05"}) {
			t.Errorf("unexpected annotation: %+v", got.Documents[0].Annotations[1])
		}
		if !strings.Contains(buf.String(), "\n  \"reference\"") {
			t.Error("expected indented output")
		}
	})

	t.Run("compact output without options", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createEmptyTriage()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := `{"reference":"2021-07","threshold":6,"documents":[]}` + "\n"
		if buf.String() != expected {
			t.Errorf("got %q, expected %q", buf.String(), expected)
		}
	})
}

// TestYAMLWriter tests the structured YAML output.
func TestYAMLWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewYAMLWriter(&buf).Write(createTestTriage()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got summary
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if got.Reference != "2021-07" {
		t.Errorf("expected reference 2021-07, got %q", got.Reference)
	}
	if len(got.Documents) != 2 || got.Documents[1].Annotations[0].Line != 9 {
		t.Errorf("unexpected documents: %+v", got.Documents)
	}
	if !strings.Contains(buf.String(), "\nthreshold: 6\n") {
		t.Errorf("expected threshold field, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "\n  - path: guide/mixed.md\n") {
		t.Errorf("expected two-space indented documents, got %q", buf.String())
	}
}

// TestNewWriter tests format selection.
func TestNewWriter(t *testing.T) {
	t.Parallel()

	for _, format := range Formats() {
		format := format
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			w, err := NewWriter(format, &bytes.Buffer{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w == nil {
				t.Fatal("expected non-nil writer")
			}
		})
	}

	t.Run("unknown format returns ErrUnknownFormat", func(t *testing.T) {
		t.Parallel()

		if _, err := NewWriter("html", &bytes.Buffer{}); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
	})
}

package model

// Triage holds the state of one datecheck run.
// Pipeline steps fill it in order: discovery sets Paths, extraction sets
// Found, and filtering sets Stale.
type Triage struct {
	// Root is the directory being scanned, as given on the command line.
	Root string

	// Reference is the month the annotations are aged against.
	Reference YearMonth

	// Threshold is the minimum age in months for an annotation to be stale.
	Threshold int

	// Paths lists the discovered documents relative to Root.
	Paths []string

	// Found holds every annotation extracted from the discovered documents.
	Found *Collection

	// Stale holds the annotations whose age meets Threshold.
	Stale *Collection

	// PerformedSteps records the pipeline steps that completed.
	PerformedSteps []string
}

// NewTriage creates a Triage for the given root, reference month and threshold.
func NewTriage(root string, reference YearMonth, threshold int) *Triage {
	return &Triage{
		Root:      root,
		Reference: reference,
		Threshold: threshold,
		Paths:     make([]string, 0),
		Found:     NewCollection(),
		Stale:     NewCollection(),
	}
}

// HasStale reports whether any stale annotation was found.
func (t *Triage) HasStale() bool {
	return t.Stale != nil && !t.Stale.IsEmpty()
}

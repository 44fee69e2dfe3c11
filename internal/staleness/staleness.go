// Package staleness keeps the annotations that are old enough to need review.
package staleness

import (
	"fmt"

	"github.com/nao1215/datecheck/internal/model"
)

// DefaultThreshold is the minimum age, in months, of a stale annotation.
const DefaultThreshold = 6

// Filter returns the annotations in found whose age relative to reference is
// at least threshold months. Qualifying annotations keep their order and
// documents without any are dropped. found is not modified.
//
// An annotation dated after reference panics with the offending path and line.
func Filter(reference model.YearMonth, threshold int, found *model.Collection) *model.Collection {
	stale := model.NewCollection()

	for _, path := range found.Paths() {
		annotations, _ := found.Get(path)

		kept := make([]model.Annotation, 0, len(annotations))
		for _, a := range annotations {
			if Age(reference, path, a) >= threshold {
				kept = append(kept, a)
			}
		}
		stale.Set(path, kept)
	}

	return stale
}

// Age returns the age in months of a relative to reference.
// It panics if a is dated after reference.
func Age(reference model.YearMonth, path string, a model.Annotation) int {
	months, ok := reference.MonthsSince(a.Date)
	if !ok {
		panic(fmt.Sprintf("found date that is after current month: %s line %d: %s is after %s",
			path, a.Line, a.Date, reference))
	}
	return months
}

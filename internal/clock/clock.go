// Package clock provides the reference month for a run.
package clock

import (
	"time"

	"github.com/nao1215/datecheck/internal/model"
)

// Clock yields the month that annotations are aged against.
type Clock interface {
	CurrentMonth() model.YearMonth
}

// System reads the month from the wall clock in UTC.
type System struct{}

// CurrentMonth returns the current UTC month.
func (System) CurrentMonth() model.YearMonth {
	return model.FromTime(time.Now().UTC())
}

// Fixed always returns the same month.
type Fixed model.YearMonth

// CurrentMonth returns the fixed month.
func (f Fixed) CurrentMonth() model.YearMonth {
	return model.YearMonth(f)
}

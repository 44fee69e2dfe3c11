package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidMonth is returned when a month outside 1-12 is used to build a YearMonth.
var ErrInvalidMonth = errors.New("invalid month: must be between 1 and 12")

// ErrInvalidYearMonth is returned when a string is not in YYYY-MM form.
var ErrInvalidYearMonth = errors.New("invalid year-month: expected YYYY-MM")

// daysPerMonth is the divisor used to turn a day gap into a month count.
const daysPerMonth = 30

// secondsPerDay converts Unix second differences into whole days.
const secondsPerDay = 24 * 60 * 60

// YearMonth is a calendar month without a day component.
// The zero value is not a valid month; use NewYearMonth or ParseYearMonth.
type YearMonth struct {
	// Year is the calendar year, usually four digits.
	Year int

	// Month is the calendar month, always in [1, 12] for constructed values.
	Month int
}

// NewYearMonth creates a YearMonth, rejecting months outside 1-12.
func NewYearMonth(year, month int) (YearMonth, error) {
	if month < 1 || month > 12 {
		return YearMonth{}, fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}
	return YearMonth{Year: year, Month: month}, nil
}

// ParseYearMonth parses the canonical YYYY-MM form produced by String.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: %q", ErrInvalidYearMonth, s)
	}
	return YearMonth{Year: t.Year(), Month: int(t.Month())}, nil
}

// FromTime returns the month that contains t.
func FromTime(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: int(t.Month())}
}

// String renders the month as YYYY-MM.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// Before reports whether ym is an earlier month than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// firstDay anchors the month at day 1, midnight UTC.
func (ym YearMonth) firstDay() time.Time {
	return time.Date(ym.Year, time.Month(ym.Month), 1, 0, 0, 0, 0, time.UTC)
}

// MonthsSince returns the approximate number of months from other to ym:
// the whole days between the first of each month, divided by 30 and truncated.
// ok is false when other is after ym.
func (ym YearMonth) MonthsSince(other YearMonth) (months int, ok bool) {
	days := (ym.firstDay().Unix() - other.firstDay().Unix()) / secondsPerDay
	if days < 0 {
		return 0, false
	}
	return int(days / daysPerMonth), true
}

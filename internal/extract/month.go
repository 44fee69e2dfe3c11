package extract

import (
	"time"

	"golang.org/x/text/cases"
)

// monthNames maps case-folded month names and their three-letter
// abbreviations to month numbers.
var monthNames = buildMonthNames()

// fullMonthNames lists the case-folded full names in calendar order.
var fullMonthNames = buildFullMonthNames()

func buildMonthNames() map[string]int {
	fold := cases.Fold()
	names := make(map[string]int, 24)
	for m := time.January; m <= time.December; m++ {
		full := fold.String(m.String())
		names[full] = int(m)
		names[full[:3]] = int(m)
	}
	return names
}

func buildFullMonthNames() []string {
	fold := cases.Fold()
	names := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		names = append(names, fold.String(m.String()))
	}
	return names
}

// ParseMonth resolves a month word such as "July", "jul" or "JULY" to its
// number. Only full English names and three-letter abbreviations are accepted.
func ParseMonth(token string) (int, bool) {
	month, ok := monthNames[cases.Fold().String(token)]
	return month, ok
}

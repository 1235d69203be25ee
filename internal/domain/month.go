package domain

import (
	"fmt"
	"time"
)

// monthLayouts are the accepted date inputs, most specific first. "2006-01"
// resolves to the first day of the month; the day-of-month carries no
// meaning for snapshot months, only year and month do.
var monthLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01",
}

// ParseMonth parses a calendar date from its string form. Used for both
// snapshot months and server decommission dates.
func ParseMonth(s string) (time.Time, error) {
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q: %w", s, ErrValidation)
}

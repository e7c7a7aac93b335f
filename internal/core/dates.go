package core

import (
	"strings"
	"time"
)

// DateLayout renders calendar dates in log output, e.g. "Sun Jan 15 2023".
const DateLayout = "Mon Jan 02 2006"

var inputLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.DateTime,
	DateLayout,
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseDate parses s with the accepted input layouts and truncates the result to a calendar date.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range inputLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return CalendarDate(t), true
		}
	}

	return time.Time{}, false
}

// CalendarDate drops the clock part of t, keeping the date as seen in t's own location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

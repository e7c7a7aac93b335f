package core

import (
	"strconv"
	"strings"
	"time"
)

// LogQuery narrows a user's log. Zero values mean "not set".
type LogQuery struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// NewLogQuery builds a LogQuery from raw request values. Values that do not parse are ignored.
func NewLogQuery(from, to, limit string) LogQuery {
	var q LogQuery

	if d, ok := ParseDate(from); ok {
		q.From = &d
	}
	if d, ok := ParseDate(to); ok {
		q.To = &d
	}
	if n, err := strconv.Atoi(strings.TrimSpace(limit)); err == nil && n > 0 {
		q.Limit = n
	}

	return q
}

// Match reports whether date lies inside the query's inclusive date range.
func (q LogQuery) Match(date time.Time) bool {
	if q.From != nil && date.Before(*q.From) {
		return false
	}
	if q.To != nil && date.After(*q.To) {
		return false
	}
	return true
}

// Apply filters log by date range and then truncates it to Limit, keeping insertion order.
func (q LogQuery) Apply(log []Exercise) []Exercise {
	filtered := make([]Exercise, 0, len(log))
	for _, ex := range log {
		if q.Match(ex.Date) {
			filtered = append(filtered, ex)
		}
	}

	if q.Limit > 0 && len(filtered) > q.Limit {
		filtered = filtered[:q.Limit]
	}

	return filtered
}

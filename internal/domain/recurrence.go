package domain

import (
	"strings"
	"time"
)

// RecurrenceKind describes how long a trip schedule stays active from its
// start date.
type RecurrenceKind string

const (
	RecurDay   RecurrenceKind = "day"
	RecurWeek  RecurrenceKind = "week"
	RecurMonth RecurrenceKind = "month"
	RecurYear  RecurrenceKind = "year"
)

// ParseRecurrenceKind normalizes a recurrence keyword. Unknown values are an
// error, never a default.
func ParseRecurrenceKind(s string) (RecurrenceKind, error) {
	switch RecurrenceKind(strings.ToLower(strings.TrimSpace(s))) {
	case RecurDay:
		return RecurDay, nil
	case RecurWeek:
		return RecurWeek, nil
	case RecurMonth:
		return RecurMonth, nil
	case RecurYear:
		return RecurYear, nil
	default:
		return "", UnsupportedRecurrenceKindError{Kind: s}
	}
}

// ComputeEndDate derives the inclusive end date for a schedule: one unit of
// kind past start, minus one day. Month and year arithmetic clamps to the
// last day of the target month (Jan 31 + 1 month ends in Feb; Feb 29 + 1
// year ends on Feb 28) instead of rolling over.
func ComputeEndDate(start time.Time, kind RecurrenceKind) (time.Time, error) {
	var next time.Time
	switch kind {
	case RecurDay:
		next = start.AddDate(0, 0, 1)
	case RecurWeek:
		next = start.AddDate(0, 0, 7)
	case RecurMonth:
		next = addMonthsClamped(start, 1)
	case RecurYear:
		next = addMonthsClamped(start, 12)
	default:
		return time.Time{}, UnsupportedRecurrenceKindError{Kind: string(kind)}
	}
	return next.AddDate(0, 0, -1), nil
}

// addMonthsClamped shifts by whole calendar months, pinning the day of month
// to the last valid day when the target month is shorter.
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); d > last {
		d = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

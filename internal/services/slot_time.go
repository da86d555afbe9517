package services

import (
	"fmt"
	"strings"
	"time"
)

var weekdayAbbrev = map[string]time.Weekday{
	"Sun": time.Sunday,
	"Mon": time.Monday,
	"Tue": time.Tuesday,
	"Wed": time.Wednesday,
	"Thu": time.Thursday,
	"Fri": time.Friday,
	"Sat": time.Saturday,
}

// NextOccurrence resolves a slot label of the form "Mon 10:00 AM" to the
// occurrence of that weekday in the current week, counting today as offset
// zero. A label whose weekday is today with a wall-clock time already
// passed therefore resolves to a timestamp in the past; callers treat such
// a slot as unavailable.
func NextOccurrence(label string, now time.Time) (time.Time, error) {
	parts := strings.Fields(strings.TrimSpace(label))
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("malformed slot label %q", label)
	}

	weekday, ok := weekdayAbbrev[parts[0]]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday in slot label %q", label)
	}

	clock, err := time.Parse("3:04 PM", parts[1]+" "+parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("bad time in slot label %q: %w", label, err)
	}

	daysAhead := (int(weekday) - int(now.Weekday()) + 7) % 7
	day := now.AddDate(0, 0, daysAhead)
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location()), nil
}

// IsSlotInFuture reports whether the slot's next occurrence is still ahead
// of now. Malformed labels are not bookable.
func IsSlotInFuture(label string, now time.Time) bool {
	at, err := NextOccurrence(label, now)
	if err != nil {
		return false
	}
	return at.After(now)
}

package study

import (
	"time"

	"github.com/heartmarshall/recall/internal/domain"
)

// Today returns the calendar date of now as seen in tz.
func Today(now time.Time, tz *time.Location) time.Time {
	return domain.DateOf(now.In(tz))
}

// ParseTimezone parses a timezone string, returning UTC as fallback.
// "Local" resolves to the system timezone.
func ParseTimezone(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

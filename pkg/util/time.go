package util

import (
	"time"
)

// AddTimeToDate puts the clock time of clock on the calendar day of date, in date's location.
// Seconds are dropped as every time handled here is minute based.
func AddTimeToDate(date time.Time, clock time.Time) time.Time {
	year, month, day := date.Date()

	return time.Date(year, month, day, clock.Hour(), clock.Minute(), 0, 0, date.Location())
}

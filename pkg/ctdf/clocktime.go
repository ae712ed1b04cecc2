package ctdf

import (
	"strings"
	"time"

	"github.com/campusvvs/navigator/pkg/util"
)

// UnknownClockTime is used wherever no usable time value was available
const UnknownClockTime = "--:--"

const ClockTimeFormat = "15:04"

const minutesPerDay = 24 * 60

// FormatClockTime converts any of the time representations the trip planner returns
// (ISO-8601 timestamps, compact HHMM or already formatted HH:MM) into HH:MM.
// A nil, empty or unrecognisable value becomes UnknownClockTime.
func FormatClockTime(raw *string) string {
	if raw == nil || *raw == "" {
		return UnknownClockTime
	}
	value := *raw

	if _, after, found := strings.Cut(value, "T"); found {
		// Only look up to the next separator, eg. "2025-12-24T14:00:00Z"
		after, _, _ = strings.Cut(after, "T")

		return clockShapedOrUnknown(util.TrimString(after, 5))
	}

	if len(value) == 4 && isDigits(value) {
		return value[:2] + ":" + value[2:]
	}

	return clockShapedOrUnknown(util.TrimString(value, 5))
}

func clockShapedOrUnknown(s string) string {
	if len(s) != 5 || s[2] != ':' || !isDigits(s[:2]) || !isDigits(s[3:]) {
		return UnknownClockTime
	}

	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// ParseClockMinutes returns the minutes since midnight of a HH:MM value
func ParseClockMinutes(clock string) (int, bool) {
	parsed, err := time.Parse(ClockTimeFormat, clock)
	if err != nil {
		return 0, false
	}

	return parsed.Hour()*60 + parsed.Minute(), true
}

// ClockDurationMinutes works out the minutes between two HH:MM values, assuming the
// arrival happens the next day if it is before the departure.
// If either value can't be parsed the upstream duration in seconds is used instead.
func ClockDurationMinutes(departure string, arrival string, fallbackSeconds int) int {
	departureTime, depErr := time.Parse(ClockTimeFormat, departure)
	arrivalTime, arrErr := time.Parse(ClockTimeFormat, arrival)

	if depErr != nil || arrErr != nil {
		return max(fallbackSeconds/60, 0)
	}

	seconds := int(arrivalTime.Sub(departureTime).Seconds())
	if seconds < 0 {
		seconds += 24 * 60 * 60
	}

	return seconds / 60
}

// ClockOrdinal is a time of day placed relative to a reference time, so that journeys
// either side of midnight still order correctly.
type ClockOrdinal struct {
	Known     bool
	Minutes   int
	DayOffset int
}

// NewClockOrdinal places clock in the 24 hour window centred on referenceMinutes
func NewClockOrdinal(clock string, referenceMinutes int) ClockOrdinal {
	minutes, ok := ParseClockMinutes(clock)
	if !ok {
		return ClockOrdinal{}
	}

	delta := ((minutes-referenceMinutes)%minutesPerDay + minutesPerDay) % minutesPerDay
	if delta >= minutesPerDay/2 {
		delta -= minutesPerDay
	}

	dayOffset := 0
	switch placed := referenceMinutes + delta; {
	case placed < 0:
		dayOffset = -1
	case placed >= minutesPerDay:
		dayOffset = 1
	}

	return ClockOrdinal{
		Known:     true,
		Minutes:   minutes,
		DayOffset: dayOffset,
	}
}

// Value is the number of minutes from midnight of the reference day
func (o ClockOrdinal) Value() int {
	return o.DayOffset*minutesPerDay + o.Minutes
}

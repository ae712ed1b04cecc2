package ctdf

import (
	"errors"
	"fmt"
	"time"

	"github.com/campusvvs/navigator/pkg/util"
)

const CompactTimeFormat = "1504"
const CompactDateFormat = "20060102"

var ErrInvalidTime = errors.New("time must be a 24 hour HHMM value")
var ErrInvalidDate = errors.New("date must be a YYYYMMDD value")
var ErrInvalidBuffer = errors.New("buffer must not be negative")

// SearchTime is the date and time sent upstream for one search.
// Date is empty when the request didn't carry one.
type SearchTime struct {
	Date string
	Time string
}

// Minutes since midnight of the search time
func (s SearchTime) Minutes() int {
	parsed, err := ParseCompactTime(s.Time)
	if err != nil {
		return 0
	}

	return parsed.Hour()*60 + parsed.Minute()
}

func ParseCompactTime(hhmm string) (time.Time, error) {
	if len(hhmm) != 4 || !isDigits(hhmm) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}

	parsed, err := time.Parse(CompactTimeFormat, hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}

	return parsed, nil
}

func ParseCompactDate(yyyymmdd string) (time.Time, error) {
	if len(yyyymmdd) != 8 || !isDigits(yyyymmdd) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, yyyymmdd)
	}

	parsed, err := time.Parse(CompactDateFormat, yyyymmdd)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, yyyymmdd)
	}

	return parsed, nil
}

// AdjustSearchTime moves the requested time by the buffer: earlier when travelling to the
// campus (the traveller has to arrive before the requested time), later when leaving it.
// bufferMinutes must already include any fixed margin.
func AdjustSearchTime(date string, hhmm string, direction Direction, bufferMinutes int) (SearchTime, error) {
	requested, err := ParseCompactTime(hhmm)
	if err != nil {
		return SearchTime{}, err
	}

	if bufferMinutes < 0 {
		return SearchTime{}, fmt.Errorf("%w: %d", ErrInvalidBuffer, bufferMinutes)
	}

	if date != "" {
		day, err := ParseCompactDate(date)
		if err != nil {
			return SearchTime{}, err
		}

		requested = util.AddTimeToDate(day, requested)
	}

	offset := time.Duration(bufferMinutes) * time.Minute
	if direction.ArriveBy() {
		offset = -offset
	}

	return newSearchTime(requested.Add(offset), date != ""), nil
}

func newSearchTime(t time.Time, withDate bool) SearchTime {
	searchTime := SearchTime{
		Time: t.Format(CompactTimeFormat),
	}

	if withDate {
		searchTime.Date = t.Format(CompactDateFormat)
	}

	return searchTime
}

// TodayCompactDate is the current date in the given timezone, falling back to the local one
func TodayCompactDate(location *time.Location) string {
	if location == nil {
		location = time.Local
	}

	return time.Now().In(location).Format(CompactDateFormat)
}

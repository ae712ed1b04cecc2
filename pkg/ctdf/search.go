package ctdf

import (
	"errors"
	"fmt"
	"time"

	"github.com/campusvvs/navigator/pkg/util"

	iso8601 "github.com/senseyeio/duration"
)

var ErrMissingStop = errors.New("a user stop must be provided")

type SearchRequest struct {
	Direction     Direction
	UserStopID    string
	Date          string
	Time          string
	BufferMinutes int
}

func (r SearchRequest) Validate() error {
	if r.UserStopID == "" {
		return ErrMissingStop
	}

	if _, err := ParseCompactTime(r.Time); err != nil {
		return err
	}

	if r.Date != "" {
		if _, err := ParseCompactDate(r.Date); err != nil {
			return err
		}
	}

	if r.BufferMinutes < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBuffer, r.BufferMinutes)
	}

	return nil
}

// SearchPolicy holds the adjustments the service applies on top of what the user asked for
type SearchPolicy struct {
	// SafetyMargin is always added to the user's own buffer
	SafetyMargin iso8601.Duration

	// UpstreamClockCorrection shifts the requested time before anything else.
	// It compensates for the trip planner interpreting times in a different zone than the
	// one the user sent them in and should stay zero once that is fixed upstream.
	UpstreamClockCorrection iso8601.Duration
}

func (p SearchPolicy) HasClockCorrection() bool {
	return p.UpstreamClockCorrection != iso8601.Duration{}
}

// Resolve applies the policy and the buffer to the request, producing the time to search upstream with
func (p SearchPolicy) Resolve(request SearchRequest) (SearchTime, error) {
	requested, err := ParseCompactTime(request.Time)
	if err != nil {
		return SearchTime{}, err
	}

	if request.Date != "" {
		day, err := ParseCompactDate(request.Date)
		if err != nil {
			return SearchTime{}, err
		}

		requested = util.AddTimeToDate(day, requested)
	}

	corrected := newSearchTime(p.UpstreamClockCorrection.Shift(requested), request.Date != "")
	bufferMinutes := request.BufferMinutes + p.SafetyMarginMinutes(requested)

	return AdjustSearchTime(corrected.Date, corrected.Time, request.Direction, bufferMinutes)
}

func (p SearchPolicy) SafetyMarginMinutes(at time.Time) int {
	return int(p.SafetyMargin.Shift(at).Sub(at) / time.Minute)
}

func (p SearchPolicy) ClockCorrectionMinutes(at time.Time) int {
	return int(p.UpstreamClockCorrection.Shift(at).Sub(at) / time.Minute)
}

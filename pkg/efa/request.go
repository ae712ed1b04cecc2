package efa

import (
	"net/url"
	"strconv"
)

const DefaultBaseURL = "https://www3.vvs.de/mngvvs/XML_TRIP_REQUEST2"

const DefaultNumberOfTrips = 4

// DefaultStaticParameters are sent with every trip request
func DefaultStaticParameters() map[string]string {
	return map[string]string{
		"SpEncId":             "0",
		"changeSpeed":         "normal",
		"computationType":     "sequence",
		"coordOutputFormat":   "EPSG:4326",
		"cycleSpeed":          "14",
		"deleteAssignedStops": "0",
		"deleteITPTWalk":      "0",
		"descWithElev":        "1",
		"itOptionsActive":     "1",
		"macroWebTrip":        "true",
		"noElevationProfile":  "1",
		"outputFormat":        "rapidJSON",
		"outputOptionsActive": "1",
		"ptOptionsActive":     "1",
		"routeType":           "leasttime",
		"searchLimitMinutes":  "360",
		"serverInfo":          "1",
		"trITArrMOT":          "100",
		"trITArrMOTvalue":     "0",
		"trITDepMOT":          "100",
		"trITDepMOTvalue":     "0",
		"type_destination":    "any",
		"type_origin":         "any",
		"useElevationData":    "1",
		"useLocalityMainStop": "0",
		"useRealtime":         "1",
		"useUT":               "0",
		"version":             "10.2.10.139",
	}
}

type TripRequest struct {
	OriginStopID      string
	DestinationStopID string

	// Date is YYYYMMDD and Time is HHMM
	Date string
	Time string

	// ArriveBy searches for journeys arriving before Time instead of departing after it
	ArriveBy bool

	NumberOfTrips int
}

func (r TripRequest) Values(staticParameters map[string]string) url.Values {
	values := url.Values{}
	for key, value := range staticParameters {
		values.Set(key, value)
	}

	depArr := "dep"
	if r.ArriveBy {
		depArr = "arr"
	}

	numberOfTrips := r.NumberOfTrips
	if numberOfTrips <= 0 {
		numberOfTrips = DefaultNumberOfTrips
	}

	values.Set("name_origin", r.OriginStopID)
	values.Set("name_destination", r.DestinationStopID)
	if r.Date != "" {
		values.Set("itdDate", r.Date)
	}
	values.Set("itdTime", r.Time)
	values.Set("itdTripDateTimeDepArr", depArr)
	values.Set("calcNumberOfTrips", strconv.Itoa(numberOfTrips))

	return values
}

// CacheKey identifies the request independently of the static parameters
func (r TripRequest) CacheKey() string {
	return "efa-trip/" + r.Values(nil).Encode()
}

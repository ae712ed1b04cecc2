// Package efa talks to an EFA trip planner (as run by VVS) using its rapidJSON output format.
//
// The trip responses are only loosely structured, so every field here is optional and
// tolerant of the wrong JSON type. Anything that can't be read is treated as missing.
package efa

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

type TripResponse struct {
	Journeys []RawJourney `json:"journeys"`
}

type RawJourney struct {
	Interchanges FlexibleInt `json:"interchanges"`
	Duration     FlexibleInt `json:"duration"`
	Legs         []RawLeg    `json:"legs"`
}

type RawLeg struct {
	Origin         *RawLocation       `json:"origin"`
	Destination    *RawLocation       `json:"destination"`
	Transportation *RawTransportation `json:"transportation"`

	DepartureTimeEstimated RawString `json:"departureTimeEstimated"`
	DepartureTimePlanned   RawString `json:"departureTimePlanned"`
	ArrivalTimeEstimated   RawString `json:"arrivalTimeEstimated"`
	ArrivalTimePlanned     RawString `json:"arrivalTimePlanned"`
}

type RawLocation struct {
	ID   RawString `json:"id"`
	Name RawString `json:"name"`

	DepartureTimeEstimated RawString `json:"departureTimeEstimated"`
	DepartureTimePlanned   RawString `json:"departureTimePlanned"`
	ArrivalTimeEstimated   RawString `json:"arrivalTimeEstimated"`
	ArrivalTimePlanned     RawString `json:"arrivalTimePlanned"`
}

type RawTransportation struct {
	Name   RawString `json:"name"`
	Number RawString `json:"number"`
}

// RawString holds a JSON string value. Any other JSON type decodes as absent.
type RawString struct {
	Value *string
}

func NewRawString(s string) RawString {
	return RawString{Value: &s}
}

func (r *RawString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		r.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		r.Value = nil
		return nil
	}

	r.Value = &s
	return nil
}

func (r RawString) MarshalJSON() ([]byte, error) {
	if r.Value == nil {
		return []byte("null"), nil
	}

	return json.Marshal(*r.Value)
}

// Present is true for a non-empty string
func (r RawString) Present() bool {
	return r.Value != nil && *r.Value != ""
}

func (r RawString) Or(fallback string) string {
	if !r.Present() {
		return fallback
	}

	return *r.Value
}

// FlexibleInt holds a JSON number, or a string containing one
type FlexibleInt struct {
	Value *int
}

func NewFlexibleInt(i int) FlexibleInt {
	return FlexibleInt{Value: &i}
}

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	f.Value = nil

	data = bytes.Trim(data, `"`)
	number, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(number) || number < math.MinInt || number >= math.MaxInt {
		return nil
	}

	i := int(number)
	f.Value = &i

	return nil
}

func (f FlexibleInt) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}

	return json.Marshal(*f.Value)
}

func (f FlexibleInt) Or(fallback int) int {
	if f.Value == nil {
		return fallback
	}

	return *f.Value
}

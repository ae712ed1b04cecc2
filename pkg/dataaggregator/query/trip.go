package query

import "github.com/campusvvs/navigator/pkg/efa"

// Trip is a single request to the upstream trip planner
type Trip struct {
	Request efa.TripRequest
}

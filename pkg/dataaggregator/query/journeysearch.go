package query

import "github.com/campusvvs/navigator/pkg/ctdf"

// JourneySearch looks for journeys between the user's stop and every campus anchor stop
type JourneySearch struct {
	Request ctdf.SearchRequest
	Limit   int
}

package query

type Stop struct {
	ID   string
	Name string
}

type Stops struct {
	// Search filters on the stop name, an empty search returns every stop
	Search string
	Limit  int
}

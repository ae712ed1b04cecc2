// Package stopdirectory holds the stop reference data. It is loaded once at startup
// and never changes afterwards, so it can be shared between requests without locking.
package stopdirectory

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/campusvvs/navigator/pkg/ctdf"
)

type Directory struct {
	byName map[string]ctdf.Stop
	byID   map[string]ctdf.Stop
	sorted []ctdf.Stop
}

// New builds a directory from stops in load order. If two stops share a display name the
// later one wins, as it would when overwriting a name to ID mapping.
func New(stops []ctdf.Stop) *Directory {
	directory := &Directory{
		byName: map[string]ctdf.Stop{},
		byID:   map[string]ctdf.Stop{},
	}

	for _, stop := range stops {
		if stop.Name == "" || stop.ID == "" {
			continue
		}

		directory.byName[stop.Name] = stop
	}

	for _, stop := range directory.byName {
		if _, exists := directory.byID[stop.ID]; !exists || stop.Name < directory.byID[stop.ID].Name {
			directory.byID[stop.ID] = stop
		}
	}

	directory.sorted = make([]ctdf.Stop, 0, len(directory.byName))
	for _, stop := range directory.byName {
		directory.sorted = append(directory.sorted, stop)
	}
	slices.SortFunc(directory.sorted, func(a, b ctdf.Stop) int {
		return strings.Compare(a.Name, b.Name)
	})

	return directory
}

func (d *Directory) Len() int {
	return len(d.sorted)
}

// All returns every stop sorted by name
func (d *Directory) All() []ctdf.Stop {
	return slices.Clone(d.sorted)
}

func (d *Directory) ByID(id string) (ctdf.Stop, bool) {
	stop, ok := d.byID[id]
	return stop, ok
}

func (d *Directory) ByName(name string) (ctdf.Stop, bool) {
	stop, ok := d.byName[name]
	return stop, ok
}

// Search returns up to limit stops whose name contains term, ignoring case.
// Stops starting with the term come first.
func (d *Directory) Search(term string, limit int) []ctdf.Stop {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return d.limited(d.sorted, limit)
	}

	var prefixMatches []ctdf.Stop
	var otherMatches []ctdf.Stop

	for _, stop := range d.sorted {
		name := strings.ToLower(stop.Name)

		if strings.HasPrefix(name, term) {
			prefixMatches = append(prefixMatches, stop)
		} else if strings.Contains(name, term) {
			otherMatches = append(otherMatches, stop)
		}
	}

	return d.limited(append(prefixMatches, otherMatches...), limit)
}

func (d *Directory) limited(stops []ctdf.Stop, limit int) []ctdf.Stop {
	if limit > 0 && len(stops) > limit {
		stops = stops[:limit]
	}

	return slices.Clone(stops)
}

package app

import (
	"strings"

	"invisioo/internal/domain"
)

// PlaceFilter selects a view over the place collection. Zero value passes
// everything.
type PlaceFilter struct {
	Status     domain.StatusFilter
	Query      string
	Categories []domain.Category
}

// FilterPlaces returns the subset of places passing the filter, preserving
// insertion order. A place passes when its status matches the filter, the
// trimmed lowercase query is a substring of "name category address", and it
// supports every selected category. Places without supports metadata are
// treated as compatible with any category selection.
func FilterPlaces(places []domain.Place, f PlaceFilter) []domain.Place {
	status := f.Status
	if status == "" {
		status = domain.FilterAll
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]domain.Place, 0, len(places))
	for _, p := range places {
		if !status.Matches(p.Status) {
			continue
		}
		if q != "" {
			hay := strings.ToLower(p.Name + " " + p.Category + " " + p.Address)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		if !p.SupportsAll(f.Categories) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// CenterHint returns the coordinate the map should fly to: the first match
// when a query is active, nil otherwise.
func CenterHint(visible []domain.Place, query string) *domain.Coords {
	if strings.TrimSpace(query) == "" || len(visible) == 0 {
		return nil
	}
	return &domain.Coords{Lat: visible[0].Lat, Lng: visible[0].Lng}
}

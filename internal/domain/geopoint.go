package domain

import "strings"

// Immutable geographic point produced by a geocoder.
// Label is a best-effort human-readable name for display and history.
type GeoPoint struct {
	Lat   float64
	Lon   float64
	Label string
}

// ComposeLabel joins the non-empty parts of {name, state, country} with ", ".
// When the service omits a name, fallback (the original query text) is used.
func ComposeLabel(name, state, country, fallback string) string {
	if name == "" {
		name = fallback
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{name, state, country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

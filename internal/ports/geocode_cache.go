package ports

import (
	"context"

	"trip-route-service/internal/domain"
)

// Contract for caching successful geocode resolutions.
// Keys are expected to be normalized by the caller. Cache failures must
// never fail a resolution; callers treat errors as misses.
type GeocodeCache interface {
	// Get returns the cached point for query and whether it was present.
	Get(ctx context.Context, query string) (domain.GeoPoint, bool, error)
	// Put stores a successful resolution.
	Put(ctx context.Context, query string, point domain.GeoPoint) error
}

package ports

import (
	"context"
	"fmt"

	"trip-route-service/internal/domain"
)

// RoutingError carries the routing service's own failure message when it
// provided one, or a transport/decode failure description otherwise.
type RoutingError struct {
	Message string
	Err     error
}

func (e *RoutingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("routing failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("routing failed: %s", e.Message)
}

func (e *RoutingError) Unwrap() error { return e.Err }

// Contract for fetching a route between two resolved points.
type RouteProvider interface {
	// FetchRoute requests a route for the given mode. On failure it
	// returns a *RoutingError. Single attempt, no shared-state mutation.
	FetchRoute(ctx context.Context, origin, destination domain.GeoPoint, mode domain.TravelMode) (*domain.RouteResult, error)
}

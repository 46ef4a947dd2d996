package ports

import (
	"context"
	"errors"
	"fmt"

	"trip-route-service/internal/domain"
)

// ErrNotFound is the caller-facing outcome for any failed resolution.
// Zero matches, an error status and a transport failure are deliberately
// indistinguishable at this boundary; the underlying cause is kept on
// NotFoundError for logs and metrics only.
var ErrNotFound = errors.New("location not found")

// Internal cause of a failed geocode resolution.
type GeocodeCause string

const (
	CauseEmptyQuery GeocodeCause = "empty_query"
	CauseNoResults  GeocodeCause = "no_results"
	CauseStatus     GeocodeCause = "status"
	CauseTransport  GeocodeCause = "transport"
	CauseDecode     GeocodeCause = "decode"
)

// NotFoundError tags a failed resolution with its internal cause.
// errors.Is(err, ErrNotFound) holds for every instance.
type NotFoundError struct {
	Query string
	Cause GeocodeCause
	Err   error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geocode %q: %s: %v", e.Query, e.Cause, e.Err)
	}
	return fmt.Sprintf("geocode %q: %s", e.Query, e.Cause)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Contract for resolving a free-text place name to coordinates.
type Geocoder interface {
	// Resolve returns the best match for query, or an error satisfying
	// errors.Is(err, ErrNotFound) when the place cannot be resolved.
	// A single remote attempt is made per call; there are no retries.
	Resolve(ctx context.Context, query string) (domain.GeoPoint, error)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/metrics"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

// ErrMissingInput reports a blank origin or destination. No remote call
// is made in that case.
var ErrMissingInput = errors.New("both locations are required")

// ErrNoActiveRoute reports an operation that needs a computed route
// before any calculation has succeeded.
var ErrNoActiveRoute = errors.New("no route has been calculated yet")

// Session owns the canonical RouteResult and the active display unit
// for one interactive session. All mutation goes through Calculate and
// ToggleUnit; a failed calculation never disturbs the previous result.
type Session struct {
	mu       sync.Mutex
	geocoder ports.Geocoder
	routes   ports.RouteProvider
	history  ports.HistoryStore
	current  *domain.RouteResult
	unit     domain.Unit
	now      func() time.Time
}

func NewSession(geocoder ports.Geocoder, routes ports.RouteProvider, history ports.HistoryStore) *Session {
	return &Session{
		geocoder: geocoder,
		routes:   routes,
		history:  history,
		unit:     domain.UnitKilometers,
		now:      time.Now,
	}
}

// Calculate resolves both locations, fetches a route and, on success,
// atomically replaces the canonical RouteResult and appends a history
// record. The display unit resets to kilometers for every new attempt.
//
// Failures short-circuit: a blank input returns ErrMissingInput before
// any remote call, an unresolvable place returns an error satisfying
// errors.Is(err, ports.ErrNotFound), and a routing failure returns a
// *ports.RoutingError. A history write failure is logged and counted
// but does not fail the otherwise-successful calculation.
func (s *Session) Calculate(
	ctx context.Context,
	loc1, loc2 string,
	mode domain.TravelMode,
	fuel domain.FuelInputs,
) (_ *domain.RouteResult, err error) {
	defer obs.Time(ctx, "session.calculate")(&err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if isBlank(loc1) || isBlank(loc2) {
		metrics.CalculationsTotal.WithLabelValues("missing_input").Inc()
		return nil, ErrMissingInput
	}

	if err := fuel.Validate(); err != nil {
		metrics.CalculationsTotal.WithLabelValues("missing_input").Inc()
		return nil, fmt.Errorf("calculate: %w", err)
	}

	s.unit = domain.UnitKilometers

	origin, err := s.geocoder.Resolve(ctx, loc1)
	if err != nil {
		metrics.CalculationsTotal.WithLabelValues("geocode_failed").Inc()
		return nil, fmt.Errorf("resolve origin: %w", err)
	}

	destination, err := s.geocoder.Resolve(ctx, loc2)
	if err != nil {
		metrics.CalculationsTotal.WithLabelValues("geocode_failed").Inc()
		return nil, fmt.Errorf("resolve destination: %w", err)
	}

	route, err := s.routes.FetchRoute(ctx, origin, destination, mode)
	if err != nil {
		metrics.CalculationsTotal.WithLabelValues("routing_failed").Inc()
		return nil, fmt.Errorf("fetch route: %w", err)
	}

	s.current = route
	metrics.CalculationsTotal.WithLabelValues("success").Inc()

	// Best effort: the calculation stands even when the append fails.
	record := NewHistoryRecord(route, fuel, s.now())
	if appendErr := s.history.Append(record); appendErr != nil {
		metrics.HistoryAppendsTotal.WithLabelValues("error").Inc()
		log.Printf("op=session.calculate history_append_failed err=%v", appendErr)
	} else {
		metrics.HistoryAppendsTotal.WithLabelValues("ok").Inc()
	}

	return route, nil
}

// ToggleUnit flips the display unit between kilometers and miles.
// It fails with ErrNoActiveRoute until a calculation has succeeded,
// and never touches the route or the history log.
func (s *Session) ToggleUnit() (domain.Unit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return "", ErrNoActiveRoute
	}

	s.unit = s.unit.Toggle()
	return s.unit, nil
}

// Current returns the canonical route and the active display unit.
func (s *Session) Current() (*domain.RouteResult, domain.Unit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, "", ErrNoActiveRoute
	}
	return s.current, s.unit, nil
}

// MapsURL builds the external map viewer URL for the canonical route.
func (s *Session) MapsURL() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return "", ErrNoActiveRoute
	}

	r := s.current
	return fmt.Sprintf(
		"https://www.google.com/maps/dir/%s,%s/%s,%s/?travelmode=%s",
		formatCoord(r.Origin.Lat), formatCoord(r.Origin.Lon),
		formatCoord(r.Destination.Lat), formatCoord(r.Destination.Lon),
		r.Mode.MapsTravelMode(),
	), nil
}

// History returns all persisted records, most recent first.
func (s *Session) History() ([]domain.HistoryRecord, error) {
	records, err := s.history.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	// File order is chronological; display order is the reverse.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// NewHistoryRecord builds the persisted row for a successful route.
// Distance carries 3 decimals, fuel figures 2; fuel fields are empty
// strings when the corresponding input was not supplied.
func NewHistoryRecord(route *domain.RouteResult, fuel domain.FuelInputs, at time.Time) domain.HistoryRecord {
	record := domain.HistoryRecord{
		Timestamp:   at.UTC().Format(time.RFC3339),
		Origin:      route.Origin.Label,
		Destination: route.Destination.Label,
		Vehicle:     string(route.Mode),
		DistanceKm:  strconv.FormatFloat(route.DistanceMeters/1000, 'f', 3, 64),
		DurationHMS: FormatDurationHMS(route.DurationMillis),
	}

	m := Derive(route, domain.UnitKilometers, fuel)
	if fuel.EfficiencyKmPerLiter != nil {
		record.FuelEfficiency = strconv.FormatFloat(*fuel.EfficiencyKmPerLiter, 'f', 2, 64)
	}
	if fuel.PricePerLiter != nil {
		record.FuelPricePerL = strconv.FormatFloat(*fuel.PricePerLiter, 'f', 2, 64)
	}
	if m.FuelNeededLiters != nil {
		record.FuelNeededLiters = strconv.FormatFloat(*m.FuelNeededLiters, 'f', 2, 64)
	}
	if m.FuelCost != nil {
		record.FuelCost = strconv.FormatFloat(*m.FuelCost, 'f', 2, 64)
	}

	return record
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

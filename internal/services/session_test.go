package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

type stubGeocoder struct {
	points map[string]domain.GeoPoint
	calls  int
}

func (g *stubGeocoder) Resolve(ctx context.Context, query string) (domain.GeoPoint, error) {
	g.calls++
	if p, ok := g.points[query]; ok {
		return p, nil
	}
	return domain.GeoPoint{}, &ports.NotFoundError{Query: query, Cause: ports.CauseNoResults}
}

type stubRouteProvider struct {
	route *domain.RouteResult
	err   error
	calls int
}

func (p *stubRouteProvider) FetchRoute(ctx context.Context, origin, destination domain.GeoPoint, mode domain.TravelMode) (*domain.RouteResult, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	r := *p.route
	r.Origin = origin
	r.Destination = destination
	r.Mode = mode
	return &r, nil
}

type memHistory struct {
	records   []domain.HistoryRecord
	appendErr error
}

func (h *memHistory) Append(record domain.HistoryRecord) error {
	if h.appendErr != nil {
		return h.appendErr
	}
	h.records = append(h.records, record)
	return nil
}

func (h *memHistory) LoadAll() ([]domain.HistoryRecord, error) {
	out := make([]domain.HistoryRecord, len(h.records))
	copy(out, h.records)
	return out, nil
}

func newTestSession() (*Session, *stubGeocoder, *stubRouteProvider, *memHistory) {
	geocoder := &stubGeocoder{points: map[string]domain.GeoPoint{
		"Berlin": {Lat: 52.52, Lon: 13.405, Label: "Berlin, Germany"},
		"Munich": {Lat: 48.137, Lon: 11.575, Label: "Munich, Bavaria, Germany"},
	}}
	provider := &stubRouteProvider{route: testRoute()}
	store := &memHistory{}

	s := NewSession(geocoder, provider, store)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	n := 0
	s.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	}
	return s, geocoder, provider, store
}

func TestCalculateMissingInput(t *testing.T) {
	s, geocoder, provider, store := newTestSession()

	for _, pair := range [][2]string{{"", "Munich"}, {"Berlin", ""}, {"   ", "Munich"}} {
		_, err := s.Calculate(context.Background(), pair[0], pair[1], domain.ModeCar, domain.FuelInputs{})
		if !errors.Is(err, ErrMissingInput) {
			t.Fatalf("Calculate(%q, %q) err = %v, want ErrMissingInput", pair[0], pair[1], err)
		}
	}

	if geocoder.calls != 0 || provider.calls != 0 {
		t.Fatalf("remote calls issued for blank input: geocode=%d route=%d", geocoder.calls, provider.calls)
	}
	if len(store.records) != 0 {
		t.Fatalf("history written for failed input: %d records", len(store.records))
	}
}

func TestCalculateGeocodeFailedLeavesState(t *testing.T) {
	s, _, provider, store := newTestSession()

	first, err := s.Calculate(context.Background(), "Berlin", "Munich", domain.ModeCar, domain.FuelInputs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = s.Calculate(context.Background(), "Berlin", "Nowhereville", domain.ModeCar, domain.FuelInputs{})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	if provider.calls != 1 {
		t.Fatalf("route fetched despite geocode failure: %d calls", provider.calls)
	}

	current, _, err := s.Current()
	if err != nil {
		t.Fatalf("prior route lost: %v", err)
	}
	if current != first {
		t.Fatal("canonical route replaced by failed calculation")
	}
	if len(store.records) != 1 {
		t.Fatalf("history length = %d, want 1", len(store.records))
	}
}

func TestCalculateRoutingFailedLeavesState(t *testing.T) {
	s, _, provider, store := newTestSession()

	if _, err := s.Calculate(context.Background(), "Berlin", "Munich", domain.ModeCar, domain.FuelInputs{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	provider.err = &ports.RoutingError{Message: "Point 0 is out of bounds"}
	_, err := s.Calculate(context.Background(), "Berlin", "Munich", domain.ModeBike, domain.FuelInputs{})

	var routingErr *ports.RoutingError
	if !errors.As(err, &routingErr) {
		t.Fatalf("err = %v, want *RoutingError", err)
	}
	if routingErr.Message != "Point 0 is out of bounds" {
		t.Fatalf("message = %q", routingErr.Message)
	}

	if _, _, err := s.Current(); err != nil {
		t.Fatalf("prior route lost: %v", err)
	}
	if len(store.records) != 1 {
		t.Fatalf("history length = %d, want 1", len(store.records))
	}
}

func TestCalculateAppendsHistoryInOrder(t *testing.T) {
	s, _, _, store := newTestSession()

	for i := 0; i < 3; i++ {
		if _, err := s.Calculate(context.Background(), "Berlin", "Munich", domain.ModeCar, domain.FuelInputs{}); err != nil {
			t.Fatalf("calculation %d: %v", i, err)
		}
	}

	if len(store.records) != 3 {
		t.Fatalf("history length = %d, want 3", len(store.records))
	}

	listed, err := s.History()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("listed length = %d, want 3", len(listed))
	}

	// Display order is the reverse of file order.
	for i := range listed {
		if listed[i].Timestamp != store.records[2-i].Timestamp {
			t.Fatalf("listed[%d] = %q, want %q", i, listed[i].Timestamp, store.records[2-i].Timestamp)
		}
	}
}

func TestCalculateResetsUnit(t *testing.T) {
	s, _, _, _ := newTestSession()

	if _, err := s.Calculate(context.Background(), "Berlin", "Munich", domain.ModeCar, domain.FuelInputs{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.ToggleUnit(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.Calculate(context.Background(), "Berlin", "Munich", domain.ModeCar, domain.FuelInputs{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, unit, err := s.Current()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unit != domain.UnitKilometers {
		t.Fatalf("unit = %q, want km after a new calculation", unit)
	}
}

func TestToggleBeforeAnySuccess(t *testing.T) {
	s, _, _, _ := newTestSession()

	if _, err := s.ToggleUnit(); !errors.Is(err, ErrNoActiveRoute) {
		t.Fatalf("ToggleUnit err = %v, want ErrNoActiveRoute", err)
	}
	if _, _, err := s.Current(); !errors.Is(err, ErrNoActiveRoute) {
		t.Fatalf("Current err = %v, want ErrNoActiveRoute", err)
	}
	if _, err := s.MapsURL(); !errors.Is(err, ErrNoActiveRoute) {
		t.Fatalf("MapsURL err = %v, want ErrNoActiveRoute", err)
	}
}

func TestToggleRoundTrip(t *testing.T) {
	s, _, _, _ := newTestSession()
	formatter := PlainFormatter{}

	route, err := s.Calculate(context.Background(), "Berlin", "Munich", domain.ModeCar, domain.FuelInputs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, unit, _ := s.Current()
	before := formatter.Summary(route, Derive(route, unit, domain.FuelInputs{}))

	if u, _ := s.ToggleUnit(); u != domain.UnitMiles {
		t.Fatalf("first toggle = %q, want mi", u)
	}
	_, unit, _ = s.Current()
	miText := formatter.Summary(route, Derive(route, unit, domain.FuelInputs{}))
	if miText == before {
		t.Fatal("mile rendering did not change the summary")
	}

	if u, _ := s.ToggleUnit(); u != domain.UnitKilometers {
		t.Fatalf("second toggle = %q, want km", u)
	}
	_, unit, _ = s.Current()
	after := formatter.Summary(route, Derive(route, unit, domain.FuelInputs{}))
	if after != before {
		t.Fatalf("round trip changed rendering:\nbefore: %s\nafter: %s", before, after)
	}
}

func TestHistoryAppendFailureDoesNotFailCalculation(t *testing.T) {
	s, _, _, store := newTestSession()
	store.appendErr = errors.New("disk full")

	route, err := s.Calculate(context.Background(), "Berlin", "Munich", domain.ModeCar, domain.FuelInputs{})
	if err != nil {
		t.Fatalf("calculation failed on history error: %v", err)
	}
	if route == nil {
		t.Fatal("no route returned")
	}
	if _, _, err := s.Current(); err != nil {
		t.Fatalf("canonical route missing: %v", err)
	}
}

func TestMapsURL(t *testing.T) {
	s, _, _, _ := newTestSession()

	if _, err := s.Calculate(context.Background(), "Berlin", "Munich", domain.ModeFoot, domain.FuelInputs{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	url, err := s.MapsURL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "https://www.google.com/maps/dir/52.52,13.405/48.137,11.575/?travelmode=walking"
	if url != want {
		t.Fatalf("url = %q, want %q", url, want)
	}
}

func TestNewHistoryRecordFormatting(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	record := NewHistoryRecord(testRoute(), domain.FuelInputs{
		EfficiencyKmPerLiter: floatPtr(15),
		PricePerLiter:        floatPtr(1.5),
	}, at)

	if record.Timestamp != "2026-03-01T09:30:00Z" {
		t.Fatalf("timestamp = %q", record.Timestamp)
	}
	if record.DistanceKm != "120.000" {
		t.Fatalf("distance = %q, want 120.000", record.DistanceKm)
	}
	if record.DurationHMS != "01:23:45" {
		t.Fatalf("duration = %q, want 01:23:45", record.DurationHMS)
	}
	if record.FuelNeededLiters != "8.00" {
		t.Fatalf("fuel needed = %q, want 8.00", record.FuelNeededLiters)
	}
	if record.FuelCost != "12.00" {
		t.Fatalf("fuel cost = %q, want 12.00", record.FuelCost)
	}

	bare := NewHistoryRecord(testRoute(), domain.FuelInputs{}, at)
	if bare.FuelEfficiency != "" || bare.FuelPricePerL != "" || bare.FuelNeededLiters != "" || bare.FuelCost != "" {
		t.Fatalf("fuel fields should be empty: %+v", bare)
	}
}

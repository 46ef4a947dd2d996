package services

import (
	"math"
	"testing"

	"trip-route-service/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

func testRoute() *domain.RouteResult {
	return &domain.RouteResult{
		Origin:         domain.GeoPoint{Lat: 52.52, Lon: 13.405, Label: "Berlin, Germany"},
		Destination:    domain.GeoPoint{Lat: 48.137, Lon: 11.575, Label: "Munich, Bavaria, Germany"},
		Mode:           domain.ModeCar,
		DistanceMeters: 120000,
		DurationMillis: 5_025_000,
		Steps: []domain.RouteStep{
			{Text: "Head south", DistanceMeters: 250},
			{Text: "Turn left", DistanceMeters: 119750},
		},
	}
}

func TestFormatDurationHMS(t *testing.T) {
	cases := []struct {
		millis int64
		want   string
	}{
		{5_025_000, "01:23:45"},
		{0, "00:00:00"},
		{999, "00:00:00"},
		{60_000, "00:01:00"},
		{90_061_000, "25:01:01"}, // hours are not capped at 24
	}

	for _, tc := range cases {
		if got := FormatDurationHMS(tc.millis); got != tc.want {
			t.Fatalf("FormatDurationHMS(%d) = %q, want %q", tc.millis, got, tc.want)
		}
	}
}

func TestDeriveDistanceConversion(t *testing.T) {
	route := testRoute()

	km := Derive(route, domain.UnitKilometers, domain.FuelInputs{})
	mi := Derive(route, domain.UnitMiles, domain.FuelInputs{})

	if math.Abs(km.Distance-120) > 1e-9 {
		t.Fatalf("km distance = %f, want 120", km.Distance)
	}
	if math.Abs(mi.Distance-120/1.61) > 1e-9 {
		t.Fatalf("mi distance = %f, want %f", mi.Distance, 120/1.61)
	}

	if len(km.Steps) != len(mi.Steps) {
		t.Fatalf("step counts differ: %d vs %d", len(km.Steps), len(mi.Steps))
	}
	for i := range km.Steps {
		want := km.Steps[i].Distance / 1.61
		if math.Abs(mi.Steps[i].Distance-want) > 1e-9 {
			t.Fatalf("step %d mi distance = %f, want %f", i, mi.Steps[i].Distance, want)
		}
	}
}

func TestDeriveFuel(t *testing.T) {
	route := testRoute() // 120 km

	m := Derive(route, domain.UnitKilometers, domain.FuelInputs{
		EfficiencyKmPerLiter: floatPtr(15),
		PricePerLiter:        floatPtr(1.5),
	})

	if m.FuelNeededLiters == nil {
		t.Fatal("fuel needed is absent")
	}
	if math.Abs(*m.FuelNeededLiters-8) > 1e-9 {
		t.Fatalf("fuel needed = %f, want 8", *m.FuelNeededLiters)
	}
	if m.FuelCost == nil {
		t.Fatal("fuel cost is absent")
	}
	if math.Abs(*m.FuelCost-12) > 1e-9 {
		t.Fatalf("fuel cost = %f, want 12", *m.FuelCost)
	}
}

func TestDeriveFuelUsesKilometersUnderMiles(t *testing.T) {
	route := testRoute()

	km := Derive(route, domain.UnitKilometers, domain.FuelInputs{EfficiencyKmPerLiter: floatPtr(15)})
	mi := Derive(route, domain.UnitMiles, domain.FuelInputs{EfficiencyKmPerLiter: floatPtr(15)})

	if *km.FuelNeededLiters != *mi.FuelNeededLiters {
		t.Fatalf("fuel needed differs by unit: %f vs %f", *km.FuelNeededLiters, *mi.FuelNeededLiters)
	}
}

func TestDeriveFuelSuppressed(t *testing.T) {
	route := testRoute()

	// No efficiency: both figures absent, not zero.
	m := Derive(route, domain.UnitKilometers, domain.FuelInputs{PricePerLiter: floatPtr(1.5)})
	if m.FuelNeededLiters != nil {
		t.Fatalf("fuel needed should be absent, got %f", *m.FuelNeededLiters)
	}
	if m.FuelCost != nil {
		t.Fatalf("fuel cost should be absent, got %f", *m.FuelCost)
	}

	// Efficiency without price: needed present, cost absent.
	m = Derive(route, domain.UnitKilometers, domain.FuelInputs{EfficiencyKmPerLiter: floatPtr(15)})
	if m.FuelNeededLiters == nil {
		t.Fatal("fuel needed should be present")
	}
	if m.FuelCost != nil {
		t.Fatalf("fuel cost should be absent, got %f", *m.FuelCost)
	}
}

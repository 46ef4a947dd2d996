package services

import (
	"strings"
	"testing"

	"trip-route-service/internal/domain"
)

func TestPlainFormatterSummary(t *testing.T) {
	route := testRoute()
	m := Derive(route, domain.UnitKilometers, domain.FuelInputs{
		EfficiencyKmPerLiter: floatPtr(15),
		PricePerLiter:        floatPtr(1.5),
	})

	got := PlainFormatter{}.Summary(route, m)

	for _, want := range []string{
		"From: Berlin, Germany",
		"To: Munich, Bavaria, Germany",
		"Mode: Car",
		"Distance: 120.0 km",
		"Duration: 01:23:45",
		"Fuel needed: 8.00 L",
		"Fuel cost: 12.00",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestPlainFormatterSummaryWithoutFuel(t *testing.T) {
	route := testRoute()
	m := Derive(route, domain.UnitMiles, domain.FuelInputs{})

	got := PlainFormatter{}.Summary(route, m)

	if strings.Contains(got, "Fuel") {
		t.Fatalf("summary should have no fuel lines:\n%s", got)
	}
	if !strings.Contains(got, "mi") {
		t.Fatalf("summary missing mile unit:\n%s", got)
	}
}

func TestPlainFormatterDirections(t *testing.T) {
	route := testRoute()
	m := Derive(route, domain.UnitKilometers, domain.FuelInputs{})

	got := PlainFormatter{}.Directions(m)

	if !strings.Contains(got, "Turn-by-turn directions:") {
		t.Fatalf("missing header:\n%s", got)
	}
	if !strings.Contains(got, "- Head south (0.25 km)") {
		t.Fatalf("missing first step:\n%s", got)
	}
	if !strings.Contains(got, "- Turn left (119.75 km)") {
		t.Fatalf("missing second step:\n%s", got)
	}
}

func TestPlainFormatterHistoryTable(t *testing.T) {
	records := []domain.HistoryRecord{
		{
			Timestamp:   "2026-03-01T09:30:00Z",
			Origin:      "Berlin, Germany",
			Destination: "Munich, Bavaria, Germany",
			Vehicle:     "car",
			DistanceKm:  "120.000",
			DurationHMS: "01:23:45",
		},
	}

	got := PlainFormatter{}.HistoryTable(records)

	if !strings.Contains(got, "TIMESTAMP") {
		t.Fatalf("missing header row:\n%s", got)
	}
	if !strings.Contains(got, "Berlin, Germany") || !strings.Contains(got, "120.000") {
		t.Fatalf("missing record fields:\n%s", got)
	}
}

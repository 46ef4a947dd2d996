package services

import (
	"fmt"

	"trip-route-service/internal/domain"
)

// Per-step display figures, converted into the active unit.
type StepMetric struct {
	Text     string
	Distance float64
}

// Display-ready figures derived from one RouteResult.
// DisplayMetrics is a pure projection: deriving it never touches the
// stored route, and identical inputs always produce identical output.
type DisplayMetrics struct {
	Unit             domain.Unit
	Distance         float64
	DurationHMS      string
	Steps            []StepMetric
	FuelNeededLiters *float64
	FuelCost         *float64
}

// Derive computes unit-converted distances, the formatted duration and
// the optional fuel figures for a route.
//
// Fuel needed is distanceKm / efficiency, present only when an
// efficiency > 0 was supplied; fuel cost additionally requires a price.
// Fuel math always runs in kilometers, regardless of the display unit.
func Derive(route *domain.RouteResult, unit domain.Unit, fuel domain.FuelInputs) DisplayMetrics {
	m := DisplayMetrics{
		Unit:        unit,
		Distance:    unit.Convert(route.DistanceMeters),
		DurationHMS: FormatDurationHMS(route.DurationMillis),
	}

	m.Steps = make([]StepMetric, 0, len(route.Steps))
	for _, step := range route.Steps {
		m.Steps = append(m.Steps, StepMetric{
			Text:     step.Text,
			Distance: unit.Convert(step.DistanceMeters),
		})
	}

	if fuel.EfficiencyKmPerLiter != nil && *fuel.EfficiencyKmPerLiter > 0 {
		distanceKm := route.DistanceMeters / 1000
		needed := distanceKm / *fuel.EfficiencyKmPerLiter
		m.FuelNeededLiters = &needed

		if fuel.PricePerLiter != nil {
			cost := needed * *fuel.PricePerLiter
			m.FuelCost = &cost
		}
	}

	return m
}

// FormatDurationHMS renders milliseconds as zero-padded HH:MM:SS.
// Hours are unbounded.
func FormatDurationHMS(millis int64) string {
	totalSeconds := millis / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

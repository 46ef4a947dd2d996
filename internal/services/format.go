package services

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"trip-route-service/internal/domain"
)

// Formatter is an injectable rendering capability. The pipeline only
// ever needs PlainFormatter; richer implementations (colorized or
// tabular console output) can be swapped in without touching the core.
type Formatter interface {
	// Summary renders the route header block: endpoints, mode,
	// distance in the active unit, duration and optional fuel figures.
	Summary(route *domain.RouteResult, m DisplayMetrics) string
	// Directions renders the turn-by-turn step list.
	Directions(m DisplayMetrics) string
	// HistoryTable renders persisted records in the given order.
	HistoryTable(records []domain.HistoryRecord) string
}

// PlainFormatter produces unadorned text output.
type PlainFormatter struct{}

func (PlainFormatter) Summary(route *domain.RouteResult, m DisplayMetrics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\n", route.Origin.Label)
	fmt.Fprintf(&b, "To: %s\n\n", route.Destination.Label)
	fmt.Fprintf(&b, "Mode: %s\n", capitalize(string(route.Mode)))
	fmt.Fprintf(&b, "Distance: %.1f %s\n", m.Distance, m.Unit)
	fmt.Fprintf(&b, "Duration: %s", m.DurationHMS)

	if m.FuelNeededLiters != nil {
		fmt.Fprintf(&b, "\nFuel needed: %.2f L", *m.FuelNeededLiters)
	}
	if m.FuelCost != nil {
		fmt.Fprintf(&b, "\nFuel cost: %.2f", *m.FuelCost)
	}

	return b.String()
}

func (PlainFormatter) Directions(m DisplayMetrics) string {
	var b strings.Builder

	b.WriteString("Turn-by-turn directions:\n")
	b.WriteString("=====================================\n")
	for _, step := range m.Steps {
		fmt.Fprintf(&b, "- %s (%.2f %s)\n", step.Text, step.Distance, m.Unit)
	}

	return b.String()
}

func (PlainFormatter) HistoryTable(records []domain.HistoryRecord) string {
	var b strings.Builder

	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tFROM\tTO\tMODE\tDISTANCE (KM)\tDURATION\tFUEL (L)\tCOST")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Timestamp, r.Origin, r.Destination, r.Vehicle,
			r.DistanceKm, r.DurationHMS, r.FuelNeededLiters, r.FuelCost,
		)
	}
	w.Flush()

	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

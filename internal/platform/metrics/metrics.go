// Package metrics exposes Prometheus instrumentation for the route
// pipeline and its upstream calls.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Upstream GraphHopper calls, labelled by operation (geocode, route)
	// and outcome (ok, no_results, status, transport, decode).
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triproute_upstream_requests_total",
			Help: "Total number of GraphHopper requests",
		},
		[]string{"operation", "outcome"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "triproute_upstream_request_duration_seconds",
			Help:    "GraphHopper request duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
		},
		[]string{"operation"},
	)

	// Pipeline calculations, labelled by outcome
	// (success, missing_input, geocode_failed, routing_failed).
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triproute_calculations_total",
			Help: "Total number of route calculations",
		},
		[]string{"outcome"},
	)

	// Geocode cache effectiveness, labelled by tier (memory, sqlite, postgres, redis).
	GeocodeCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triproute_geocode_cache_hits_total",
			Help: "Total number of geocode cache hits",
		},
		[]string{"tier"},
	)

	GeocodeCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triproute_geocode_cache_misses_total",
			Help: "Total number of geocode cache misses",
		},
		[]string{"tier"},
	)

	// History appends, labelled by outcome (ok, error). Append failures
	// do not fail the calculation, so they are visible only here and in logs.
	HistoryAppendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triproute_history_appends_total",
			Help: "Total number of history append attempts",
		},
		[]string{"outcome"},
	)
)

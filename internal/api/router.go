package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trip-route-service/internal/api/handlers"
	"trip-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(session *services.Session, formatter services.Formatter) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Session: session, Formatter: formatter}
	historyHandler := &handlers.HistoryHandler{Session: session, Formatter: formatter}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes", routeHandler.Calculate)
	mux.HandleFunc("/routes/current", routeHandler.Current)
	mux.HandleFunc("/routes/current/maps-url", routeHandler.MapsURL)
	mux.HandleFunc("/routes/unit/toggle", routeHandler.ToggleUnit)
	mux.HandleFunc("/history", historyHandler.List)
	mux.Handle("/metrics", promhttp.Handler())

	return loggingMiddleware(mux)
}

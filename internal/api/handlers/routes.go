package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
	"trip-route-service/internal/services"
)

type RouteHandler struct {
	Session   *services.Session
	Formatter services.Formatter
}

// Calculate runs the full geocode+route pipeline and renders the result
// under the (freshly reset) kilometer unit.
func (h *RouteHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	mode := domain.ModeCar
	if req.Mode != "" {
		var err error
		mode, err = domain.ParseTravelMode(req.Mode)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}

	fuel := domain.FuelInputs{
		EfficiencyKmPerLiter: req.FuelEfficiencyKmPerL,
		PricePerLiter:        req.FuelPricePerL,
	}

	route, err := h.Session.Calculate(r.Context(), req.Origin, req.Destination, mode, fuel)
	if err != nil {
		h.writeCalculateError(w, r, err)
		return
	}

	_, unit, _ := h.Session.Current()
	writeJSON(w, r, http.StatusOK, h.routeResponse(route, unit, fuel))
}

// Current re-renders the canonical route under the active unit.
// Fuel inputs are read fresh from query parameters, never stored.
func (h *RouteHandler) Current(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	fuel, err := fuelFromQuery(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	route, unit, err := h.Session.Current()
	if err != nil {
		writeError(w, r, http.StatusNotFound, "no route has been calculated yet")
		return
	}

	writeJSON(w, r, http.StatusOK, h.routeResponse(route, unit, fuel))
}

// ToggleUnit flips the km/mi display unit without re-fetching anything.
func (h *RouteHandler) ToggleUnit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	unit, err := h.Session.ToggleUnit()
	if err != nil {
		writeError(w, r, http.StatusConflict, "no route has been calculated yet")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToggleUnitResponse{Unit: string(unit)})
}

// MapsURL returns the external map viewer link for the canonical route.
func (h *RouteHandler) MapsURL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	url, err := h.Session.MapsURL()
	if err != nil {
		writeError(w, r, http.StatusNotFound, "no route has been calculated yet")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MapsURLResponse{URL: url})
}

func (h *RouteHandler) routeResponse(route *domain.RouteResult, unit domain.Unit, fuel domain.FuelInputs) dto.RouteResponse {
	m := services.Derive(route, unit, fuel)

	steps := make([]dto.StepResponse, 0, len(m.Steps))
	for _, s := range m.Steps {
		steps = append(steps, dto.StepResponse{Text: s.Text, Distance: s.Distance})
	}

	return dto.RouteResponse{
		Origin:           route.Origin.Label,
		Destination:      route.Destination.Label,
		Mode:             string(route.Mode),
		Unit:             string(m.Unit),
		Distance:         m.Distance,
		DurationHMS:      m.DurationHMS,
		FuelNeededLiters: m.FuelNeededLiters,
		FuelCost:         m.FuelCost,
		Steps:            steps,
		Summary:          h.Formatter.Summary(route, m),
		Directions:       h.Formatter.Directions(m),
	}
}

// writeCalculateError maps pipeline failures to status codes with a
// message naming the stage that failed.
func (h *RouteHandler) writeCalculateError(w http.ResponseWriter, r *http.Request, err error) {
	var routingErr *ports.RoutingError

	switch {
	case errors.Is(err, services.ErrMissingInput):
		writeError(w, r, http.StatusBadRequest, "please enter both locations")
	case errors.Is(err, ports.ErrNotFound):
		writeError(w, r, http.StatusUnprocessableEntity, "failed to geocode one or both locations")
	case errors.As(err, &routingErr):
		writeError(w, r, http.StatusBadGateway, "routing failed: "+routingErr.Message)
	default:
		log.Printf("calculate failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func fuelFromQuery(r *http.Request) (domain.FuelInputs, error) {
	var fuel domain.FuelInputs

	q := r.URL.Query()
	if v := q.Get("fuel_efficiency_km_per_l"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.FuelInputs{}, errors.New("fuel_efficiency_km_per_l must be a number")
		}
		fuel.EfficiencyKmPerLiter = &f
	}
	if v := q.Get("fuel_price_per_l"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.FuelInputs{}, errors.New("fuel_price_per_l must be a number")
		}
		fuel.PricePerLiter = &f
	}

	if err := fuel.Validate(); err != nil {
		return domain.FuelInputs{}, err
	}
	return fuel, nil
}

package handlers

import (
	"log"
	"net/http"

	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/services"
)

type HistoryHandler struct {
	Session   *services.Session
	Formatter services.Formatter
}

// List returns the persisted calculation log, most recent first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	records, err := h.Session.History()
	if err != nil {
		log.Printf("load history failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "failed to read history")
		return
	}

	res := dto.HistoryResponse{
		Records: make([]dto.HistoryRecordResponse, 0, len(records)),
		Table:   h.Formatter.HistoryTable(records),
	}
	for _, rec := range records {
		res.Records = append(res.Records, dto.HistoryRecordResponse{
			Timestamp:        rec.Timestamp,
			Origin:           rec.Origin,
			Destination:      rec.Destination,
			Vehicle:          rec.Vehicle,
			DistanceKm:       rec.DistanceKm,
			DurationHMS:      rec.DurationHMS,
			FuelEfficiency:   rec.FuelEfficiency,
			FuelPricePerL:    rec.FuelPricePerL,
			FuelNeededLiters: rec.FuelNeededLiters,
			FuelCost:         rec.FuelCost,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

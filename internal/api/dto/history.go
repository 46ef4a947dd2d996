package dto

type HistoryRecordResponse struct {
	Timestamp        string `json:"timestamp"`
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	Vehicle          string `json:"vehicle"`
	DistanceKm       string `json:"distance_km"`
	DurationHMS      string `json:"duration_hms"`
	FuelEfficiency   string `json:"fuel_eff_l,omitempty"`
	FuelPricePerL    string `json:"fuel_price_per_l,omitempty"`
	FuelNeededLiters string `json:"fuel_needed_l,omitempty"`
	FuelCost         string `json:"fuel_cost,omitempty"`
}

type HistoryResponse struct {
	// Most recent first.
	Records []HistoryRecordResponse `json:"records"`
	Table   string                  `json:"table"`
}

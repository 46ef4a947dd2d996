package dto

type RouteRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Mode        string `json:"mode"`
	// Optional fuel inputs; omitting either suppresses fuel figures.
	FuelEfficiencyKmPerL *float64 `json:"fuel_efficiency_km_per_l"`
	FuelPricePerL        *float64 `json:"fuel_price_per_l"`
}

type StepResponse struct {
	Text     string  `json:"text"`
	Distance float64 `json:"distance"`
}

type RouteResponse struct {
	Origin           string         `json:"origin"`
	Destination      string         `json:"destination"`
	Mode             string         `json:"mode"`
	Unit             string         `json:"unit"`
	Distance         float64        `json:"distance"`
	DurationHMS      string         `json:"duration_hms"`
	FuelNeededLiters *float64       `json:"fuel_needed_liters,omitempty"`
	FuelCost         *float64       `json:"fuel_cost,omitempty"`
	Steps            []StepResponse `json:"steps"`
	Summary          string         `json:"summary"`
	Directions       string         `json:"directions"`
}

type ToggleUnitResponse struct {
	Unit string `json:"unit"`
}

type MapsURLResponse struct {
	URL string `json:"url"`
}

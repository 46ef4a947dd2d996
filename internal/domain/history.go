package domain

// One persisted line summarizing a past successful calculation.
// All fields are strings: the history file is a flat delimited table
// and numeric fields carry a fixed decimal precision. Fuel fields are
// empty strings when the user supplied no fuel inputs.
type HistoryRecord struct {
	Timestamp        string // ISO-8601
	Origin           string
	Destination      string
	Vehicle          string
	DistanceKm       string // 3 decimals
	DurationHMS      string // HH:MM:SS
	FuelEfficiency   string
	FuelPricePerL    string
	FuelNeededLiters string
	FuelCost         string
}

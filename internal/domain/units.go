package domain

// Active distance-display unit. Rendering only; stored route data is
// always metric.
type Unit string

const (
	UnitKilometers Unit = "km"
	UnitMiles      Unit = "mi"
)

// KmPerMile is the conversion divisor the original service used.
// It is intentionally not the precise factor; output parity depends on it.
const KmPerMile = 1.61

// Toggle flips km <-> mi.
func (u Unit) Toggle() Unit {
	if u == UnitKilometers {
		return UnitMiles
	}
	return UnitKilometers
}

// Convert turns meters into the unit's display distance.
func (u Unit) Convert(meters float64) float64 {
	km := meters / 1000
	if u == UnitMiles {
		return km / KmPerMile
	}
	return km
}

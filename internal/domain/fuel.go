package domain

import "errors"

// Optional fuel inputs supplied by the user at render time.
// They are not stored with a RouteResult; absence of either field
// suppresses the fuel-derived figures.
type FuelInputs struct {
	EfficiencyKmPerLiter *float64
	PricePerLiter        *float64
}

// Validate rejects nonsensical fuel figures. Nil fields are fine.
func (f FuelInputs) Validate() error {
	if f.EfficiencyKmPerLiter != nil && *f.EfficiencyKmPerLiter <= 0 {
		return errors.New("fuel efficiency must be greater than zero")
	}
	if f.PricePerLiter != nil && *f.PricePerLiter < 0 {
		return errors.New("fuel price must not be negative")
	}
	return nil
}

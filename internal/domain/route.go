package domain

import "fmt"

// Travel mode accepted by the routing service.
type TravelMode string

const (
	ModeCar  TravelMode = "car"
	ModeBike TravelMode = "bike"
	ModeFoot TravelMode = "foot"
)

// ParseTravelMode validates a user-supplied mode string.
func ParseTravelMode(s string) (TravelMode, error) {
	switch TravelMode(s) {
	case ModeCar, ModeBike, ModeFoot:
		return TravelMode(s), nil
	}
	return "", fmt.Errorf("unknown travel mode %q (want car, bike or foot)", s)
}

// MapsTravelMode returns the Google Maps travelmode query value for the mode.
func (m TravelMode) MapsTravelMode() string {
	switch m {
	case ModeBike:
		return "bicycling"
	case ModeFoot:
		return "walking"
	default:
		return "driving"
	}
}

// One instruction of a route, in navigation order.
type RouteStep struct {
	Text           string
	DistanceMeters float64
}

// Represents a single successfully computed route.
// A RouteResult is created only by a fully successful geocode+route cycle
// and is never mutated in place; a new calculation replaces it wholesale.
type RouteResult struct {
	Origin         GeoPoint
	Destination    GeoPoint
	Mode           TravelMode
	DistanceMeters float64
	DurationMillis int64
	Steps          []RouteStep
}

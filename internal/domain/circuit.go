package domain

// CircuitLeg is one stop of the cached one-way circuit together with the
// drive time to the stop that follows it. The final leg carries zero: the
// circuit ends there.
type CircuitLeg struct {
	PlaceID             string `json:"id"`
	TravelToNextMinutes int    `json:"travel_to_next_min"`
}

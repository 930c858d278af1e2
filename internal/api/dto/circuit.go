package dto

import "itinerary-service/internal/domain"

type CircuitLegResponse struct {
	ID                  string `json:"id"`
	TravelToNextMinutes int    `json:"travel_to_next_min"`
}

type CircuitResponse struct {
	Circuit []CircuitLegResponse `json:"circuit"`
	Count   int                  `json:"count"`
}

func FromCircuit(legs []domain.CircuitLeg) CircuitResponse {
	out := make([]CircuitLegResponse, 0, len(legs))
	for _, leg := range legs {
		out = append(out, CircuitLegResponse{
			ID:                  leg.PlaceID,
			TravelToNextMinutes: leg.TravelToNextMinutes,
		})
	}
	return CircuitResponse{Circuit: out, Count: len(out)}
}

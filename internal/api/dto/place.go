package dto

import "itinerary-service/internal/domain"

type PlaceResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Zone              string  `json:"cluster_zone"`
	NearestZone       string  `json:"nearest_cluster,omitempty"`
	Lat               float64 `json:"lat"`
	Lng               float64 `json:"lng"`
	Difficulty        string  `json:"difficulty"`
	AvgVisitMinutes   int     `json:"avg_time_spent_minutes"`
	Rating            float64 `json:"rating"`
	ReviewCount       int     `json:"review_count"`
	ItineraryEligible bool    `json:"itinerary_eligible"`
}

type ListPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
}

func FromPlaces(places []*domain.Place) []PlaceResponse {
	out := make([]PlaceResponse, 0, len(places))
	for _, p := range places {
		out = append(out, PlaceResponse{
			ID:                p.ID,
			Name:              p.Name,
			Zone:              p.Zone,
			NearestZone:       p.NearestZone,
			Lat:               p.Coords.Lat,
			Lng:               p.Coords.Lng,
			Difficulty:        string(p.Difficulty),
			AvgVisitMinutes:   p.AvgVisitMinutes,
			Rating:            p.Rating,
			ReviewCount:       p.ReviewCount,
			ItineraryEligible: p.ItineraryEligible,
		})
	}
	return out
}

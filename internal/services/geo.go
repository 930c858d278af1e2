package services

import (
	"math"

	"itinerary-service/internal/domain"
)

const earthRadiusKm = 6371

// haversineKm returns the great-circle distance between two points in km.
func haversineKm(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// estimateDriveMinutes approximates drive time when the route oracle cannot
// answer: roughly 3 minutes per km on hill roads, never below 5.
func estimateDriveMinutes(a, b domain.Coordinates) int {
	est := int(haversineKm(a, b) * 3)
	if est < 5 {
		est = 5
	}
	return est
}

// minutesFromSeconds rounds an oracle leg duration to whole minutes.
func minutesFromSeconds(seconds int) int {
	return int(math.Round(float64(seconds) / 60))
}

package ports

import (
	"context"
	"itinerary-service/internal/domain"
)

// Port: a boundary for retrieving Place entities from the place store.
// The engine only reads places; the store is owned externally.
type PlaceRepository interface {
	// Retrieve all places available for scheduling.
	ListPlaces(ctx context.Context) ([]*domain.Place, error)
}

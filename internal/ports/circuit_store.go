package ports

import "itinerary-service/internal/domain"

// CircuitStore persists the cached one-way circuit ordering. It is the only
// state the engine treats as authoritative between runs.
type CircuitStore interface {
	// Load returns the cached circuit, or (nil, nil) when none has been
	// written yet.
	Load() ([]domain.CircuitLeg, error)

	// Save replaces the cached circuit. Implementations must never leave a
	// half-written cache visible to readers.
	Save(legs []domain.CircuitLeg) error
}

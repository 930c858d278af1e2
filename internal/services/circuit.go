package services

import (
	"context"
	"log"

	"itinerary-service/internal/domain"
)

// defaultCircuit is the built-in circuit ordering used until a rebuilt
// cache has been persisted.
var defaultCircuit = []domain.CircuitLeg{
	{PlaceID: "green-valley-viewpoint-kodaikanal", TravelToNextMinutes: 5},
	{PlaceID: "guna-cave-kodaikanal", TravelToNextMinutes: 1},
	{PlaceID: "pillar-rocks-road-kodaikanal", TravelToNextMinutes: 4},
	{PlaceID: "pine-forest-kodaikanal", TravelToNextMinutes: 3},
	{PlaceID: "moir-point-kodaikanal", TravelToNextMinutes: 0},
}

// filterCircuit keeps only the selected stops of the cached circuit,
// preserving their relative order. Travel minutes of skipped stops are
// folded into the next kept stop; the final kept stop always carries zero.
func filterCircuit(circuit []domain.CircuitLeg, selected map[string]struct{}) []domain.CircuitLeg {
	kept := make([]domain.CircuitLeg, 0, len(selected))
	carried := 0
	for _, leg := range circuit {
		if _, ok := selected[leg.PlaceID]; ok {
			kept = append(kept, domain.CircuitLeg{
				PlaceID:             leg.PlaceID,
				TravelToNextMinutes: carried + leg.TravelToNextMinutes,
			})
			carried = 0
		} else {
			carried += leg.TravelToNextMinutes
		}
	}
	if len(kept) > 0 {
		kept[len(kept)-1].TravelToNextMinutes = 0
	}
	return kept
}

// loadCircuit reads the cached circuit, falling back to the built-in
// default when the cache is missing or unreadable.
func (e *Engine) loadCircuit() []domain.CircuitLeg {
	legs, err := e.circuit.Load()
	if err != nil {
		log.Printf("circuit cache read failed, using default: %v", err)
		return defaultCircuit
	}
	if len(legs) == 0 {
		return defaultCircuit
	}
	return legs
}

// Circuit returns the current authoritative circuit ordering.
func (e *Engine) Circuit() []domain.CircuitLeg {
	return e.loadCircuit()
}

// RebuildCircuit re-optimizes the circuit ordering through the route oracle
// and persists the result. Any failure leaves the previous cache in place
// and returns it: a rebuild must never corrupt the circuit. Concurrent
// rebuilds are serialized; ordinary builds read the cache lock-free.
func (e *Engine) RebuildCircuit(ctx context.Context) ([]domain.CircuitLeg, error) {
	e.rebuildMu.Lock()
	defer e.rebuildMu.Unlock()

	current := e.loadCircuit()

	all, err := e.places.ListPlaces(ctx)
	if err != nil {
		log.Printf("circuit rebuild skipped, list places failed: %v", err)
		return current, nil
	}

	var anchor *domain.Place
	var circuitPlaces []*domain.Place
	for _, p := range all {
		if p.ID == e.cfg.CircuitAnchorID {
			anchor = p
		}
		if p.Zone == domain.ZoneForestCircuit {
			circuitPlaces = append(circuitPlaces, p)
		}
	}

	if len(circuitPlaces) < 2 {
		log.Printf("circuit rebuild skipped, only %d circuit places", len(circuitPlaces))
		return current, nil
	}
	if anchor == nil {
		log.Printf("circuit rebuild skipped, anchor %q not found", e.cfg.CircuitAnchorID)
		return current, nil
	}
	if e.oracle == nil {
		log.Println("circuit rebuild skipped, no route oracle configured")
		return current, nil
	}

	waypoints := make([]domain.Coordinates, len(circuitPlaces))
	for i, p := range circuitPlaces {
		waypoints[i] = p.Coords
	}

	opt, err := e.oracle.OptimizeRoundTrip(ctx, anchor.Coords, waypoints)
	if err != nil {
		log.Printf("circuit rebuild degraded, keeping previous cache: %v", err)
		return current, nil
	}

	// Legs [0] and [len-1] run to and from the anchor; the circuit itself
	// spans only the waypoint-to-waypoint legs.
	rebuilt := make([]domain.CircuitLeg, 0, len(opt.WaypointOrder))
	for i, wpIdx := range opt.WaypointOrder {
		if wpIdx < 0 || wpIdx >= len(circuitPlaces) {
			log.Printf("circuit rebuild degraded, waypoint index %d out of range", wpIdx)
			return current, nil
		}
		travel := 0
		if i+1 < len(opt.Legs)-1 {
			travel = minutesFromSeconds(opt.Legs[i+1].DurationSeconds)
		}
		rebuilt = append(rebuilt, domain.CircuitLeg{
			PlaceID:             circuitPlaces[wpIdx].ID,
			TravelToNextMinutes: travel,
		})
	}
	if len(rebuilt) > 0 {
		rebuilt[len(rebuilt)-1].TravelToNextMinutes = 0
	}

	if err := e.circuit.Save(rebuilt); err != nil {
		log.Printf("circuit rebuild persist failed, keeping previous cache: %v", err)
		return current, nil
	}
	return rebuilt, nil
}

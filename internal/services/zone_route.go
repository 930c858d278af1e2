package services

import (
	"context"
	"log"

	"itinerary-service/internal/domain"
)

// unrankedPopularity sorts places without a popularity rank last.
const unrankedPopularity = 999

// routedStop pairs a place with the drive time to the stop that follows it.
type routedStop struct {
	Place               *domain.Place
	TravelToNextMinutes int
}

// findAnchor picks the round-trip anchor for a standard zone: the
// Hard-difficulty place with the best popularity rank when one exists,
// otherwise the best-ranked place overall. Ties keep the earliest place.
func findAnchor(places []*domain.Place) *domain.Place {
	var best *domain.Place
	for _, p := range places {
		if p.Difficulty != domain.DifficultyHard {
			continue
		}
		if best == nil || popularityOf(p) < popularityOf(best) {
			best = p
		}
	}
	if best != nil {
		return best
	}
	for _, p := range places {
		if best == nil || popularityOf(p) < popularityOf(best) {
			best = p
		}
	}
	return best
}

func popularityOf(p *domain.Place) int {
	if p.PopularityRank <= 0 {
		return unrankedPopularity
	}
	return p.PopularityRank
}

// routeZone orders one standard zone's places as a round trip from the
// anchor. When the oracle is missing or cannot route, the input order is
// kept with zero travel times; the simulator's own estimates compensate
// downstream, so the day stays buildable either way.
func (e *Engine) routeZone(ctx context.Context, places []*domain.Place) []routedStop {
	if len(places) == 0 {
		return nil
	}
	if len(places) == 1 {
		return []routedStop{{Place: places[0]}}
	}

	anchor := findAnchor(places)
	rest := make([]*domain.Place, 0, len(places)-1)
	for _, p := range places {
		if p.ID != anchor.ID {
			rest = append(rest, p)
		}
	}

	fallback := func() []routedStop {
		out := make([]routedStop, 0, len(places))
		out = append(out, routedStop{Place: anchor})
		for _, p := range rest {
			out = append(out, routedStop{Place: p})
		}
		return out
	}

	if e.oracle == nil {
		return fallback()
	}

	waypoints := make([]domain.Coordinates, len(rest))
	for i, p := range rest {
		waypoints[i] = p.Coords
	}

	opt, err := e.oracle.OptimizeRoundTrip(ctx, anchor.Coords, waypoints)
	if err != nil {
		log.Printf("zone route optimization degraded: %v", err)
		return fallback()
	}
	if len(opt.WaypointOrder) != len(rest) {
		log.Printf("zone route optimization degraded: got %d waypoints, want %d", len(opt.WaypointOrder), len(rest))
		return fallback()
	}

	out := make([]routedStop, 0, len(places))
	first := 0
	if len(opt.Legs) > 0 {
		first = minutesFromSeconds(opt.Legs[0].DurationSeconds)
	}
	out = append(out, routedStop{Place: anchor, TravelToNextMinutes: first})

	for i, wpIdx := range opt.WaypointOrder {
		if wpIdx < 0 || wpIdx >= len(rest) {
			log.Printf("zone route optimization degraded: waypoint index %d out of range", wpIdx)
			return fallback()
		}
		travel := 0
		if i+1 < len(opt.Legs) {
			travel = minutesFromSeconds(opt.Legs[i+1].DurationSeconds)
		}
		out = append(out, routedStop{Place: rest[wpIdx], TravelToNextMinutes: travel})
	}

	// The final stop's travel-to-next is the closing leg back to the anchor.
	if len(opt.Legs) > 0 {
		out[len(out)-1].TravelToNextMinutes = minutesFromSeconds(opt.Legs[len(opt.Legs)-1].DurationSeconds)
	}
	return out
}

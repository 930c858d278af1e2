package ports

import (
	"context"
	"errors"

	"itinerary-service/internal/domain"
)

// ErrRouteUnavailable reports that the oracle could not produce a route.
// Callers fall back to a deterministic ordering instead of failing the build.
var ErrRouteUnavailable = errors.New("route oracle: no route available")

// RouteLeg is the drive time of one leg of an optimized route.
type RouteLeg struct {
	DurationSeconds int
}

// OptimizedRoute is the oracle's answer to a round-trip optimization
// request. WaypointOrder holds indexes into the request's waypoint slice in
// visit order. Legs has len(waypoints)+1 entries: anchor to first waypoint,
// between consecutive waypoints, and last waypoint back to the anchor.
type OptimizedRoute struct {
	WaypointOrder []int
	Legs          []RouteLeg
}

// RouteOracle is the external travel-time and route-ordering service.
type RouteOracle interface {
	// OptimizeRoundTrip orders waypoints for a round trip starting and
	// ending at anchor. Returns ErrRouteUnavailable when no route exists.
	OptimizeRoundTrip(ctx context.Context, anchor domain.Coordinates, waypoints []domain.Coordinates) (*OptimizedRoute, error)

	// Duration returns the point-to-point drive time in seconds.
	Duration(ctx context.Context, origin, dest domain.Coordinates) (int, error)
}

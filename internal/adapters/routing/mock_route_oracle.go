package routing

import (
	"context"
	"fmt"

	"itinerary-service/internal/domain"
	"itinerary-service/internal/ports"
)

// MockRouteOracle serves canned answers in tests.
type MockRouteOracle struct {
	Route    *ports.OptimizedRoute
	RouteErr error

	Durations   map[string]int
	DurationErr error

	OptimizeCalls int
	DurationCalls int
}

// DurationKey builds the lookup key used by the Durations map.
func DurationKey(origin, destination domain.Coordinates) string {
	return fmt.Sprintf("%.4f,%.4f->%.4f,%.4f", origin.Lat, origin.Lng, destination.Lat, destination.Lng)
}

func (m *MockRouteOracle) OptimizeRoundTrip(ctx context.Context, anchor domain.Coordinates, waypoints []domain.Coordinates) (*ports.OptimizedRoute, error) {
	m.OptimizeCalls++
	if m.RouteErr != nil {
		return nil, m.RouteErr
	}
	if m.Route == nil {
		return nil, fmt.Errorf("no canned route: %w", ports.ErrRouteUnavailable)
	}
	return m.Route, nil
}

func (m *MockRouteOracle) Duration(ctx context.Context, origin, destination domain.Coordinates) (int, error) {
	m.DurationCalls++
	if m.DurationErr != nil {
		return 0, m.DurationErr
	}
	sec, ok := m.Durations[DurationKey(origin, destination)]
	if !ok {
		return 0, fmt.Errorf("missing pair %q", DurationKey(origin, destination))
	}
	return sec, nil
}

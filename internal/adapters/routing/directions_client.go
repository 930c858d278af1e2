// Package routing adapts an external directions API to the RouteOracle port.
package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/obs"
	"itinerary-service/internal/ports"
)

// DirectionsClient implements RouteOracle against a Google-style directions
// endpoint. Waypoint optimization is delegated to the remote service; the
// client only validates the response shape. Safe for concurrent use.
type DirectionsClient struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewDirectionsClient(apiKey string) (*DirectionsClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("directions api key is empty")
	}

	return &DirectionsClient{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api",
	}, nil
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		WaypointOrder []int `json:"waypoint_order"`
		Legs          []struct {
			Duration struct {
				Value int `json:"value"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

func coordParam(c domain.Coordinates) string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lng)
}

// OptimizeRoundTrip asks the directions service for the best visiting order
// of waypoints on a round trip from anchor back to anchor. Unusable answers
// (non-OK status, missing route, mismatched leg or order counts) are
// reported as ErrRouteUnavailable so callers fall back to local ordering.
func (c *DirectionsClient) OptimizeRoundTrip(
	ctx context.Context,
	anchor domain.Coordinates,
	waypoints []domain.Coordinates,
) (_ *ports.OptimizedRoute, err error) {
	defer obs.Time(ctx, "directions.OptimizeRoundTrip")(&err)

	if len(waypoints) == 0 {
		return nil, errors.New("optimize round trip: no waypoints")
	}

	wp := make([]string, 0, 1+len(waypoints))
	wp = append(wp, "optimize:true")
	for _, w := range waypoints {
		wp = append(wp, coordParam(w))
	}

	params := url.Values{}
	params.Set("origin", coordParam(anchor))
	params.Set("destination", coordParam(anchor))
	params.Set("waypoints", strings.Join(wp, "|"))
	params.Set("key", c.apiKey)

	dr, err := c.fetchDirections(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("optimize round trip: %w", err)
	}

	route := dr.Routes[0]
	if len(route.WaypointOrder) != len(waypoints) {
		return nil, fmt.Errorf(
			"optimize round trip: got %d waypoint indices for %d waypoints: %w",
			len(route.WaypointOrder), len(waypoints), ports.ErrRouteUnavailable,
		)
	}
	if len(route.Legs) != len(waypoints)+1 {
		return nil, fmt.Errorf(
			"optimize round trip: got %d legs for %d waypoints: %w",
			len(route.Legs), len(waypoints), ports.ErrRouteUnavailable,
		)
	}

	out := &ports.OptimizedRoute{
		WaypointOrder: route.WaypointOrder,
		Legs:          make([]ports.RouteLeg, 0, len(route.Legs)),
	}
	for _, leg := range route.Legs {
		out.Legs = append(out.Legs, ports.RouteLeg{DurationSeconds: leg.Duration.Value})
	}
	return out, nil
}

// Duration returns the drive time in seconds for a single origin-destination
// pair.
func (c *DirectionsClient) Duration(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (int, error) {
	params := url.Values{}
	params.Set("origin", coordParam(origin))
	params.Set("destination", coordParam(destination))
	params.Set("key", c.apiKey)

	dr, err := c.fetchDirections(ctx, params)
	if err != nil {
		return 0, fmt.Errorf("point duration: %w", err)
	}

	route := dr.Routes[0]
	if len(route.Legs) == 0 {
		return 0, fmt.Errorf("point duration: route has no legs: %w", ports.ErrRouteUnavailable)
	}

	total := 0
	for _, leg := range route.Legs {
		total += leg.Duration.Value
	}
	return total, nil
}

func (c *DirectionsClient) fetchDirections(ctx context.Context, params url.Values) (*directionsResponse, error) {
	endpoint := c.baseURL + "/directions/json?" + params.Encode()

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, endpoint)
	})
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	if dr.Status != "OK" {
		return nil, fmt.Errorf("directions status %q: %w", dr.Status, ports.ErrRouteUnavailable)
	}
	if len(dr.Routes) == 0 {
		return nil, fmt.Errorf("directions returned no routes: %w", ports.ErrRouteUnavailable)
	}
	return &dr, nil
}

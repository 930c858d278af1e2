// Package services implements the itinerary scheduling engine: it groups
// selected places into daily legs, orders each leg, fits a realistic clock
// to it, and decides what must be dropped when a day overflows.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/obs"
	"itinerary-service/internal/ports"
)

// ErrNoValidPlaces reports a build request whose selection contains no
// itinerary-eligible places. It is the only error a build surfaces; every
// other failure mode degrades to a worse-but-valid itinerary.
var ErrNoValidPlaces = errors.New("build itinerary: no valid places selected")

// DefaultCircuitAnchorID is the place used as origin and destination when
// the circuit ordering is rebuilt through the route oracle.
const DefaultCircuitAnchorID = "kodaikanal-bus-stand-kodaikanal"

const (
	defaultNumDays      = 3
	defaultVisitMinutes = 60

	// mergedZoneHopMinutes is the assumed drive between a circuit day's
	// cached stops and places merged in from another zone.
	mergedZoneHopMinutes = 10
)

// Config carries the engine's fixed tuning knobs.
type Config struct {
	CircuitAnchorID string
}

// Engine builds itineraries from injected collaborators. It owns no state
// of its own: every build is a pure function of the place store, the cached
// circuit and the oracle's answers, so concurrent builds are safe with each
// other. The oracle may be nil; every call site has a deterministic fallback.
type Engine struct {
	places  ports.PlaceRepository
	circuit ports.CircuitStore
	oracle  ports.RouteOracle
	cfg     Config

	rebuildMu sync.Mutex
}

func NewEngine(places ports.PlaceRepository, circuit ports.CircuitStore, oracle ports.RouteOracle, cfg Config) *Engine {
	if cfg.CircuitAnchorID == "" {
		cfg.CircuitAnchorID = DefaultCircuitAnchorID
	}
	return &Engine{places: places, circuit: circuit, oracle: oracle, cfg: cfg}
}

// HotelLocation is an optional fixed start/end point for each day.
type HotelLocation struct {
	Name   string
	Coords domain.Coordinates
}

// BuildRequest is one itinerary-build invocation.
type BuildRequest struct {
	SelectedPlaceIDs []string
	NumDays          int
	Pace             string
	HotelLocation    *HotelLocation
	StartDate        string
	UserForcedIDs    []string
}

// BuildItinerary turns the selected place ids into a day-by-day schedule.
//
// Pipeline: filter to eligible places, assign to zones, merge zones down to
// the requested day count, align zones to weekdays when a start date is
// given, route each zone (circuit vs. standard), split days when zones are
// fewer than requested days, simulate each day's time budget, then layer
// hotel transfers and suggestions.
func (e *Engine) BuildItinerary(ctx context.Context, req BuildRequest) (_ *domain.Itinerary, err error) {
	defer obs.Time(ctx, "engine.BuildItinerary")(&err)

	numDays := req.NumDays
	if numDays <= 0 {
		numDays = defaultNumDays
	}
	pace := domain.PaceFor(req.Pace)

	all, err := e.places.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("build itinerary: list places: %w", err)
	}

	byID := make(map[string]*domain.Place, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	selectedSet := make(map[string]struct{}, len(req.SelectedPlaceIDs))
	selected := make([]*domain.Place, 0, len(req.SelectedPlaceIDs))
	for _, id := range req.SelectedPlaceIDs {
		p, ok := byID[id]
		if !ok || !p.ItineraryEligible {
			continue
		}
		if _, dup := selectedSet[id]; dup {
			continue
		}
		selectedSet[id] = struct{}{}
		selected = append(selected, p)
	}
	if len(selected) == 0 {
		return nil, ErrNoValidPlaces
	}

	groups := assignToZones(selected)
	if len(groups) > numDays {
		groups = mergeZones(groups, numDays)
	}
	if req.StartDate != "" {
		groups = alignZonesToWeekdays(groups, req.StartDate)
	}

	circuit := e.loadCircuit()

	days := make([]*domain.Day, 0, len(groups))
	for _, g := range groups {
		day := &domain.Day{Number: len(days) + 1, Zone: g.Name}
		if strings.Contains(g.Name, domain.ZoneForestCircuit) {
			day.Stops = routeCircuitDay(g.Places, circuit, byID)
		} else {
			for _, rs := range e.routeZone(ctx, g.Places) {
				day.Stops = append(day.Stops, newStop(rs.Place, g.Name, rs.TravelToNextMinutes, false))
			}
		}
		day.TotalDriveMinutes = sumDrive(day.Stops)
		days = append(days, day)
	}

	if len(days) < numDays {
		days = splitDays(days, numDays)
	}

	forced := make(map[string]struct{}, len(req.UserForcedIDs))
	for _, id := range req.UserForcedIDs {
		forced[id] = struct{}{}
	}

	removed := make([]domain.RemovedPlace, 0)
	for _, day := range days {
		removed = append(removed, simulateDay(day, pace, forced)...)
	}

	// Days emptied by overflow removal disappear from the itinerary.
	kept := make([]*domain.Day, 0, len(days))
	for _, d := range days {
		if len(d.Stops) > 0 {
			kept = append(kept, d)
		}
	}
	days = kept
	renumberDays(days)

	if req.HotelLocation != nil && !req.HotelLocation.Coords.IsZero() {
		e.applyHotelTransfers(ctx, days, req.HotelLocation, byID, pace.StartHour)
	}

	return &domain.Itinerary{
		Days:          days,
		StartHour:     pace.StartHour,
		EndHour:       pace.EndHour,
		Suggestions:   buildSuggestions(all, days, selectedSet),
		RemovedPlaces: removed,
	}, nil
}

// routeCircuitDay lays out a day whose label contains the circuit zone.
// Circuit members follow the cached one-way ordering (filtered to the
// selection); places merged in from other zones are appended afterwards
// with a default inter-zone hop.
func routeCircuitDay(places []*domain.Place, circuit []domain.CircuitLeg, byID map[string]*domain.Place) []*domain.ScheduledStop {
	inCircuit := make(map[string]struct{}, len(circuit))
	for _, leg := range circuit {
		inCircuit[leg.PlaceID] = struct{}{}
	}

	circuitSel := make(map[string]struct{})
	var others []*domain.Place
	for _, p := range places {
		if _, ok := inCircuit[p.ID]; ok {
			circuitSel[p.ID] = struct{}{}
		} else {
			others = append(others, p)
		}
	}

	var stops []*domain.ScheduledStop
	for _, leg := range filterCircuit(circuit, circuitSel) {
		p, ok := byID[leg.PlaceID]
		if !ok {
			continue
		}
		stops = append(stops, newStop(p, domain.ZoneForestCircuit, leg.TravelToNextMinutes, true))
	}
	for _, p := range others {
		stops = append(stops, newStop(p, p.Zone, mergedZoneHopMinutes, false))
	}
	return stops
}

func newStop(p *domain.Place, zone string, travelToNext int, isCircuit bool) *domain.ScheduledStop {
	return &domain.ScheduledStop{
		PlaceID:             p.ID,
		Name:                p.Name,
		Zone:                zone,
		Difficulty:          p.Difficulty,
		Rating:              p.Rating,
		ReviewCount:         p.ReviewCount,
		AvgVisitMinutes:     visitMinutes(p),
		TravelToNextMinutes: travelToNext,
		IsCircuit:           isCircuit,
	}
}

func visitMinutes(p *domain.Place) int {
	if p.AvgVisitMinutes <= 0 {
		return defaultVisitMinutes
	}
	return p.AvgVisitMinutes
}

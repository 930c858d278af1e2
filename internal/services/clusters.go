package services

import (
	"math"

	"itinerary-service/internal/domain"
)

// zoneGroup pairs a zone label with the places assigned to it. Groups live
// in a slice, not a map, so iteration order stays deterministic through
// merging and day layout.
type zoneGroup struct {
	Name   string
	Places []*domain.Place
}

// assignToZones buckets places by zone in canonical order. Outskirts places
// are absorbed into their nearest-zone hint; unknown labels fall back to
// the default zone. Only non-empty groups are returned.
func assignToZones(places []*domain.Place) []zoneGroup {
	known := make(map[string]struct{}, len(domain.ZoneOrder))
	for _, name := range domain.ZoneOrder {
		known[name] = struct{}{}
	}

	byZone := make(map[string][]*domain.Place, len(domain.ZoneOrder))
	for _, p := range places {
		zone := p.Zone
		if zone == domain.ZoneOutskirts {
			zone = p.NearestZone
		}
		if _, ok := known[zone]; !ok {
			zone = domain.ZoneTownCenter
		}
		byZone[zone] = append(byZone[zone], p)
	}

	groups := make([]zoneGroup, 0, len(domain.ZoneOrder))
	for _, name := range domain.ZoneOrder {
		if len(byZone[name]) > 0 {
			groups = append(groups, zoneGroup{Name: name, Places: byZone[name]})
		}
	}
	return groups
}

// mergeZones greedily merges the two groups with the fewest combined places
// until at most numDays remain. Balancing place counts across days is
// preferred over geographic adjacency. Merged groups take the label
// "A + B" and move to the end of the iteration order.
func mergeZones(groups []zoneGroup, numDays int) []zoneGroup {
	for len(groups) > numDays && len(groups) > 1 {
		bi, bj := 0, 1
		best := math.MaxInt
		for i := range groups {
			for j := i + 1; j < len(groups); j++ {
				if combined := len(groups[i].Places) + len(groups[j].Places); combined < best {
					best = combined
					bi, bj = i, j
				}
			}
		}

		merged := zoneGroup{
			Name:   groups[bi].Name + " + " + groups[bj].Name,
			Places: append(append([]*domain.Place{}, groups[bi].Places...), groups[bj].Places...),
		}

		next := make([]zoneGroup, 0, len(groups)-1)
		for i, g := range groups {
			if i == bi || i == bj {
				continue
			}
			next = append(next, g)
		}
		groups = append(next, merged)
	}
	return groups
}

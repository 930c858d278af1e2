package services

import (
	"sort"
	"strings"

	"itinerary-service/internal/domain"
)

const maxSuggestions = 5

// buildSuggestions ranks unselected, itinerary-eligible places located in
// the zones the itinerary already visits, so they read as on-the-way
// add-ons. Merged day labels are split back into their constituent zones.
// Purely advisory: suggestions never affect scheduling.
func buildSuggestions(all []*domain.Place, days []*domain.Day, selected map[string]struct{}) []domain.Suggestion {
	visited := make(map[string]struct{})
	for _, d := range days {
		for _, zone := range strings.Split(d.Zone, " + ") {
			visited[zone] = struct{}{}
		}
	}

	candidates := make([]domain.Suggestion, 0)
	for _, p := range all {
		if _, ok := selected[p.ID]; ok {
			continue
		}
		if !p.ItineraryEligible {
			continue
		}
		if _, ok := visited[p.Zone]; !ok {
			continue
		}
		candidates = append(candidates, domain.Suggestion{
			ID:              p.ID,
			Name:            p.Name,
			Zone:            p.Zone,
			Rating:          p.Rating,
			ReviewCount:     p.ReviewCount,
			AvgVisitMinutes: visitMinutes(p),
			Difficulty:      p.Difficulty,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Rating != candidates[j].Rating {
			return candidates[i].Rating > candidates[j].Rating
		}
		return candidates[i].ReviewCount > candidates[j].ReviewCount
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	return candidates
}

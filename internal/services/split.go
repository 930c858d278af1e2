package services

import (
	"log"
	"strings"

	"itinerary-service/internal/domain"
)

// hardSplitBonusMinutes weights day-split selection toward days with
// Hard-difficulty places.
const hardSplitBonusMinutes = 30

// splitDays splits the most demanding splittable day in half until the
// requested day count is reached or nothing can be split. Days whose label
// contains the circuit zone are never split: the circuit is a directed walk
// whose sequence must survive intact. Splitting stops entirely once the
// best candidate has two or fewer places, since halving it would leave a
// trivial day. Days are renumbered contiguously before returning.
func splitDays(days []*domain.Day, numDays int) []*domain.Day {
	for len(days) < numDays {
		var longest *domain.Day
		longestCost := -1

		for _, d := range days {
			if strings.Contains(d.Zone, domain.ZoneForestCircuit) {
				continue
			}
			cost := 0
			for _, s := range d.Stops {
				cost += s.AvgVisitMinutes + s.TravelToNextMinutes
				if s.Difficulty == domain.DifficultyHard {
					cost += hardSplitBonusMinutes
				}
			}
			if cost > longestCost {
				longestCost = cost
				longest = d
			}
		}

		if longest == nil {
			log.Println("cannot split further, only circuit days remain")
			break
		}
		if len(longest.Stops) <= 2 {
			log.Printf("cannot split further, day %q has only %d places", longest.Zone, len(longest.Stops))
			break
		}

		mid := len(longest.Stops) / 2
		second := longest.Stops[mid:]
		longest.Stops = longest.Stops[:mid]
		longest.TotalDriveMinutes = sumDrive(longest.Stops)

		days = append(days, &domain.Day{
			Zone:              longest.Zone + " (Part 2)",
			Stops:             second,
			TotalDriveMinutes: sumDrive(second),
			IsSplit:           true,
		})
	}

	renumberDays(days)
	return days
}

func renumberDays(days []*domain.Day) {
	for i, d := range days {
		d.Number = i + 1
	}
}

func sumDrive(stops []*domain.ScheduledStop) int {
	total := 0
	for _, s := range stops {
		total += s.TravelToNextMinutes
	}
	return total
}

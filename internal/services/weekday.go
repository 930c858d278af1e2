package services

import (
	"log"
	"math"
	"time"
)

// maxAlignZones bounds the exhaustive permutation search. Zone counts are
// small in practice; beyond the cap the existing order is kept rather than
// risking factorial blowup.
const maxAlignZones = 6

// alignZonesToWeekdays reorders zone groups so that, with day 1 landing on
// the start date's weekday, the number of places closed on their assigned
// weekday is minimized. The first permutation found with the minimum count
// wins. Alignment is skipped when the date cannot be parsed.
func alignZonesToWeekdays(groups []zoneGroup, startDate string) []zoneGroup {
	if len(groups) <= 1 || len(groups) > maxAlignZones {
		return groups
	}

	start, err := parseStartDate(startDate)
	if err != nil {
		log.Printf("weekday alignment skipped, bad start date %q: %v", startDate, err)
		return groups
	}
	startIdx := int(start.Weekday())

	best := groups
	bestClosed := math.MaxInt

	permute(len(groups), func(order []int) {
		closed := 0
		dayIdx := startIdx
		for _, gi := range order {
			for _, p := range groups[gi].Places {
				if !p.OpenOn(dayIdx) {
					closed++
				}
			}
			dayIdx = (dayIdx + 1) % 7
		}
		if closed < bestClosed {
			bestClosed = closed
			perm := make([]zoneGroup, len(order))
			for i, gi := range order {
				perm[i] = groups[gi]
			}
			best = perm
		}
	})
	return best
}

func parseStartDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// permute calls fn with every permutation of 0..n-1 in lexicographic order.
// The slice passed to fn is reused between calls.
func permute(n int, fn func(order []int)) {
	order := make([]int, 0, n)
	used := make([]bool, n)

	var rec func()
	rec = func() {
		if len(order) == n {
			fn(order)
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			order = append(order, i)
			rec()
			order = order[:len(order)-1]
			used[i] = false
		}
	}
	rec()
}

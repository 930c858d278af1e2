package services

import (
	"testing"

	"itinerary-service/internal/domain"
)

func stopsWithVisits(prefix string, visits ...int) []*domain.ScheduledStop {
	out := make([]*domain.ScheduledStop, 0, len(visits))
	for i, v := range visits {
		out = append(out, &domain.ScheduledStop{
			PlaceID:         prefix + string(rune('a'+i)),
			AvgVisitMinutes: v,
		})
	}
	return out
}

func TestSplitDaysHalvesTheLongestDay(t *testing.T) {
	days := []*domain.Day{
		{Number: 1, Zone: domain.ZoneTownCenter, Stops: stopsWithVisits("t", 60, 60, 60, 60)},
		{Number: 2, Zone: domain.ZoneVattakanal, Stops: stopsWithVisits("v", 30, 30)},
	}

	split := splitDays(days, 3)
	if len(split) != 3 {
		t.Fatalf("expected 3 days, got %d", len(split))
	}

	if len(split[0].Stops) != 2 {
		t.Fatalf("split day kept %d stops, want 2", len(split[0].Stops))
	}

	part2 := split[2]
	if part2.Zone != domain.ZoneTownCenter+" (Part 2)" {
		t.Fatalf("part 2 zone = %q", part2.Zone)
	}
	if !part2.IsSplit {
		t.Fatal("part 2 must be marked as split")
	}
	if len(part2.Stops) != 2 {
		t.Fatalf("part 2 has %d stops, want 2", len(part2.Stops))
	}

	for i, d := range split {
		if d.Number != i+1 {
			t.Fatalf("day %d numbered %d", i+1, d.Number)
		}
	}
}

func TestSplitDaysSplitsEachZoneOnceForDoubledDayCount(t *testing.T) {
	days := []*domain.Day{
		{Number: 1, Zone: domain.ZoneTownCenter, Stops: stopsWithVisits("t", 100, 100, 100, 100)},
		{Number: 2, Zone: domain.ZoneVattakanal, Stops: stopsWithVisits("v", 80, 80, 80, 80)},
	}

	split := splitDays(days, 4)
	if len(split) != 4 {
		t.Fatalf("expected 4 days, got %d", len(split))
	}

	wantZones := []string{
		domain.ZoneTownCenter,
		domain.ZoneVattakanal,
		domain.ZoneTownCenter + " (Part 2)",
		domain.ZoneVattakanal + " (Part 2)",
	}
	for i, d := range split {
		if d.Zone != wantZones[i] {
			t.Fatalf("day %d zone = %q, want %q", i+1, d.Zone, wantZones[i])
		}
		if d.Number != i+1 {
			t.Fatalf("day %d numbered %d", i+1, d.Number)
		}
		if len(d.Stops) != 2 {
			t.Fatalf("day %d has %d stops, want 2", i+1, len(d.Stops))
		}
	}
	if split[0].IsSplit || split[1].IsSplit {
		t.Fatal("original halves must not be marked as split")
	}
	if !split[2].IsSplit || !split[3].IsSplit {
		t.Fatal("part 2 halves must be marked as split")
	}
}

func TestSplitDaysWeightsHardPlaces(t *testing.T) {
	easyDay := &domain.Day{Number: 1, Zone: domain.ZoneTownCenter, Stops: stopsWithVisits("t", 60, 60, 60)}
	hardDay := &domain.Day{Number: 2, Zone: domain.ZoneVattakanal, Stops: stopsWithVisits("v", 50, 50, 50)}
	for _, s := range hardDay.Stops {
		s.Difficulty = domain.DifficultyHard
	}

	// 150 visit minutes + 3x30 hard bonus beats 180 plain minutes.
	split := splitDays([]*domain.Day{easyDay, hardDay}, 3)
	if len(split) != 3 {
		t.Fatalf("expected 3 days, got %d", len(split))
	}
	if split[2].Zone != domain.ZoneVattakanal+" (Part 2)" {
		t.Fatalf("split the wrong day: %q", split[2].Zone)
	}
}

func TestSplitDaysNeverSplitsCircuit(t *testing.T) {
	days := []*domain.Day{
		{Number: 1, Zone: domain.ZoneForestCircuit, Stops: stopsWithVisits("f", 60, 60, 60, 60, 60)},
	}

	split := splitDays(days, 2)
	if len(split) != 1 {
		t.Fatalf("circuit day must stay whole, got %d days", len(split))
	}
}

func TestSplitDaysStopsAtTwoStops(t *testing.T) {
	days := []*domain.Day{
		{Number: 1, Zone: domain.ZoneTownCenter, Stops: stopsWithVisits("t", 60, 60)},
	}

	split := splitDays(days, 2)
	if len(split) != 1 {
		t.Fatalf("two-stop day must not split, got %d days", len(split))
	}
}

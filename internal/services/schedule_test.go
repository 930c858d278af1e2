package services

import (
	"testing"

	"itinerary-service/internal/domain"
)

func TestSimulateDayStampsTimes(t *testing.T) {
	day := &domain.Day{
		Zone: domain.ZoneTownCenter,
		Stops: []*domain.ScheduledStop{
			{PlaceID: "a", Name: "A", AvgVisitMinutes: 60, TravelToNextMinutes: 15},
			{PlaceID: "b", Name: "B", AvgVisitMinutes: 90, TravelToNextMinutes: 0},
		},
	}

	removed := simulateDay(day, domain.PaceFor("medium"), nil)
	if len(removed) != 0 {
		t.Fatalf("unexpected removals: %v", removed)
	}

	if day.StartTime != "09:00" {
		t.Fatalf("start = %q, want 09:00", day.StartTime)
	}
	if day.Stops[0].ScheduledTime != "09:00" || day.Stops[0].DepartureTime != "10:00" {
		t.Fatalf("stop a times = %q/%q", day.Stops[0].ScheduledTime, day.Stops[0].DepartureTime)
	}
	if day.Stops[1].ScheduledTime != "10:15" || day.Stops[1].DepartureTime != "11:45" {
		t.Fatalf("stop b times = %q/%q", day.Stops[1].ScheduledTime, day.Stops[1].DepartureTime)
	}
	if day.EndTime != "11:45" {
		t.Fatalf("end = %q, want 11:45", day.EndTime)
	}
	if day.TargetEndTime != "18:00" {
		t.Fatalf("target end = %q, want 18:00", day.TargetEndTime)
	}
}

func TestSimulateDayLunchBreak(t *testing.T) {
	day := &domain.Day{
		Zone: domain.ZoneTownCenter,
		Stops: []*domain.ScheduledStop{
			{PlaceID: "a", Name: "A", AvgVisitMinutes: 240},
			{PlaceID: "b", Name: "B", AvgVisitMinutes: 60},
		},
	}

	removed := simulateDay(day, domain.PaceFor("medium"), nil)
	if len(removed) != 0 {
		t.Fatalf("unexpected removals: %v", removed)
	}

	// Clock reaches 13:00 before B, inside the early-lunch window of 13:30.
	if day.Stops[0].HasLunchBefore {
		t.Fatal("stop a should not carry a lunch break")
	}
	if !day.Stops[1].HasLunchBefore {
		t.Fatal("stop b should carry the lunch break")
	}
	if day.Stops[1].ScheduledTime != "14:30" {
		t.Fatalf("stop b scheduled at %q, want 14:30", day.Stops[1].ScheduledTime)
	}
	if day.EndTime != "15:30" {
		t.Fatalf("end = %q, want 15:30", day.EndTime)
	}
}

func TestSimulateDayNoLunchBeforeWindow(t *testing.T) {
	// A single long visit starting at 09:00 never re-checks the clock, so no
	// lunch is inserted even though the visit spans 13:30.
	day := &domain.Day{
		Zone: domain.ZoneTownCenter,
		Stops: []*domain.ScheduledStop{
			{PlaceID: "a", Name: "A", AvgVisitMinutes: 480},
		},
	}

	simulateDay(day, domain.PaceFor("medium"), nil)
	if day.Stops[0].HasLunchBefore {
		t.Fatal("lunch must only be checked before a stop begins")
	}
	if day.EndTime != "17:00" {
		t.Fatalf("end = %q, want 17:00", day.EndTime)
	}
}

func TestSimulateDayDropsOverflow(t *testing.T) {
	day := &domain.Day{
		Zone: domain.ZoneTownCenter,
		Stops: []*domain.ScheduledStop{
			{PlaceID: "a", Name: "A", AvgVisitMinutes: 480},
			{PlaceID: "b", Name: "B", Zone: domain.ZoneTownCenter, AvgVisitMinutes: 120},
			{PlaceID: "c", Name: "C", Zone: domain.ZoneTownCenter, AvgVisitMinutes: 30},
		},
	}

	removed := simulateDay(day, domain.PaceFor("medium"), nil)
	if len(removed) != 2 {
		t.Fatalf("expected 2 removals, got %d", len(removed))
	}
	if removed[0].ID != "b" || removed[1].ID != "c" {
		t.Fatalf("removed = %s, %s; want b, c", removed[0].ID, removed[1].ID)
	}
	if removed[0].Reason != domain.RemovedExceededEndTime {
		t.Fatalf("reason = %q, want %q", removed[0].Reason, domain.RemovedExceededEndTime)
	}

	// The clock never advances for dropped stops.
	if len(day.Stops) != 1 || day.EndTime != "17:00" {
		t.Fatalf("day kept %d stops ending %q, want 1 ending 17:00", len(day.Stops), day.EndTime)
	}
}

func TestSimulateDayKeepsForcedWithWarning(t *testing.T) {
	day := &domain.Day{
		Zone: domain.ZoneTownCenter,
		Stops: []*domain.ScheduledStop{
			{PlaceID: "a", Name: "A", AvgVisitMinutes: 480},
			{PlaceID: "b", Name: "B", AvgVisitMinutes: 120},
		},
	}

	removed := simulateDay(day, domain.PaceFor("medium"), map[string]struct{}{"b": {}})
	if len(removed) != 0 {
		t.Fatalf("unexpected removals: %v", removed)
	}
	if len(day.Stops) != 2 {
		t.Fatalf("kept %d stops, want 2", len(day.Stops))
	}

	b := day.Stops[1]
	if b.Warning != domain.WarningLateSchedule {
		t.Fatalf("warning = %q, want %q", b.Warning, domain.WarningLateSchedule)
	}
	if !b.HasLunchBefore {
		t.Fatal("forced stop after 13:00 should still get the lunch break")
	}
	if b.ScheduledTime != "18:30" {
		t.Fatalf("forced stop scheduled at %q, want 18:30", b.ScheduledTime)
	}
}

package services

import (
	"testing"

	"itinerary-service/internal/domain"
)

func TestAssignToZones(t *testing.T) {
	places := []*domain.Place{
		{ID: "v1", Zone: domain.ZoneVattakanal},
		{ID: "o1", Zone: domain.ZoneOutskirts, NearestZone: domain.ZoneVattakanal},
		{ID: "t1", Zone: domain.ZoneTownCenter},
		{ID: "x1", Zone: "Elsewhere"},
		{ID: "f1", Zone: domain.ZoneForestCircuit},
	}

	groups := assignToZones(places)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	// Canonical order: Town Center, Forest Circuit, Vattakanal.
	if groups[0].Name != domain.ZoneTownCenter {
		t.Fatalf("group 0 = %q, want %q", groups[0].Name, domain.ZoneTownCenter)
	}
	if groups[1].Name != domain.ZoneForestCircuit {
		t.Fatalf("group 1 = %q, want %q", groups[1].Name, domain.ZoneForestCircuit)
	}
	if groups[2].Name != domain.ZoneVattakanal {
		t.Fatalf("group 2 = %q, want %q", groups[2].Name, domain.ZoneVattakanal)
	}

	// Unknown zone falls back to Town Center.
	if len(groups[0].Places) != 2 {
		t.Fatalf("town center has %d places, want 2", len(groups[0].Places))
	}

	// Outskirts place absorbed into its nearest zone.
	if len(groups[2].Places) != 2 {
		t.Fatalf("vattakanal has %d places, want 2", len(groups[2].Places))
	}
}

func TestMergeZonesSmallestPair(t *testing.T) {
	groups := []zoneGroup{
		{Name: domain.ZoneTownCenter, Places: make([]*domain.Place, 3)},
		{Name: domain.ZoneForestCircuit, Places: make([]*domain.Place, 1)},
		{Name: domain.ZoneVattakanal, Places: make([]*domain.Place, 1)},
		{Name: domain.ZonePoombarai, Places: make([]*domain.Place, 2)},
	}

	merged := mergeZones(groups, 3)
	if len(merged) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(merged))
	}

	if merged[0].Name != domain.ZoneTownCenter {
		t.Fatalf("group 0 = %q, want %q", merged[0].Name, domain.ZoneTownCenter)
	}
	if merged[1].Name != domain.ZonePoombarai {
		t.Fatalf("group 1 = %q, want %q", merged[1].Name, domain.ZonePoombarai)
	}

	want := domain.ZoneForestCircuit + " + " + domain.ZoneVattakanal
	if merged[2].Name != want {
		t.Fatalf("merged label = %q, want %q", merged[2].Name, want)
	}
	if len(merged[2].Places) != 2 {
		t.Fatalf("merged group has %d places, want 2", len(merged[2].Places))
	}
}

func TestMergeZonesDownToOne(t *testing.T) {
	groups := []zoneGroup{
		{Name: domain.ZoneTownCenter, Places: make([]*domain.Place, 2)},
		{Name: domain.ZoneVattakanal, Places: make([]*domain.Place, 1)},
	}

	merged := mergeZones(groups, 1)
	if len(merged) != 1 {
		t.Fatalf("expected 1 group, got %d", len(merged))
	}
	if len(merged[0].Places) != 3 {
		t.Fatalf("merged group has %d places, want 3", len(merged[0].Places))
	}
}

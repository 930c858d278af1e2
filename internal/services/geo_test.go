package services

import (
	"testing"

	"itinerary-service/internal/domain"
)

func TestHaversineKm(t *testing.T) {
	a := domain.Coordinates{Lat: 10.0, Lng: 77.0}
	b := domain.Coordinates{Lat: 10.0, Lng: 77.1}

	got := haversineKm(a, b)
	if got < 10.8 || got > 11.1 {
		t.Fatalf("distance = %f km, want ~10.95", got)
	}

	if d := haversineKm(a, a); d != 0 {
		t.Fatalf("distance to self = %f, want 0", d)
	}
}

func TestEstimateDriveMinutes(t *testing.T) {
	a := domain.Coordinates{Lat: 10.0, Lng: 77.0}
	b := domain.Coordinates{Lat: 10.0, Lng: 77.1}

	got := estimateDriveMinutes(a, b)
	if got < 30 || got > 36 {
		t.Fatalf("estimate = %d min, want ~33", got)
	}

	// Nearby points never fall below the floor.
	c := domain.Coordinates{Lat: 10.0001, Lng: 77.0001}
	if got := estimateDriveMinutes(a, c); got != 5 {
		t.Fatalf("short hop estimate = %d, want 5", got)
	}
}

func TestMinutesFromSeconds(t *testing.T) {
	if got := minutesFromSeconds(89); got != 1 {
		t.Fatalf("89s = %d min, want 1", got)
	}
	if got := minutesFromSeconds(90); got != 2 {
		t.Fatalf("90s = %d min, want 2", got)
	}
}

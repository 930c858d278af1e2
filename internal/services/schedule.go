package services

import (
	"context"
	"fmt"
	"log"

	"itinerary-service/internal/domain"
)

// Lunch configuration. The break is due when the running clock comes within
// 30 minutes of the 13:30 threshold, and it is inserted at most once per day.
const (
	lunchThresholdMinutes   = 13*60 + 30
	lunchEarlyWindowMinutes = 30
	lunchDurationMinutes    = 90
)

// defaultHotelTransferMinutes is used when a day's edge stop has no
// coordinates to estimate against.
const defaultHotelTransferMinutes = 15

// simulateDay walks a day's stops against the pace's time budget: it
// inserts at most one lunch break, stamps arrival and departure clock
// times, and drops non-forced stops whose finish time would overshoot the
// target end. User-forced stops are kept with a late-schedule warning
// instead. The clock never advances for a dropped stop.
func simulateDay(day *domain.Day, pace domain.PaceProfile, forced map[string]struct{}) []domain.RemovedPlace {
	clock := pace.StartHour * 60
	endBudget := pace.EndHour * 60
	lunchTaken := false

	kept := make([]*domain.ScheduledStop, 0, len(day.Stops))
	var removed []domain.RemovedPlace

	for _, stop := range day.Stops {
		lunch := 0
		needsLunch := !lunchTaken && clock >= lunchThresholdMinutes-lunchEarlyWindowMinutes
		if needsLunch {
			lunch = lunchDurationMinutes
		}

		finish := clock + lunch + stop.AvgVisitMinutes + stop.TravelToNextMinutes
		_, isForced := forced[stop.PlaceID]
		exceeds := finish > endBudget

		if exceeds && !isForced {
			removed = append(removed, domain.RemovedPlace{
				ID:              stop.PlaceID,
				Name:            stop.Name,
				Zone:            stop.Zone,
				Reason:          domain.RemovedExceededEndTime,
				ReasonText:      fmt.Sprintf("Could not fit within %02d:00 end time (pace: %s)", pace.EndHour, pace.Name),
				AvgVisitMinutes: stop.AvgVisitMinutes,
			})
			continue
		}

		if needsLunch {
			stop.HasLunchBefore = true
			clock += lunchDurationMinutes
			lunchTaken = true
		}

		stop.ScheduledTime = formatClock(clock)
		departure := clock + stop.AvgVisitMinutes
		stop.DepartureTime = formatClock(departure)

		if isForced && exceeds {
			stop.Warning = domain.WarningLateSchedule
			stop.WarningMessage = fmt.Sprintf("This place causes the schedule to extend past %02d:00", pace.EndHour)
		}

		clock = departure + stop.TravelToNextMinutes
		kept = append(kept, stop)
	}

	day.Stops = kept
	day.TotalDriveMinutes = sumDrive(kept)
	day.StartTime = formatClock(pace.StartHour * 60)
	day.EndTime = formatClock(clock)
	day.TargetEndTime = formatClock(endBudget)
	return removed
}

// applyHotelTransfers layers hotel-to-first and last-to-hotel drive times
// onto each non-empty day and derives the implied hotel departure time.
func (e *Engine) applyHotelTransfers(ctx context.Context, days []*domain.Day, hotel *HotelLocation, byID map[string]*domain.Place, startHour int) {
	for _, day := range days {
		if len(day.Stops) == 0 {
			continue
		}

		first := byID[day.Stops[0].PlaceID]
		last := byID[day.Stops[len(day.Stops)-1].PlaceID]

		toFirst := defaultHotelTransferMinutes
		if first != nil && !first.Coords.IsZero() {
			toFirst = e.travelMinutes(ctx, hotel.Coords, first.Coords)
		}
		toHotel := defaultHotelTransferMinutes
		if last != nil && !last.Coords.IsZero() {
			toHotel = e.travelMinutes(ctx, last.Coords, hotel.Coords)
		}

		day.HotelToFirstMinutes = &toFirst
		day.LastToHotelMinutes = &toHotel
		day.HotelDepartureTime = formatClock(startHour*60 - toFirst)
		day.HotelName = hotel.Name
	}
}

// travelMinutes asks the oracle for a point-to-point duration, falling back
// to the haversine estimate when the oracle is missing or fails.
func (e *Engine) travelMinutes(ctx context.Context, origin, dest domain.Coordinates) int {
	if e.oracle != nil {
		sec, err := e.oracle.Duration(ctx, origin, dest)
		if err == nil {
			m := sec / 60
			if m < 1 {
				m = 1
			}
			return m
		}
		log.Printf("point-to-point duration degraded: %v", err)
	}
	return estimateDriveMinutes(origin, dest)
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Package dto defines the JSON request and response shapes of the HTTP API
// and their mapping from domain types. Handlers never expose domain structs
// directly. Wire field names keep the public API's legacy "cluster"
// terminology for zones.
package dto

import "itinerary-service/internal/domain"

type HotelLocationRequest struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type ItineraryRequest struct {
	SelectedPlaceIDs []string `json:"selected_place_ids"`
	NumDays          int      `json:"num_days"`
	Pace             string   `json:"pace"`
	// HotelZone is accepted for compatibility with existing clients but has
	// no effect on scheduling; hotel transfers require hotel_location.
	HotelZone     string                `json:"hotel_cluster"`
	HotelLocation *HotelLocationRequest `json:"hotel_location"`
	StartDate     string                `json:"start_date"`
	UserForcedIDs []string              `json:"user_forced_ids"`
}

type StopResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Zone                string  `json:"cluster"`
	Difficulty          string  `json:"difficulty"`
	Rating              float64 `json:"rating"`
	ReviewCount         int     `json:"review_count"`
	AvgVisitMinutes     int     `json:"avg_time_minutes"`
	TravelToNextMinutes int     `json:"travel_to_next_min"`
	ScheduledTime       string  `json:"scheduled_time"`
	DepartureTime       string  `json:"departure_time"`
	HasLunchBefore      bool    `json:"has_lunch_before"`
	Warning             string  `json:"warning,omitempty"`
	WarningMessage      string  `json:"warning_message,omitempty"`
	IsCircuit           bool    `json:"is_circuit"`
}

type DayResponse struct {
	Day                 int            `json:"day"`
	Zone                string         `json:"cluster"`
	Places              []StopResponse `json:"places"`
	PlaceCount          int            `json:"place_count"`
	TotalDriveMinutes   int            `json:"total_drive_min"`
	StartTime           string         `json:"start_time"`
	EndTime             string         `json:"end_time"`
	TargetEndTime       string         `json:"target_end_time"`
	IsSplit             bool           `json:"is_split"`
	HotelToFirstMinutes *int           `json:"hotel_to_first_min,omitempty"`
	LastToHotelMinutes  *int           `json:"last_to_hotel_min,omitempty"`
	HotelDepartureTime  string         `json:"hotel_departure_time,omitempty"`
	HotelName           string         `json:"hotel_name,omitempty"`
}

type SuggestionResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Zone            string  `json:"cluster"`
	Rating          float64 `json:"rating"`
	ReviewCount     int     `json:"review_count"`
	AvgVisitMinutes int     `json:"avg_time_minutes"`
	Difficulty      string  `json:"difficulty"`
}

type RemovedPlaceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Zone            string `json:"cluster"`
	Reason          string `json:"reason"`
	ReasonText      string `json:"reason_text"`
	AvgVisitMinutes int    `json:"avg_time_minutes"`
}

type ItineraryResponse struct {
	Days          []DayResponse          `json:"days"`
	TotalDays     int                    `json:"total_days"`
	StartHour     int                    `json:"start_hour"`
	EndHour       int                    `json:"end_hour"`
	Suggestions   []SuggestionResponse   `json:"suggestions"`
	RemovedPlaces []RemovedPlaceResponse `json:"removed_places"`
}

func FromItinerary(it *domain.Itinerary) ItineraryResponse {
	days := make([]DayResponse, 0, len(it.Days))
	for _, d := range it.Days {
		days = append(days, fromDay(d))
	}

	suggestions := make([]SuggestionResponse, 0, len(it.Suggestions))
	for _, s := range it.Suggestions {
		suggestions = append(suggestions, SuggestionResponse{
			ID:              s.ID,
			Name:            s.Name,
			Zone:            s.Zone,
			Rating:          s.Rating,
			ReviewCount:     s.ReviewCount,
			AvgVisitMinutes: s.AvgVisitMinutes,
			Difficulty:      string(s.Difficulty),
		})
	}

	removed := make([]RemovedPlaceResponse, 0, len(it.RemovedPlaces))
	for _, r := range it.RemovedPlaces {
		removed = append(removed, RemovedPlaceResponse{
			ID:              r.ID,
			Name:            r.Name,
			Zone:            r.Zone,
			Reason:          r.Reason,
			ReasonText:      r.ReasonText,
			AvgVisitMinutes: r.AvgVisitMinutes,
		})
	}

	return ItineraryResponse{
		Days:          days,
		TotalDays:     len(days),
		StartHour:     it.StartHour,
		EndHour:       it.EndHour,
		Suggestions:   suggestions,
		RemovedPlaces: removed,
	}
}

func fromDay(d *domain.Day) DayResponse {
	stops := make([]StopResponse, 0, len(d.Stops))
	for _, s := range d.Stops {
		stops = append(stops, StopResponse{
			ID:                  s.PlaceID,
			Name:                s.Name,
			Zone:                s.Zone,
			Difficulty:          string(s.Difficulty),
			Rating:              s.Rating,
			ReviewCount:         s.ReviewCount,
			AvgVisitMinutes:     s.AvgVisitMinutes,
			TravelToNextMinutes: s.TravelToNextMinutes,
			ScheduledTime:       s.ScheduledTime,
			DepartureTime:       s.DepartureTime,
			HasLunchBefore:      s.HasLunchBefore,
			Warning:             s.Warning,
			WarningMessage:      s.WarningMessage,
			IsCircuit:           s.IsCircuit,
		})
	}

	return DayResponse{
		Day:                 d.Number,
		Zone:                d.Zone,
		Places:              stops,
		PlaceCount:          len(stops),
		TotalDriveMinutes:   d.TotalDriveMinutes,
		StartTime:           d.StartTime,
		EndTime:             d.EndTime,
		TargetEndTime:       d.TargetEndTime,
		IsSplit:             d.IsSplit,
		HotelToFirstMinutes: d.HotelToFirstMinutes,
		LastToHotelMinutes:  d.LastToHotelMinutes,
		HotelDepartureTime:  d.HotelDepartureTime,
		HotelName:           d.HotelName,
	}
}

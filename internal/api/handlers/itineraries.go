package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"itinerary-service/internal/api/dto"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/services"
)

// ItineraryBuilder is the slice of the engine the handler needs.
type ItineraryBuilder interface {
	BuildItinerary(ctx context.Context, req services.BuildRequest) (*domain.Itinerary, error)
}

type ItineraryHandler struct {
	Engine ItineraryBuilder
}

// Build turns a selection of places into a scheduled multi-day itinerary.
func (h *ItineraryHandler) Build(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ItineraryRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.SelectedPlaceIDs) == 0 {
		writeError(w, r, http.StatusBadRequest, "selected_place_ids is required")
		return
	}
	// 0 means unset and falls through to the engine's default day count.
	if req.NumDays < 0 || req.NumDays > 14 {
		writeError(w, r, http.StatusBadRequest, "num_days must be between 0 and 14")
		return
	}

	svcReq := services.BuildRequest{
		SelectedPlaceIDs: req.SelectedPlaceIDs,
		NumDays:          req.NumDays,
		Pace:             req.Pace,
		StartDate:        req.StartDate,
		UserForcedIDs:    req.UserForcedIDs,
	}
	if req.HotelLocation != nil {
		svcReq.HotelLocation = &services.HotelLocation{
			Name: req.HotelLocation.Name,
			Coords: domain.Coordinates{
				Lat: req.HotelLocation.Lat,
				Lng: req.HotelLocation.Lng,
			},
		}
	}

	itinerary, err := h.Engine.BuildItinerary(r.Context(), svcReq)
	if err != nil {
		if errors.Is(err, services.ErrNoValidPlaces) {
			writeError(w, r, http.StatusBadRequest, "no valid places selected")
			return
		}
		log.Printf("build itinerary failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromItinerary(itinerary))
}

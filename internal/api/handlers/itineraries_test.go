package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"itinerary-service/internal/domain"
	"itinerary-service/internal/services"
)

type stubBuilder struct {
	itinerary *domain.Itinerary
	err       error
	lastReq   services.BuildRequest
}

func (s *stubBuilder) BuildItinerary(ctx context.Context, req services.BuildRequest) (*domain.Itinerary, error) {
	s.lastReq = req
	return s.itinerary, s.err
}

func TestItineraryHandlerBuild(t *testing.T) {
	builder := &stubBuilder{
		itinerary: &domain.Itinerary{
			Days: []*domain.Day{
				{
					Number: 1,
					Zone:   domain.ZoneTownCenter,
					Stops: []*domain.ScheduledStop{
						{PlaceID: "t1", Name: "T1", ScheduledTime: "09:00", DepartureTime: "10:00"},
					},
				},
			},
			StartHour:     9,
			EndHour:       18,
			RemovedPlaces: []domain.RemovedPlace{},
		},
	}
	h := &ItineraryHandler{Engine: builder}

	body := `{
		"selected_place_ids": ["t1"],
		"num_days": 2,
		"pace": "fast",
		"hotel_location": {"name": "Inn", "lat": 10.23, "lng": 77.48}
	}`
	req := httptest.NewRequest(http.MethodPost, "/itineraries", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Build(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	if builder.lastReq.NumDays != 2 || builder.lastReq.Pace != "fast" {
		t.Fatalf("request not forwarded: %+v", builder.lastReq)
	}
	if builder.lastReq.HotelLocation == nil || builder.lastReq.HotelLocation.Name != "Inn" {
		t.Fatalf("hotel location not forwarded: %+v", builder.lastReq.HotelLocation)
	}

	var res struct {
		Days      []json.RawMessage `json:"days"`
		TotalDays int               `json:"total_days"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if res.TotalDays != 1 || len(res.Days) != 1 {
		t.Fatalf("total_days = %d with %d days", res.TotalDays, len(res.Days))
	}
}

func TestItineraryHandlerRejectsUnknownFields(t *testing.T) {
	h := &ItineraryHandler{Engine: &stubBuilder{}}

	req := httptest.NewRequest(http.MethodPost, "/itineraries", strings.NewReader(`{"bogus": true}`))
	rec := httptest.NewRecorder()

	h.Build(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestItineraryHandlerRequiresSelection(t *testing.T) {
	h := &ItineraryHandler{Engine: &stubBuilder{}}

	req := httptest.NewRequest(http.MethodPost, "/itineraries", strings.NewReader(`{"num_days": 2}`))
	rec := httptest.NewRecorder()

	h.Build(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestItineraryHandlerNumDaysBounds(t *testing.T) {
	cases := []struct {
		name    string
		numDays string
		want    int
	}{
		{"zero means default", "0", http.StatusOK},
		{"upper bound", "14", http.StatusOK},
		{"negative", "-1", http.StatusBadRequest},
		{"too many", "15", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &ItineraryHandler{Engine: &stubBuilder{itinerary: &domain.Itinerary{}}}

			body := `{"selected_place_ids": ["t1"], "num_days": ` + tc.numDays + `}`
			req := httptest.NewRequest(http.MethodPost, "/itineraries", strings.NewReader(body))
			rec := httptest.NewRecorder()

			h.Build(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("num_days %s: status = %d, want %d", tc.numDays, rec.Code, tc.want)
			}
		})
	}
}

func TestItineraryHandlerNoValidPlaces(t *testing.T) {
	h := &ItineraryHandler{Engine: &stubBuilder{err: services.ErrNoValidPlaces}}

	req := httptest.NewRequest(http.MethodPost, "/itineraries", strings.NewReader(`{"selected_place_ids": ["nope"]}`))
	rec := httptest.NewRecorder()

	h.Build(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestItineraryHandlerInternalError(t *testing.T) {
	h := &ItineraryHandler{Engine: &stubBuilder{err: errors.New("boom")}}

	req := httptest.NewRequest(http.MethodPost, "/itineraries", strings.NewReader(`{"selected_place_ids": ["t1"]}`))
	rec := httptest.NewRecorder()

	h.Build(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestItineraryHandlerMethodNotAllowed(t *testing.T) {
	h := &ItineraryHandler{Engine: &stubBuilder{}}

	req := httptest.NewRequest(http.MethodGet, "/itineraries", nil)
	rec := httptest.NewRecorder()

	h.Build(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

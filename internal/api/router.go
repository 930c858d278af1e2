package api

import (
	"net/http"

	"itinerary-service/internal/api/handlers"
	"itinerary-service/internal/ports"
	"itinerary-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.PlaceRepository, engine *services.Engine) http.Handler {
	mux := http.NewServeMux()

	placeHandler := &handlers.PlaceHandler{Repo: repo}
	itineraryHandler := &handlers.ItineraryHandler{Engine: engine}
	circuitHandler := &handlers.CircuitHandler{Engine: engine}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/places", placeHandler.List)
	mux.HandleFunc("/itineraries", itineraryHandler.Build)
	mux.HandleFunc("/circuit", circuitHandler.Current)
	mux.HandleFunc("/circuit/rebuild", circuitHandler.Rebuild)

	return loggingMiddleware(mux)
}

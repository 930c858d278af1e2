package handlers

import (
	"context"
	"log"
	"net/http"

	"itinerary-service/internal/api/dto"
	"itinerary-service/internal/domain"
)

// CircuitManager is the slice of the engine the circuit endpoints need.
type CircuitManager interface {
	Circuit() []domain.CircuitLeg
	RebuildCircuit(ctx context.Context) ([]domain.CircuitLeg, error)
}

type CircuitHandler struct {
	Engine CircuitManager
}

// Current returns the circuit ordering builds are currently using.
func (h *CircuitHandler) Current(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromCircuit(h.Engine.Circuit()))
}

// Rebuild re-optimizes the circuit ordering and persists it. A rebuild that
// cannot improve on the cache still answers 200 with the ordering in effect.
func (h *CircuitHandler) Rebuild(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	legs, err := h.Engine.RebuildCircuit(r.Context())
	if err != nil {
		log.Printf("circuit rebuild failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromCircuit(legs))
}

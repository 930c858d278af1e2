// Package circuit persists the optimized circuit ordering on disk.
package circuit

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"itinerary-service/internal/domain"
)

// FileCircuitStore keeps the circuit ordering in a single JSON file. Writes
// go through a temp file and an atomic rename so a crashed rebuild can never
// leave a half-written cache behind. Reads need no lock: they always see
// either the old file or the fully renamed new one.
type FileCircuitStore struct {
	path string
	mu   sync.Mutex
}

func NewFileCircuitStore(path string) *FileCircuitStore {
	return &FileCircuitStore{path: path}
}

// Load returns the cached circuit, or (nil, nil) when no cache file exists.
func (s *FileCircuitStore) Load() ([]domain.CircuitLeg, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("circuit store: read %q: %w", s.path, err)
	}

	var legs []domain.CircuitLeg
	if err := json.Unmarshal(raw, &legs); err != nil {
		return nil, fmt.Errorf("circuit store: parse %q: %w", s.path, err)
	}
	return legs, nil
}

func (s *FileCircuitStore) Save(legs []domain.CircuitLeg) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(legs, "", "  ")
	if err != nil {
		return fmt.Errorf("circuit store: marshal: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("circuit store: create dir %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "circuit-*.json")
	if err != nil {
		return fmt.Errorf("circuit store: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("circuit store: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("circuit store: close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("circuit store: rename into place: %w", err)
	}
	return nil
}

package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat REAL NOT NULL,
		lng REAL NOT NULL,
		zone TEXT NOT NULL,
		nearest_zone TEXT NOT NULL DEFAULT '',
		difficulty TEXT NOT NULL DEFAULT 'Easy',
		avg_visit_minutes INTEGER NOT NULL DEFAULT 0,
		popularity_rank INTEGER NOT NULL DEFAULT 0,
		rating REAL NOT NULL DEFAULT 0,
		review_count INTEGER NOT NULL DEFAULT 0,
		itinerary_eligible INTEGER NOT NULL DEFAULT 1,
		opening_periods TEXT NOT NULL DEFAULT '[]'
	);
	`

	createZoneIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_places_zone
	ON places(zone);
	`

	statements := []string{
		createPlacesQuery,
		createZoneIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the database with place data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := loadSeed(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed places: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO places (
		id, name, lat, lng, zone, nearest_zone, difficulty,
		avg_visit_minutes, popularity_rank, rating, review_count,
		itinerary_eligible, opening_periods
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed places: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		periods, err := json.Marshal(p.OpeningPeriods)
		if err != nil {
			return fmt.Errorf("seed places: marshal opening periods for %q: %w", p.ID, err)
		}

		_, err = stmt.Exec(
			p.ID, p.Name, p.Coordinates.Lat, p.Coordinates.Lng,
			p.Zone, p.NearestZone, p.Difficulty,
			p.AvgVisitMinutes, p.PopularityRank, p.Rating, p.ReviewCount,
			p.ItineraryEligible, string(periods),
		)
		if err != nil {
			return fmt.Errorf("seed places: insert id=%s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed places: commit tx: %w", err)
	}

	return nil
}

func loadSeed(jsonPath string) ([]PlaceSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed places: read %q: %w", jsonPath, err)
	}

	var data []PlaceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed places: parse json: %w", err)
	}

	rows := make([]PlaceSeed, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return nil, fmt.Errorf("seed places: item at index %d: id cannot be empty", i+1)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("seed places: item %q: name cannot be empty", id)
		}

		item.ID = id
		item.Name = name
		rows = append(rows, item)
	}

	return rows, nil
}

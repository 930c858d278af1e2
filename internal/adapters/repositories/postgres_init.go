package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Initialize the Postgres mirror schema used by the offline seeding tool.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS places (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		zone TEXT NOT NULL,
		nearest_zone TEXT NOT NULL DEFAULT '',
		difficulty TEXT NOT NULL DEFAULT 'Easy',
		avg_visit_minutes INTEGER NOT NULL DEFAULT 0,
		popularity_rank INTEGER NOT NULL DEFAULT 0,
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		review_count INTEGER NOT NULL DEFAULT 0,
		itinerary_eligible BOOLEAN NOT NULL DEFAULT TRUE,
		opening_periods JSONB NOT NULL DEFAULT '[]'
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init postgres schema: create places table: %w", err)
	}

	return nil
}

// Populate the Postgres mirror with place data from a JSON file.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
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
	INSERT INTO places (
		id, name, lat, lng, zone, nearest_zone, difficulty,
		avg_visit_minutes, popularity_rank, rating, review_count,
		itinerary_eligible, opening_periods
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		zone = EXCLUDED.zone,
		nearest_zone = EXCLUDED.nearest_zone,
		difficulty = EXCLUDED.difficulty,
		avg_visit_minutes = EXCLUDED.avg_visit_minutes,
		popularity_rank = EXCLUDED.popularity_rank,
		rating = EXCLUDED.rating,
		review_count = EXCLUDED.review_count,
		itinerary_eligible = EXCLUDED.itinerary_eligible,
		opening_periods = EXCLUDED.opening_periods;
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

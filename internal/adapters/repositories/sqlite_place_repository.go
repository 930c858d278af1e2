package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"itinerary-service/internal/domain"
)

// SQLite-backed implementation of the PlaceRepository port.
type SqlitePlaceRepository struct{ DB *sql.DB }

func NewSqlitePlaceRepository(db *sql.DB) *SqlitePlaceRepository {
	return &SqlitePlaceRepository{DB: db}
}

// Return all places stored in the database.
func (s *SqlitePlaceRepository) ListPlaces(ctx context.Context) ([]*domain.Place, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite place repository: DB is nil")
	}

	query := `
	SELECT
		id, name, lat, lng, zone, nearest_zone, difficulty,
		avg_visit_minutes, popularity_rank, rating, review_count,
		itinerary_eligible, opening_periods
	FROM places
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	places := make([]*domain.Place, 0, 64)
	for rows.Next() {
		var (
			p          domain.Place
			difficulty string
			periodsRaw string
		)
		err := rows.Scan(
			&p.ID, &p.Name, &p.Coords.Lat, &p.Coords.Lng,
			&p.Zone, &p.NearestZone, &difficulty,
			&p.AvgVisitMinutes, &p.PopularityRank, &p.Rating, &p.ReviewCount,
			&p.ItineraryEligible, &periodsRaw,
		)
		if err != nil {
			return nil, fmt.Errorf("list places: scan row: %w", err)
		}

		p.Difficulty = domain.Difficulty(difficulty)
		if periodsRaw != "" {
			if err := json.Unmarshal([]byte(periodsRaw), &p.OpeningPeriods); err != nil {
				return nil, fmt.Errorf("list places: parse opening periods for %q: %w", p.ID, err)
			}
		}

		places = append(places, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: row iteration: %w", err)
	}

	return places, nil
}

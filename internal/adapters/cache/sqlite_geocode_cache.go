package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trip-route-service/internal/domain"
)

// SQLite backed cache mapping place queries to geocoded points.
// Query keys are expected to be consistent (e.g., normalized)
// by the caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// Fetch the cached point for the given query.
func (s *SqliteGeocodeCache) Get(ctx context.Context, query string) (domain.GeoPoint, bool, error) {
	if s.DB == nil {
		return domain.GeoPoint{}, false, errors.New("geocode cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return domain.GeoPoint{}, false, nil
	}

	q := `
	SELECT lat, lon, label
    FROM geocode_cache
    WHERE query = ?;
	`

	var p domain.GeoPoint
	err := s.DB.QueryRowContext(ctx, q, query).Scan(&p.Lat, &p.Lon, &p.Label)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.GeoPoint{}, false, nil
	}
	if err != nil {
		return domain.GeoPoint{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return p, true, nil
}

// Store a query -> point mapping in the cache.
func (s *SqliteGeocodeCache) Put(ctx context.Context, query string, point domain.GeoPoint) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return errors.New("insert geocode cache: empty query key")
	}

	q := `
	INSERT OR REPLACE INTO geocode_cache (
        query,
        lat,
        lon,
        label
    )
    VALUES (?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, query, point.Lat, point.Lon, point.Label); err != nil {
		return fmt.Errorf("insert geocode cache query=%q: %w", query, err)
	}

	return nil
}

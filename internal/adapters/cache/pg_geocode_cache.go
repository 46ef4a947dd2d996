package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trip-route-service/internal/domain"
)

// Postgres backed geocode cache (pgx stdlib driver).
type PGGeocodeCache struct {
	DB *sql.DB
}

func NewPGGeocodeCache(db *sql.DB) *PGGeocodeCache {
	return &PGGeocodeCache{DB: db}
}

// Fetch the cached point for the given query.
func (s *PGGeocodeCache) Get(ctx context.Context, query string) (domain.GeoPoint, bool, error) {
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
    WHERE query = $1;
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
func (s *PGGeocodeCache) Put(ctx context.Context, query string, point domain.GeoPoint) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return errors.New("insert geocode cache: empty query key")
	}

	q := `
	INSERT INTO geocode_cache (query, lat, lon, label)
    VALUES ($1, $2, $3, $4)
	ON CONFLICT (query) DO UPDATE
	SET lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		label = EXCLUDED.label;
	`

	if _, err := s.DB.ExecContext(ctx, q, query, point.Lat, point.Lon, point.Label); err != nil {
		return fmt.Errorf("insert geocode cache query=%q: %w", query, err)
	}

	return nil
}

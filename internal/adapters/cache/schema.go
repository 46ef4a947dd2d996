// Package cache provides geocode cache backends behind the
// ports.GeocodeCache contract. A cache never fails a resolution:
// callers treat errors as misses and log write failures.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the geocode cache table. The DDL is portable
// across the SQLite and Postgres backends.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        query TEXT PRIMARY KEY,
        lat REAL NOT NULL,
        lon REAL NOT NULL,
        label TEXT NOT NULL
    );
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create geocode_cache: %w", err)
	}

	return nil
}

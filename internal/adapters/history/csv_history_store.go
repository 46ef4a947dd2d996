// Package history persists computed routes to an append-only CSV log.
package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"trip-route-service/internal/domain"
)

// Header columns are fixed for the life of the store; schema growth is
// additive-only by convention.
var header = []string{
	"timestamp",
	"origin",
	"destination",
	"vehicle",
	"distance_km",
	"duration_hms",
	"fuel_eff_l",
	"fuel_price_per_l",
	"fuel_needed_l",
	"fuel_cost",
}

// CSVHistoryStore writes one row per successful calculation to a flat
// delimited file. Every append is a complete open-write-close cycle;
// nothing is buffered across calls and rows are never edited or deleted.
type CSVHistoryStore struct {
	Path string
}

func NewCSVHistoryStore(path string) *CSVHistoryStore {
	return &CSVHistoryStore{Path: path}
}

// Append writes exactly one record, creating the file with its header
// row on first use.
func (s *CSVHistoryStore) Append(record domain.HistoryRecord) error {
	if s.Path == "" {
		return errors.New("history store: path is empty")
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("append history: create dir %q: %w", dir, err)
		}
	}

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("append history: open %q: %w", s.Path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("append history: stat %q: %w", s.Path, err)
	}

	w := csv.NewWriter(f)

	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("append history: write header: %w", err)
		}
	}

	row := []string{
		record.Timestamp,
		record.Origin,
		record.Destination,
		record.Vehicle,
		record.DistanceKm,
		record.DurationHMS,
		record.FuelEfficiency,
		record.FuelPricePerL,
		record.FuelNeededLiters,
		record.FuelCost,
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("append history: write row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("append history: flush: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("append history: close %q: %w", s.Path, err)
	}

	return nil
}

// LoadAll returns every record in file (chronological) order.
// A missing file is an empty history, not an error. Malformed rows
// surface as a read error; they are never silently skipped.
func (s *CSVHistoryStore) LoadAll() ([]domain.HistoryRecord, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.HistoryRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load history: open %q: %w", s.Path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("load history: read %q: %w", s.Path, err)
	}

	if len(rows) == 0 {
		return []domain.HistoryRecord{}, nil
	}

	out := make([]domain.HistoryRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("load history: row %d has %d fields, want %d", i+2, len(row), len(header))
		}
		out = append(out, domain.HistoryRecord{
			Timestamp:        row[0],
			Origin:           row[1],
			Destination:      row[2],
			Vehicle:          row[3],
			DistanceKm:       row[4],
			DurationHMS:      row[5],
			FuelEfficiency:   row[6],
			FuelPricePerL:    row[7],
			FuelNeededLiters: row[8],
			FuelCost:         row[9],
		})
	}

	return out, nil
}

package ports

import "trip-route-service/internal/domain"

// Port: append-only persistence for computed routes.
// A record exists if and only if a calculation reached a successful
// route fetch. There is no update or delete; history only grows.
type HistoryStore interface {
	// Append writes exactly one record in a single open-write-close cycle.
	Append(record domain.HistoryRecord) error
	// LoadAll returns every record in file (chronological) order.
	LoadAll() ([]domain.HistoryRecord, error)
}

package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"trip-route-service/internal/domain"
)

// In-process LRU geocode cache, used as the memory tier in front of a
// persistent backend.
type LRUGeocodeCache struct {
	entries *lru.Cache[string, domain.GeoPoint]
}

func NewLRUGeocodeCache(size int) (*LRUGeocodeCache, error) {
	entries, err := lru.New[string, domain.GeoPoint](size)
	if err != nil {
		return nil, fmt.Errorf("new lru geocode cache: %w", err)
	}
	return &LRUGeocodeCache{entries: entries}, nil
}

func (s *LRUGeocodeCache) Get(ctx context.Context, query string) (domain.GeoPoint, bool, error) {
	p, ok := s.entries.Get(query)
	return p, ok, nil
}

func (s *LRUGeocodeCache) Put(ctx context.Context, query string, point domain.GeoPoint) error {
	s.entries.Add(query, point)
	return nil
}

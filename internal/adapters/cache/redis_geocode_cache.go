package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-route-service/internal/domain"
)

const redisKeyPrefix = "geocode:"

// Redis backed geocode cache. Points are stored as JSON values with an
// optional TTL (zero keeps entries until eviction).
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

// Fetch the cached point for the given query.
func (s *RedisGeocodeCache) Get(ctx context.Context, query string) (domain.GeoPoint, bool, error) {
	if s.Client == nil {
		return domain.GeoPoint{}, false, errors.New("geocode cache: redis client is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return domain.GeoPoint{}, false, nil
	}

	raw, err := s.Client.Get(ctx, redisKeyPrefix+query).Result()
	if errors.Is(err, redis.Nil) {
		return domain.GeoPoint{}, false, nil
	}
	if err != nil {
		return domain.GeoPoint{}, false, fmt.Errorf("get geocode cache: redis get: %w", err)
	}

	var p domain.GeoPoint
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return domain.GeoPoint{}, false, fmt.Errorf("get geocode cache: decode value: %w", err)
	}

	return p, true, nil
}

// Store a query -> point mapping in the cache.
func (s *RedisGeocodeCache) Put(ctx context.Context, query string, point domain.GeoPoint) error {
	if s.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return errors.New("insert geocode cache: empty query key")
	}

	raw, err := json.Marshal(point)
	if err != nil {
		return fmt.Errorf("insert geocode cache: encode value: %w", err)
	}

	if err := s.Client.Set(ctx, redisKeyPrefix+query, raw, s.TTL).Err(); err != nil {
		return fmt.Errorf("insert geocode cache query=%q: %w", query, err)
	}

	return nil
}

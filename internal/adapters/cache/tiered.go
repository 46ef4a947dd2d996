package cache

import (
	"context"
	"log"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

// Tiered checks a fast memory tier before a persistent one and
// promotes persistent hits into memory. Either tier may be nil.
type Tiered struct {
	Memory     ports.GeocodeCache
	Persistent ports.GeocodeCache
}

func (t *Tiered) Get(ctx context.Context, query string) (domain.GeoPoint, bool, error) {
	if t.Memory != nil {
		if p, ok, err := t.Memory.Get(ctx, query); err == nil && ok {
			return p, true, nil
		}
	}

	if t.Persistent == nil {
		return domain.GeoPoint{}, false, nil
	}

	p, ok, err := t.Persistent.Get(ctx, query)
	if err != nil || !ok {
		return domain.GeoPoint{}, false, err
	}

	if t.Memory != nil {
		if err := t.Memory.Put(ctx, query, p); err != nil {
			log.Printf("op=cache.tiered promote_failed err=%v", err)
		}
	}

	return p, true, nil
}

func (t *Tiered) Put(ctx context.Context, query string, point domain.GeoPoint) error {
	if t.Memory != nil {
		if err := t.Memory.Put(ctx, query, point); err != nil {
			log.Printf("op=cache.tiered memory_put_failed err=%v", err)
		}
	}

	if t.Persistent == nil {
		return nil
	}
	return t.Persistent.Put(ctx, query, point)
}

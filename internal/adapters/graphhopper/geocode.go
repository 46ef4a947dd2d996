package graphhopper

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/metrics"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

type geocodeResponse struct {
	Hits []struct {
		Point struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"point"`
		Name    string `json:"name"`
		Country string `json:"country"`
		State   string `json:"state"`
	} `json:"hits"`
}

// Resolve maps a free-text place name to coordinates using
// /geocode with a result limit of 1.
//
// Every failure mode (zero hits, error status, transport or decode
// failure) satisfies errors.Is(err, ports.ErrNotFound); callers cannot
// tell them apart, but the cause is tagged for logs and metrics.
func (c *Client) Resolve(ctx context.Context, query string) (_ domain.GeoPoint, err error) {
	defer obs.Time(ctx, "gh.resolve")(&err)

	norm := c.normalize(query)
	if norm == "" {
		// No remote call for blank input.
		return domain.GeoPoint{}, &ports.NotFoundError{Query: query, Cause: ports.CauseEmptyQuery}
	}

	if c.cache != nil {
		point, ok, cacheErr := c.cache.Get(ctx, norm)
		if cacheErr != nil {
			log.Printf("op=gh.resolve cache_get_failed tier=%s err=%v", c.cacheTier, cacheErr)
		} else if ok {
			metrics.GeocodeCacheHits.WithLabelValues(c.cacheTier).Inc()
			return point, nil
		}
		metrics.GeocodeCacheMisses.WithLabelValues(c.cacheTier).Inc()
	}

	req, err := c.newRequest(ctx, c.baseURL+"/geocode")
	if err != nil {
		return domain.GeoPoint{}, &ports.NotFoundError{Query: norm, Cause: ports.CauseTransport, Err: err}
	}

	q := req.URL.Query()
	q.Set("q", norm)
	q.Set("limit", "1")
	q.Set("key", c.apiKey)
	req.URL.RawQuery = q.Encode()

	start := time.Now()
	resp, err := c.do(ctx, req)
	metrics.UpstreamRequestDuration.WithLabelValues("geocode").Observe(time.Since(start).Seconds())
	if err != nil {
		cause := ports.CauseTransport
		var he *httpStatusError
		if errors.As(err, &he) {
			cause = ports.CauseStatus
		}
		metrics.UpstreamRequestsTotal.WithLabelValues("geocode", string(cause)).Inc()
		return domain.GeoPoint{}, &ports.NotFoundError{Query: norm, Cause: cause, Err: err}
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("geocode", string(ports.CauseDecode)).Inc()
		return domain.GeoPoint{}, &ports.NotFoundError{Query: norm, Cause: ports.CauseDecode, Err: err}
	}

	if len(decoded.Hits) == 0 {
		metrics.UpstreamRequestsTotal.WithLabelValues("geocode", string(ports.CauseNoResults)).Inc()
		return domain.GeoPoint{}, &ports.NotFoundError{Query: norm, Cause: ports.CauseNoResults}
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("geocode", "ok").Inc()

	hit := decoded.Hits[0]
	point := domain.GeoPoint{
		Lat:   hit.Point.Lat,
		Lon:   hit.Point.Lng,
		Label: domain.ComposeLabel(hit.Name, hit.State, hit.Country, norm),
	}

	if c.cache != nil {
		if cacheErr := c.cache.Put(ctx, norm, point); cacheErr != nil {
			log.Printf("op=gh.resolve cache_put_failed tier=%s err=%v", c.cacheTier, cacheErr)
		}
	}

	return point, nil
}

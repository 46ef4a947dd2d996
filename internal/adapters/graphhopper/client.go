// Package graphhopper implements the Geocoder and RouteProvider ports
// against the GraphHopper web API.
package graphhopper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"trip-route-service/internal/ports"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// Client talks to the GraphHopper geocoding and routing endpoints.
//
// It coordinates:
//   - Query normalization
//   - An optional geocode cache (checked before, populated after a call)
//   - Client-side rate limiting
//
// Every remote operation is a single attempt; failures are surfaced
// immediately, never retried. The client is safe for concurrent use.
type Client struct {
	session   *http.Client
	apiKey    string
	baseURL   string
	limiter   *rate.Limiter
	cache     ports.GeocodeCache
	cacheTier string
}

// Option configures a Client.
type Option func(*Client)

// WithCache attaches a geocode cache. The tier name labels cache metrics.
func WithCache(cache ports.GeocodeCache, tier string) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTier = tier
	}
}

// WithRateLimit throttles upstream calls client-side.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithHTTPClient replaces the underlying HTTP client (tests).
func WithHTTPClient(session *http.Client) Option {
	return func(c *Client) {
		c.session = session
	}
}

func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("graphhopper api key is empty")
	}

	c := &Client{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (c *Client) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (c *Client) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	return req, nil
}

// do performs one request, waiting for the rate limiter first.
// Responses with status >= 400 are drained into an httpStatusError.
func (c *Client) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

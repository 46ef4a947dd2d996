package graphhopper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/metrics"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

type routeResponse struct {
	Paths []struct {
		Distance     float64 `json:"distance"` // meters
		Time         int64   `json:"time"`     // milliseconds
		Instructions []struct {
			Text     string  `json:"text"`
			Distance float64 `json:"distance"` // meters
		} `json:"instructions"`
	} `json:"paths"`
	Message string `json:"message"`
}

// FetchRoute requests a route between two resolved points using /route.
// Coordinates, not labels, are sent upstream. On failure it returns a
// *ports.RoutingError carrying the service message when one was given.
func (c *Client) FetchRoute(
	ctx context.Context,
	origin, destination domain.GeoPoint,
	mode domain.TravelMode,
) (_ *domain.RouteResult, err error) {
	defer obs.Time(ctx, "gh.route")(&err)

	req, err := c.newRequest(ctx, c.baseURL+"/route")
	if err != nil {
		return nil, &ports.RoutingError{Message: "request failed", Err: err}
	}

	q := req.URL.Query()
	q.Set("key", c.apiKey)
	q.Set("vehicle", string(mode))
	q.Add("point", formatPoint(origin))
	q.Add("point", formatPoint(destination))
	req.URL.RawQuery = q.Encode()

	start := time.Now()
	resp, err := c.do(ctx, req)
	metrics.UpstreamRequestDuration.WithLabelValues("route").Observe(time.Since(start).Seconds())
	if err != nil {
		var he *httpStatusError
		if errors.As(err, &he) {
			metrics.UpstreamRequestsTotal.WithLabelValues("route", string(ports.CauseStatus)).Inc()
			return nil, &ports.RoutingError{Message: serviceMessage(he.Body), Err: err}
		}
		metrics.UpstreamRequestsTotal.WithLabelValues("route", string(ports.CauseTransport)).Inc()
		return nil, &ports.RoutingError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	var decoded routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("route", string(ports.CauseDecode)).Inc()
		return nil, &ports.RoutingError{Message: "unparseable response", Err: err}
	}

	if len(decoded.Paths) == 0 {
		metrics.UpstreamRequestsTotal.WithLabelValues("route", string(ports.CauseNoResults)).Inc()
		msg := decoded.Message
		if msg == "" {
			msg = "unknown error"
		}
		return nil, &ports.RoutingError{Message: msg}
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("route", "ok").Inc()

	path := decoded.Paths[0]
	steps := make([]domain.RouteStep, 0, len(path.Instructions))
	for _, in := range path.Instructions {
		steps = append(steps, domain.RouteStep{
			Text:           in.Text,
			DistanceMeters: in.Distance,
		})
	}

	return &domain.RouteResult{
		Origin:         origin,
		Destination:    destination,
		Mode:           mode,
		DistanceMeters: path.Distance,
		DurationMillis: path.Time,
		Steps:          steps,
	}, nil
}

// formatPoint renders a point parameter as "<lat>,<lng>".
func formatPoint(p domain.GeoPoint) string {
	return fmt.Sprintf("%s,%s",
		strconv.FormatFloat(p.Lat, 'f', -1, 64),
		strconv.FormatFloat(p.Lon, 'f', -1, 64),
	)
}

// serviceMessage extracts the "message" field from an error body,
// falling back to "unknown error" when none is present.
func serviceMessage(body string) string {
	var decoded struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &decoded); err == nil && decoded.Message != "" {
		return decoded.Message
	}
	return "unknown error"
}

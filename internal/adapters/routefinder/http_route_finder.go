package routefinder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/platform/obs"
	"strings"
	"time"
)

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type routeRequest struct {
	Start point `json:"start"`
	End   point `json:"end"`
}

type routeResponse struct {
	Start *point `json:"start"`
	Moves []int  `json:"moves"`
}

// HTTPRouteFinder implements RouteFinder against a remote route-finding
// engine exposing POST {baseURL}/route.
//
// Transient failures (network errors, 429 and 5xx responses) are retried with
// exponential backoff. The finder is safe for concurrent use.
type HTTPRouteFinder struct {
	client      *http.Client
	baseURL     string
	maxAttempts int
	backoff     time.Duration
}

func NewHTTPRouteFinder(baseURL string, timeout time.Duration) (*HTTPRouteFinder, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("route finder base url is empty")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &HTTPRouteFinder{
		client:      &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		maxAttempts: 4,
		backoff:     200 * time.Millisecond,
	}, nil
}

func (f *HTTPRouteFinder) ShortestRoute(
	ctx context.Context,
	spec domain.PathSpecification,
) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "routefinder.http.ShortestRoute")(&err)

	payload, err := json.Marshal(routeRequest{
		Start: point{X: spec.Start.X, Y: spec.Start.Y},
		End:   point{X: spec.End.X, Y: spec.End.Y},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal route request: %w", err)
	}

	endpoint := f.baseURL + "/route"
	resp, err := f.doWithRetry(ctx, func() (*http.Request, error) {
		return f.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("route request %s: %w", spec, err)
	}
	defer resp.Body.Close()

	var decoded routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode route response %s: %w", spec, err)
	}

	start := spec.Start
	if decoded.Start != nil {
		start = domain.NewCoordinate(decoded.Start.X, decoded.Start.Y)
	}
	if start != spec.Start {
		return nil, fmt.Errorf("route response %s: starts at %s", spec, start)
	}

	route := domain.NewRoute(start)
	for i, code := range decoded.Moves {
		d, err := domain.DirectionFromCode(code)
		if err != nil {
			return nil, fmt.Errorf("route response %s: move %d: %w", spec, i, err)
		}
		route.Add(d)
	}
	if end := route.End(); end != spec.End {
		return nil, fmt.Errorf("route response %s: ends at %s", spec, end)
	}

	return route, nil
}

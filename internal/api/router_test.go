package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"pickup-route-service/internal/api/dto"
	"pickup-route-service/internal/domain"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eastRoute(start domain.Coordinate, n int) *domain.Route {
	r := domain.NewRoute(start)
	for i := 0; i < n; i++ {
		r.Add(domain.East)
	}
	return r
}

// twoStopRouteSet: Distances[0][1]=3, StartDistances[0]=1, EndDistances[1]=4.
func twoStopRouteSet(t *testing.T) *domain.RouteSet {
	t.Helper()

	stops := []domain.Coordinate{{X: 1, Y: 0}, {X: 4, Y: 0}}
	spec := domain.NewPathSpecification(domain.Coordinate{}, domain.Coordinate{X: 8, Y: 0})
	dist := [][]int{{0, 3}, {3, 0}}
	startDist := []int{1, 4}
	endDist := []int{7, 4}

	stopToStop := make([][]*domain.Route, 2)
	startToStop := make([]*domain.Route, 2)
	stopToEnd := make([]*domain.Route, 2)
	for i := range stops {
		stopToStop[i] = make([]*domain.Route, 2)
		for j := range stops {
			stopToStop[i][j] = eastRoute(stops[i], dist[i][j])
		}
		startToStop[i] = eastRoute(spec.Start, startDist[i])
		stopToEnd[i] = eastRoute(stops[i], endDist[i])
	}

	rs := domain.NewRouteSet(stops, spec)
	require.NoError(t, rs.SetRoutes(stopToStop, startToStop, stopToEnd))
	return rs
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := NewRouter(twoStopRouteSet(t))

	rec := serve(h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	_, err := uuid.Parse(rec.Header().Get("X-Request-ID"))
	assert.NoError(t, err)
}

func TestRequestIDIsPropagated(t *testing.T) {
	h := NewRouter(twoStopRouteSet(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestListStopsMatchesRouteSet(t *testing.T) {
	h := NewRouter(twoStopRouteSet(t))

	rec := serve(h, http.MethodGet, "/stops", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ListStopsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []dto.StopResponse{{Index: 1, X: 1, Y: 0}, {Index: 2, X: 4, Y: 0}}, res.Stops)
}

func TestListStopsWithoutRouteSet(t *testing.T) {
	h := NewRouter(nil)

	rec := serve(h, http.MethodGet, "/stops", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDistances(t *testing.T) {
	h := NewRouter(twoStopRouteSet(t))

	rec := serve(h, http.MethodGet, "/distances", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"distances":[[0,3],[3,0]],"start_distances":[1,4],"end_distances":[7,4]}`,
		rec.Body.String())
}

func TestDistancesUnassembled(t *testing.T) {
	h := NewRouter(domain.NewRouteSet(nil, domain.PathSpecification{}))

	rec := serve(h, http.MethodGet, "/distances", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPlan(t *testing.T) {
	h := NewRouter(twoStopRouteSet(t))

	rec := serve(h, http.MethodPost, "/plans", `{"order":[0,1]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 10, res.TotalLength)
	assert.True(t, strings.HasPrefix(res.ActionPlan, "10;\n0, 0;\n0;\ntake product #1;\n"))
	assert.True(t, strings.HasSuffix(res.ActionPlan, "take product #2;\n0;\n0;\n0;\n0;\n"))
}

func TestPlanRejectsBadRequests(t *testing.T) {
	h := NewRouter(twoStopRouteSet(t))

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{"order":`},
		{name: "unknown field", body: `{"order":[0],"hub":"x"}`},
		{name: "two objects", body: `{"order":[0]}{"order":[1]}`},
		{name: "empty order", body: `{"order":[]}`},
		{name: "out of range", body: `{"order":[0,2]}`},
		{name: "negative index", body: `{"order":[-1]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, http.MethodPost, "/plans", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := NewRouter(twoStopRouteSet(t))

	rec := serve(h, http.MethodGet, "/plans", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestNotFoundGetsRequestID(t *testing.T) {
	h := NewRouter(twoStopRouteSet(t))

	rec := serve(h, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	_, err := uuid.Parse(rec.Header().Get("X-Request-ID"))
	assert.NoError(t, err)
}

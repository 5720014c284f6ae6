package routefinder

import (
	"context"
	"fmt"
	"pickup-route-service/internal/domain"
	"sync"
)

// MockRouteFinder serves routes from a fixed table and counts calls.
type MockRouteFinder struct {
	mu     sync.Mutex
	routes map[domain.PathSpecification]*domain.Route
	calls  int
}

func NewMockRouteFinder(routes map[domain.PathSpecification]*domain.Route) *MockRouteFinder {
	m := make(map[domain.PathSpecification]*domain.Route, len(routes))
	for spec, r := range routes {
		m[spec] = r
	}
	return &MockRouteFinder{routes: m}
}

func (m *MockRouteFinder) ShortestRoute(ctx context.Context, spec domain.PathSpecification) (*domain.Route, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	r, ok := m.routes[spec]
	if !ok {
		return nil, fmt.Errorf("missing route %s", spec)
	}

	return r.Clone(), nil
}

func (m *MockRouteFinder) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

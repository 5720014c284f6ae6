package api

import (
	"net/http"
	"pickup-route-service/internal/api/handlers"
	"pickup-route-service/internal/domain"

	"github.com/gorilla/mux"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// rs must already be assembled; every endpoint reads the same route set.
func NewRouter(rs *domain.RouteSet) http.Handler {
	r := mux.NewRouter()

	stopHandler := &handlers.StopHandler{RouteSet: rs}
	planHandler := &handlers.PlanHandler{RouteSet: rs}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	stopHandler.RegisterRoutes(r)
	planHandler.RegisterRoutes(r)

	// Wrap the whole router so unmatched (404/405) requests are logged too.
	return requestIDMiddleware(loggingMiddleware(r))
}

package handlers

import (
	"net/http"
	"pickup-route-service/internal/api/dto"
	"pickup-route-service/internal/domain"

	"github.com/gorilla/mux"
)

// StopHandler lists the stops of the route set that /plans renders against,
// so the reported numbering always matches the plan annotations.
type StopHandler struct {
	RouteSet *domain.RouteSet
}

func (h *StopHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/stops", h.List).Methods(http.MethodGet)
}

func (h *StopHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.RouteSet == nil {
		writeError(w, r, http.StatusServiceUnavailable, "route set is not assembled")
		return
	}

	res := dto.ListStopsResponse{
		Stops: make([]dto.StopResponse, 0, h.RouteSet.Len()),
	}
	for i, s := range h.RouteSet.Stops {
		res.Stops = append(res.Stops, dto.StopResponse{
			Index: i + 1,
			X:     s.X,
			Y:     s.Y,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

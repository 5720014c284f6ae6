package handlers

import (
	"errors"
	"log"
	"net/http"
	"pickup-route-service/internal/api/dto"
	"pickup-route-service/internal/domain"

	"github.com/gorilla/mux"
)

// PlanHandler serves distance tables and renders action plans from an
// assembled route set. The route set is read-only, so the handler is safe
// for concurrent requests.
type PlanHandler struct {
	RouteSet *domain.RouteSet
}

func (h *PlanHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/distances", h.Distances).Methods(http.MethodGet)
	router.HandleFunc("/plans", h.Plan).Methods(http.MethodPost)
}

func (h *PlanHandler) Distances(w http.ResponseWriter, r *http.Request) {
	if h.RouteSet == nil || !h.RouteSet.Assembled() {
		writeError(w, r, http.StatusServiceUnavailable, "route set is not assembled")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DistancesResponse{
		Distances:      h.RouteSet.Distances,
		StartDistances: h.RouteSet.StartDistances,
		EndDistances:   h.RouteSet.EndDistances,
	})
}

// Plan renders the action plan for the visiting order in the request body.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if h.RouteSet == nil {
		writeError(w, r, http.StatusServiceUnavailable, "route set is not assembled")
		return
	}

	total, err := h.RouteSet.ActionPlanLength(req.Order)
	if err != nil {
		writePlanError(w, r, err)
		return
	}
	plan, err := h.RouteSet.ActionPlan(req.Order)
	if err != nil {
		writePlanError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PlanResponse{TotalLength: total, ActionPlan: plan})
}

func writePlanError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyOrder), errors.Is(err, domain.ErrStopIndexOutOfRange):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotAssembled):
		writeError(w, r, http.StatusServiceUnavailable, "route set is not assembled")
	default:
		log.Printf("render action plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

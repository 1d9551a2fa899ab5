package http

import (
	"net/http"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/service"

	"github.com/gorilla/mux"
)

type PlannerHandler struct {
	planner service.PlannerService
}

func NewPlannerHandler(planner service.PlannerService) *PlannerHandler {
	return &PlannerHandler{planner: planner}
}

func registerPlannerRoutes(r *mux.Router, h *PlannerHandler) {
	r.HandleFunc("/planner", h.Events).Methods(http.MethodGet)
}

// Events lists calendar events, optionally for one car and a from/to window (yyyy-mm-dd)
func (h *PlannerHandler) Events(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := service.PlannerQuery{CarID: params.Get("car_id")}

	var err error
	if q.From, err = dateParam(params.Get("from")); err != nil {
		badRequest(w, "from: "+err.Error())
		return
	}
	if q.To, err = dateParam(params.Get("to")); err != nil {
		badRequest(w, "to: "+err.Error())
		return
	}

	events, err := h.planner.Events(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if events == nil {
		events = []service.PlannerEvent{}
	}
	writeJSON(w, http.StatusOK, events)
}

func dateParam(raw string) (domain.Date, error) {
	if raw == "" {
		return domain.Date{}, nil
	}
	return domain.ParseDate(raw)
}

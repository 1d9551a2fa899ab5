package http

import (
	"net/http"
	"time"

	"rentdesk-backoffice/internal/service"

	"github.com/gorilla/mux"
)

const defaultReportPeriodDays = 30

type ReportHandler struct {
	reports service.ReportService
	now     func() time.Time
}

func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports, now: time.Now}
}

func registerReportRoutes(r *mux.Router, h *ReportHandler) {
	r.HandleFunc("/reports/summary", h.Summary).Methods(http.MethodGet)
	r.HandleFunc("/reports/revenue", h.Revenue).Methods(http.MethodGet)
	r.HandleFunc("/reports/cars", h.Cars).Methods(http.MethodGet)
	r.HandleFunc("/reports/customers", h.Customers).Methods(http.MethodGet)
}

func periodDays(r *http.Request) (int, bool) {
	days, err := intParam(r, "period_days", defaultReportPeriodDays)
	if err != nil || days <= 0 {
		return 0, false
	}
	return days, true
}

func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	days, ok := periodDays(r)
	if !ok {
		badRequest(w, "period_days must be a positive integer")
		return
	}
	report, err := h.reports.Summary(r.Context(), days, h.now())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	days, ok := periodDays(r)
	if !ok {
		badRequest(w, "period_days must be a positive integer")
		return
	}
	report, err := h.reports.Revenue(r.Context(), days, h.now())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) Cars(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reports.Cars(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if rows == nil {
		rows = []service.CarReportRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *ReportHandler) Customers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reports.Customers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if rows == nil {
		rows = []service.CustomerReportRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

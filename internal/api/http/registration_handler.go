package http

import (
	"net/http"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/service"

	"github.com/gorilla/mux"
)

type RegistrationHandler struct {
	registrations service.VehicleRegistrationService
	pageSize      int
	windowDays    int
}

func NewRegistrationHandler(registrations service.VehicleRegistrationService, pageSize, windowDays int) *RegistrationHandler {
	if windowDays <= 0 {
		windowDays = 30
	}
	return &RegistrationHandler{registrations: registrations, pageSize: pageSize, windowDays: windowDays}
}

func registerRegistrationRoutes(r *mux.Router, h *RegistrationHandler) {
	r.HandleFunc("/vehicle-registrations", h.List).Methods(http.MethodGet)
	r.HandleFunc("/vehicle-registrations", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/vehicle-registrations/expiring", h.Expiring).Methods(http.MethodGet)
	r.HandleFunc("/vehicle-registrations/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/vehicle-registrations/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/vehicle-registrations/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r, h.pageSize)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	page, err := h.registrations.ListRegistrations(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *RegistrationHandler) Get(w http.ResponseWriter, r *http.Request) {
	reg, err := h.registrations.GetRegistration(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (h *RegistrationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var reg domain.VehicleRegistration
	if err := decodeJSON(r, &reg); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	if err := h.registrations.CreateRegistration(r.Context(), &reg); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, reg)
}

func (h *RegistrationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var reg domain.VehicleRegistration
	if err := decodeJSON(r, &reg); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	reg.ID = mux.Vars(r)["id"]
	if err := h.registrations.UpdateRegistration(r.Context(), &reg); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (h *RegistrationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.registrations.DeleteRegistration(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Expiring lists documents due within window_days (default from config), soonest first
func (h *RegistrationHandler) Expiring(w http.ResponseWriter, r *http.Request) {
	window, err := intParam(r, "window_days", h.windowDays)
	if err != nil || window < 0 {
		badRequest(w, "window_days must be a non-negative integer")
		return
	}
	items, err := h.registrations.ListExpiring(r.Context(), domain.Today(), window)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.ExpiryItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

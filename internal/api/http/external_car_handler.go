package http

import (
	"net/http"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/service"

	"github.com/gorilla/mux"
)

// ExternalCarHandler serves the partner-agency fleet
type ExternalCarHandler struct {
	cars     service.ExternalCarService
	pageSize int
}

func NewExternalCarHandler(cars service.ExternalCarService, pageSize int) *ExternalCarHandler {
	return &ExternalCarHandler{cars: cars, pageSize: pageSize}
}

func registerExternalCarRoutes(r *mux.Router, h *ExternalCarHandler) {
	r.HandleFunc("/external-cars", h.List).Methods(http.MethodGet)
	r.HandleFunc("/external-cars", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/external-cars/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/external-cars/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/external-cars/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *ExternalCarHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r, h.pageSize)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	page, err := h.cars.ListExternalCars(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *ExternalCarHandler) Get(w http.ResponseWriter, r *http.Request) {
	car, err := h.cars.GetExternalCar(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *ExternalCarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var car domain.ExternalCar
	if err := decodeJSON(r, &car); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	if err := h.cars.CreateExternalCar(r.Context(), &car); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, car)
}

func (h *ExternalCarHandler) Update(w http.ResponseWriter, r *http.Request) {
	var car domain.ExternalCar
	if err := decodeJSON(r, &car); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	car.ID = mux.Vars(r)["id"]
	if err := h.cars.UpdateExternalCar(r.Context(), &car); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *ExternalCarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.cars.DeleteExternalCar(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

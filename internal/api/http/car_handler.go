package http

import (
	"net/http"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/service"

	"github.com/gorilla/mux"
)

type CarHandler struct {
	cars      service.CarService
	contracts service.ContractService
	pageSize  int
}

func NewCarHandler(cars service.CarService, contracts service.ContractService, pageSize int) *CarHandler {
	return &CarHandler{cars: cars, contracts: contracts, pageSize: pageSize}
}

func registerCarRoutes(r *mux.Router, h *CarHandler) {
	r.HandleFunc("/cars", h.List).Methods(http.MethodGet)
	r.HandleFunc("/cars", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/cars/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/cars/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/cars/{id}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/cars/{id}/booked-ranges", h.BookedRanges).Methods(http.MethodGet)
	r.HandleFunc("/cars/{id}/contracts", h.Contracts).Methods(http.MethodGet)
}

func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r, h.pageSize)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	page, err := h.cars.ListCars(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	car, err := h.cars.GetCar(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var car domain.Car
	if err := decodeJSON(r, &car); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	if err := h.cars.CreateCar(r.Context(), &car); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, car)
}

func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	var car domain.Car
	if err := decodeJSON(r, &car); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	car.ID = mux.Vars(r)["id"]
	if err := h.cars.UpdateCar(r.Context(), &car); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.cars.DeleteCar(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BookedRanges lists every booked period of the car, whatever the contract status
func (h *CarHandler) BookedRanges(w http.ResponseWriter, r *http.Request) {
	ranges, err := h.contracts.BookedRanges(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	if ranges == nil {
		ranges = []domain.BookingPeriod{}
	}
	writeJSON(w, http.StatusOK, ranges)
}

func (h *CarHandler) Contracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.contracts.ListContractsByCar(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	if contracts == nil {
		contracts = []domain.Contract{}
	}
	writeJSON(w, http.StatusOK, contracts)
}

package http

import (
	"net/http"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/service"

	"github.com/gorilla/mux"
)

type CustomerHandler struct {
	customers service.CustomerService
	contracts service.ContractService
	pageSize  int
}

func NewCustomerHandler(customers service.CustomerService, contracts service.ContractService, pageSize int) *CustomerHandler {
	return &CustomerHandler{customers: customers, contracts: contracts, pageSize: pageSize}
}

func registerCustomerRoutes(r *mux.Router, h *CustomerHandler) {
	r.HandleFunc("/customers", h.List).Methods(http.MethodGet)
	r.HandleFunc("/customers", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/customers/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/customers/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/customers/{id}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/customers/{id}/contracts", h.Contracts).Methods(http.MethodGet)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r, h.pageSize)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	page, err := h.customers.ListCustomers(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customers.GetCustomer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := decodeJSON(r, &customer); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	if err := h.customers.CreateCustomer(r.Context(), &customer); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := decodeJSON(r, &customer); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	customer.ID = mux.Vars(r)["id"]
	if err := h.customers.UpdateCustomer(r.Context(), &customer); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.customers.DeleteCustomer(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomerHandler) Contracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.contracts.ListContractsByCustomer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	if contracts == nil {
		contracts = []domain.Contract{}
	}
	writeJSON(w, http.StatusOK, contracts)
}

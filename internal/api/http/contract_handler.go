package http

import (
	"net/http"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/service"

	"github.com/gorilla/mux"
)

type ContractHandler struct {
	contracts service.ContractService
	pageSize  int
}

type createContractResponse struct {
	Contract *domain.Contract `json:"contract"`
	Warnings []string         `json:"warnings,omitempty"`
}

func NewContractHandler(contracts service.ContractService, pageSize int) *ContractHandler {
	return &ContractHandler{contracts: contracts, pageSize: pageSize}
}

func registerContractRoutes(r *mux.Router, h *ContractHandler) {
	r.HandleFunc("/contracts", h.List).Methods(http.MethodGet)
	r.HandleFunc("/contracts", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/contracts/quote", h.Quote).Methods(http.MethodPost)
	r.HandleFunc("/contracts/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/contracts/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/contracts/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	base, err := listQuery(r, h.pageSize)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	params := r.URL.Query()
	q := service.ContractListQuery{
		Status:     domain.ContractStatus(params.Get("status")),
		CarID:      params.Get("car_id"),
		CustomerID: params.Get("customer_id"),
		Query:      base.Query,
		Page:       base.Page,
		PageSize:   base.PageSize,
	}
	if q.Status != "" && !q.Status.Valid() {
		badRequest(w, "unknown status "+string(q.Status))
		return
	}
	page, err := h.contracts.ListContracts(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.contracts.GetContract(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Quote prices a contract form without saving it
func (h *ContractHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var in service.DraftInput
	if err := decodeJSON(r, &in); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	quote, err := h.contracts.Quote(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.DraftInput
	if err := decodeJSON(r, &in); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	c, warnings, err := h.contracts.CreateContract(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createContractResponse{Contract: c, Warnings: warnings})
}

func (h *ContractHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in service.DraftInput
	if err := decodeJSON(r, &in); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	c, err := h.contracts.UpdateContract(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ContractHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contracts.DeleteContract(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

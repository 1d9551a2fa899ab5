package http

import (
	"net/http"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/service"

	"github.com/gorilla/mux"
)

type CompanyHandler struct {
	company service.CompanyService
}

func NewCompanyHandler(company service.CompanyService) *CompanyHandler {
	return &CompanyHandler{company: company}
}

func registerCompanyRoutes(r *mux.Router, h *CompanyHandler) {
	r.HandleFunc("/company", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/company", h.Save).Methods(http.MethodPut)
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	company, err := h.company.GetCompany(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

// Save creates or replaces the single company record
func (h *CompanyHandler) Save(w http.ResponseWriter, r *http.Request) {
	var company domain.CompanyDetails
	if err := decodeJSON(r, &company); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	if err := h.company.SaveCompany(r.Context(), &company); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

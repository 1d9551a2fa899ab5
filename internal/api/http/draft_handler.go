package http

import (
	"context"
	"net/http"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/service"

	"github.com/gorilla/mux"
)

// DraftHandler exposes the server-held contract form sessions
type DraftHandler struct {
	drafts *service.DraftRegistry
}

type openDraftRequest struct {
	// ContractID opens the form on an existing contract instead of a blank one
	ContractID string `json:"contract_id,omitempty"`
	service.DraftInput
}

type selectCarRequest struct {
	CarID string `json:"car_id"`
}

type draftResponse struct {
	ID    string               `json:"id"`
	Draft domain.ContractDraft `json:"draft"`
}

type submitDraftResponse struct {
	ID       string               `json:"id"`
	Contract *domain.Contract     `json:"contract"`
	Draft    domain.ContractDraft `json:"draft"`
}

func NewDraftHandler(drafts *service.DraftRegistry) *DraftHandler {
	return &DraftHandler{drafts: drafts}
}

func registerDraftRoutes(r *mux.Router, h *DraftHandler) {
	r.HandleFunc("/contract-drafts", h.Open).Methods(http.MethodPost)
	r.HandleFunc("/contract-drafts/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/contract-drafts/{id}", h.Patch).Methods(http.MethodPatch)
	r.HandleFunc("/contract-drafts/{id}", h.Discard).Methods(http.MethodDelete)
	r.HandleFunc("/contract-drafts/{id}/car", h.SelectCar).Methods(http.MethodPut)
	r.HandleFunc("/contract-drafts/{id}/submit", h.Submit).Methods(http.MethodPost)
}

func (h *DraftHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req openDraftRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	var (
		id     string
		editor *service.DraftEditor
	)
	if req.ContractID != "" {
		var err error
		id, editor, err = h.drafts.OpenForContract(r.Context(), req.ContractID)
		if err != nil {
			writeError(w, r, err)
			return
		}
	} else {
		id, editor = h.drafts.Open()
	}

	draft, err := edit(r.Context(), editor, req.DraftInput)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, draftResponse{ID: id, Draft: draft})
}

func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	editor, err := h.drafts.Get(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse{ID: id, Draft: editor.Draft()})
}

// Patch applies a partial edit; a car_id in the body also selects the car
func (h *DraftHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	editor, err := h.drafts.Get(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var in service.DraftInput
	if err := decodeJSON(r, &in); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	draft, err := edit(r.Context(), editor, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse{ID: id, Draft: draft})
}

func (h *DraftHandler) SelectCar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	editor, err := h.drafts.Get(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req selectCarRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	if req.CarID == "" {
		writeError(w, r, &service.ValidationError{Fields: []service.FieldError{{Field: "car_id", Message: "is required"}}})
		return
	}
	draft, err := editor.SelectCar(r.Context(), req.CarID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse{ID: id, Draft: draft})
}

func (h *DraftHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	editor, err := h.drafts.Get(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	c, err := editor.Submit(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, submitDraftResponse{ID: id, Contract: c, Draft: editor.Draft()})
}

func (h *DraftHandler) Discard(w http.ResponseWriter, r *http.Request) {
	if err := h.drafts.Discard(mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func edit(ctx context.Context, editor *service.DraftEditor, in service.DraftInput) (domain.ContractDraft, error) {
	draft := editor.Apply(in)
	if in.CarID == nil {
		return draft, nil
	}
	return editor.SelectCar(ctx, *in.CarID)
}

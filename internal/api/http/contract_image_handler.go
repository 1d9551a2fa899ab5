package http

import (
	"net/http"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/service"

	"github.com/gorilla/mux"
)

// ContractImageHandler serves the photos attached to a contract. Payloads are opaque base64.
type ContractImageHandler struct {
	images service.ContractImageService
}

func NewContractImageHandler(images service.ContractImageService) *ContractImageHandler {
	return &ContractImageHandler{images: images}
}

func registerContractImageRoutes(r *mux.Router, h *ContractImageHandler) {
	r.HandleFunc("/contracts/{id}/images", h.List).Methods(http.MethodGet)
	r.HandleFunc("/contracts/{id}/images", h.Add).Methods(http.MethodPost)
	r.HandleFunc("/contract-images/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/contract-images/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *ContractImageHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.images.ListImages(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	if images == nil {
		images = []domain.ContractImage{}
	}
	writeJSON(w, http.StatusOK, images)
}

func (h *ContractImageHandler) Add(w http.ResponseWriter, r *http.Request) {
	var image domain.ContractImage
	if err := decodeJSON(r, &image); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	image.ContractID = mux.Vars(r)["id"]
	if err := h.images.AddImage(r.Context(), &image); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, image)
}

func (h *ContractImageHandler) Update(w http.ResponseWriter, r *http.Request) {
	var image domain.ContractImage
	if err := decodeJSON(r, &image); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	image.ID = mux.Vars(r)["id"]
	if err := h.images.UpdateImage(r.Context(), &image); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, image)
}

func (h *ContractImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.images.DeleteImage(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"rentdesk-backoffice/internal/logger"
	"rentdesk-backoffice/internal/repository"
	"rentdesk-backoffice/internal/service"
)

var errUnauthenticated = errors.New("unauthenticated")

type errorResponse struct {
	Error   string               `json:"error"`
	Details []service.FieldError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// statusFor maps service and repository errors onto HTTP status codes
func statusFor(err error) int {
	var (
		validation *service.ValidationError
		conflict   *service.AvailabilityConflictError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, service.ErrDraftNotFound):
		return http.StatusNotFound
	case errors.As(err, &conflict), errors.Is(err, service.ErrSuperseded), errors.Is(err, service.ErrBookingsPending),
		errors.Is(err, service.ErrSubmitInFlight):
		return http.StatusConflict
	case errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	body := errorResponse{Error: err.Error()}

	var validation *service.ValidationError
	if errors.As(err, &validation) {
		body.Details = validation.Fields
	}
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		body.Error = "internal server error"
	}
	writeJSON(w, status, body)
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}

// decodeJSON reads the request body into v; an empty body leaves v untouched
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return n, nil
}

func listQuery(r *http.Request, defaultPageSize int) (service.ListQuery, error) {
	page, err := intParam(r, "page", 1)
	if err != nil {
		return service.ListQuery{}, err
	}
	size, err := intParam(r, "page_size", defaultPageSize)
	if err != nil {
		return service.ListQuery{}, err
	}
	return service.ListQuery{Query: r.URL.Query().Get("q"), Page: page, PageSize: size}, nil
}

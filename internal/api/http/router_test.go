package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/repository"
	"rentdesk-backoffice/internal/security"
	"rentdesk-backoffice/internal/service"
	"rentdesk-backoffice/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func serve(t *testing.T, router http.Handler, method, path, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealthz(t *testing.T) {
	t.Run("Serving", func(t *testing.T) {
		router := NewRouter(Services{}, RouterOptions{Health: stubPinger{}})
		rec := serve(t, router, http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
	})

	t.Run("DatabaseDown", func(t *testing.T) {
		router := NewRouter(Services{}, RouterOptions{Health: stubPinger{err: errors.New("connection refused")}})
		rec := serve(t, router, http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("PublicWithAuthEnabled", func(t *testing.T) {
		tokens := security.NewTokenManager(testSecret, "", "")
		router := NewRouter(Services{}, RouterOptions{Tokens: tokens})
		rec := serve(t, router, http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tokens := security.NewTokenManager(testSecret, "", "")
	cars := new(MockCarService)
	router := NewRouter(Services{Cars: cars}, RouterOptions{Tokens: tokens})

	t.Run("MissingToken", func(t *testing.T) {
		rec := serve(t, router, http.MethodGet, "/api/v1/cars", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		rec := serve(t, router, http.MethodGet, "/api/v1/cars", "", "Authorization", "Bearer not-a-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Success", func(t *testing.T) {
		token, err := tokens.GenerateAccessToken("staff-1", "desk@example.com", time.Hour)
		require.NoError(t, err)

		cars.On("ListCars", mock.Anything, service.ListQuery{Page: 1, PageSize: 10}).
			Return(utils.Paginate([]domain.Car{{ID: "car-1"}}, 1, 10), nil).Once()

		rec := serve(t, router, http.MethodGet, "/api/v1/cars", "", "Authorization", "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
		page := decodeBody[utils.Page[domain.Car]](t, rec)
		assert.Equal(t, 1, page.Total)
		cars.AssertExpectations(t)
	})
}

func TestRequestIDPropagated(t *testing.T) {
	router := NewRouter(Services{}, RouterOptions{})
	rec := serve(t, router, http.MethodGet, "/healthz", "", requestIDHeader, "req-42")
	assert.Equal(t, "req-42", rec.Header().Get(requestIDHeader))
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"Validation", &service.ValidationError{Fields: []service.FieldError{{Field: "car_id", Message: "is required"}}}, http.StatusBadRequest},
		{"NotFound", repository.ErrNotFound, http.StatusNotFound},
		{"WrappedNotFound", errors.Join(errors.New("lookup"), repository.ErrNotFound), http.StatusNotFound},
		{"DraftNotFound", service.ErrDraftNotFound, http.StatusNotFound},
		{"Conflict", &service.AvailabilityConflictError{CarID: "car-1"}, http.StatusConflict},
		{"Superseded", service.ErrSuperseded, http.StatusConflict},
		{"BookingsPending", service.ErrBookingsPending, http.StatusConflict},
		{"SubmitInFlight", service.ErrSubmitInFlight, http.StatusConflict},
		{"Unauthenticated", errUnauthenticated, http.StatusUnauthorized},
		{"Other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusFor(tc.err))
		})
	}
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer abc"))
	assert.Empty(t, bearerToken("Basic abc"))
	assert.Empty(t, bearerToken(""))
}

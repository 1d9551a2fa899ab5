package http

import (
	"net/http"
	"testing"
	"time"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDraftRouter() (http.Handler, *MockContractService, *MockCarService, *service.DraftRegistry) {
	contracts := new(MockContractService)
	cars := new(MockCarService)
	drafts := service.NewDraftRegistry(contracts, cars, time.Hour)
	router := NewRouter(Services{Contracts: contracts, Cars: cars, Drafts: drafts}, RouterOptions{})
	return router, contracts, cars, drafts
}

func TestDraftHandler(t *testing.T) {
	car := &domain.Car{ID: "car-1", Name: "Yaris", PricePerDay: decimal.NewFromInt(50)}

	t.Run("OpenWithCar", func(t *testing.T) {
		router, contracts, cars, drafts := newDraftRouter()
		cars.On("GetCar", mock.Anything, "car-1").Return(car, nil)
		contracts.On("BookedRanges", mock.Anything, "car-1").Return([]domain.BookingPeriod{
			{Start: domain.NewDate(2026, 3, 10), End: domain.NewDate(2026, 3, 12)},
		}, nil)

		rec := serve(t, router, http.MethodPost, "/api/v1/contract-drafts",
			`{"car_id":"car-1","start_date":"2026-03-01","end_date":"2026-03-03"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody[draftResponse](t, rec)
		assert.NotEmpty(t, body.ID)
		assert.Equal(t, "car-1", body.Draft.CarID)
		assert.True(t, body.Draft.BookingsKnown)
		assert.Len(t, body.Draft.BookedRanges, 1)
		assert.Equal(t, 3, body.Draft.Days)
		assert.True(t, body.Draft.DailyRate.Equal(decimal.NewFromInt(50)))
		assert.Equal(t, 1, drafts.Len())
	})

	t.Run("OpenBlank", func(t *testing.T) {
		router, _, _, _ := newDraftRouter()
		rec := serve(t, router, http.MethodPost, "/api/v1/contract-drafts", "")
		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody[draftResponse](t, rec)
		assert.Equal(t, domain.DraftModeCreate, body.Draft.Mode)
	})

	t.Run("PatchAndGet", func(t *testing.T) {
		router, _, _, drafts := newDraftRouter()
		id, _ := drafts.Open()

		rec := serve(t, router, http.MethodPatch, "/api/v1/contract-drafts/"+id, `{"customer_id":"cust-1","daily_rate":"40"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = serve(t, router, http.MethodGet, "/api/v1/contract-drafts/"+id, "")
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[draftResponse](t, rec)
		assert.Equal(t, "cust-1", body.Draft.CustomerID)
		assert.True(t, body.Draft.DailyRate.Equal(decimal.NewFromInt(40)))
	})

	t.Run("SelectCarFetchFailureWarns", func(t *testing.T) {
		router, contracts, cars, drafts := newDraftRouter()
		id, _ := drafts.Open()
		cars.On("GetCar", mock.Anything, "car-1").Return(car, nil)
		contracts.On("BookedRanges", mock.Anything, "car-1").Return(nil, assert.AnError)

		rec := serve(t, router, http.MethodPut, "/api/v1/contract-drafts/"+id+"/car", `{"car_id":"car-1"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[draftResponse](t, rec)
		assert.False(t, body.Draft.BookingsKnown)
		assert.NotEmpty(t, body.Draft.Warnings)
	})

	t.Run("SelectCarRequiresID", func(t *testing.T) {
		router, _, _, drafts := newDraftRouter()
		id, _ := drafts.Open()
		rec := serve(t, router, http.MethodPut, "/api/v1/contract-drafts/"+id+"/car", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("SubmitSwitchesToEdit", func(t *testing.T) {
		router, contracts, _, drafts := newDraftRouter()
		id, _ := drafts.Open()
		saved := &domain.Contract{
			ID:             "c-1",
			ContractNumber: "CTR-20260301-AB12",
			CarID:          "car-1",
			CustomerID:     "cust-1",
			StartDate:      domain.NewDate(2026, 3, 1),
			EndDate:        domain.NewDate(2026, 3, 3),
			DailyRate:      decimal.NewFromInt(50),
			Status:         domain.ContractStatusActive,
			PaymentMode:    domain.PaymentModeCash,
		}
		contracts.On("SubmitDraft", mock.Anything, mock.AnythingOfType("domain.ContractDraft")).Return(saved, nil)

		rec := serve(t, router, http.MethodPost, "/api/v1/contract-drafts/"+id+"/submit", "")
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[submitDraftResponse](t, rec)
		assert.Equal(t, id, body.ID)
		assert.Equal(t, "c-1", body.Contract.ID)
		assert.Equal(t, domain.DraftModeEdit, body.Draft.Mode)
		assert.Equal(t, "CTR-20260301-AB12", body.Draft.ContractNumber)
	})

	t.Run("SubmitConflictKeepsDraft", func(t *testing.T) {
		router, contracts, _, drafts := newDraftRouter()
		id, editor := drafts.Open()
		editor.Apply(service.DraftInput{CustomerID: strPtr("cust-1")})
		contracts.On("SubmitDraft", mock.Anything, mock.Anything).Return(nil, &service.AvailabilityConflictError{CarID: "car-1"})

		rec := serve(t, router, http.MethodPost, "/api/v1/contract-drafts/"+id+"/submit", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "cust-1", editor.Draft().CustomerID)
		assert.Equal(t, domain.DraftModeCreate, editor.Draft().Mode)
	})

	t.Run("UnknownSession", func(t *testing.T) {
		router, _, _, _ := newDraftRouter()
		rec := serve(t, router, http.MethodGet, "/api/v1/contract-drafts/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Discard", func(t *testing.T) {
		router, _, _, drafts := newDraftRouter()
		id, _ := drafts.Open()

		rec := serve(t, router, http.MethodDelete, "/api/v1/contract-drafts/"+id, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, 0, drafts.Len())

		rec = serve(t, router, http.MethodDelete, "/api/v1/contract-drafts/"+id, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func strPtr(s string) *string { return &s }

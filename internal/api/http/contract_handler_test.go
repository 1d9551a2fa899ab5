package http

import (
	"net/http"
	"testing"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/service"
	"rentdesk-backoffice/internal/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestContractHandler(t *testing.T) {
	t.Run("ListFilters", func(t *testing.T) {
		contracts := new(MockContractService)
		router := NewRouter(Services{Contracts: contracts}, RouterOptions{})
		contracts.On("ListContracts", mock.Anything, service.ContractListQuery{
			Status: domain.ContractStatusActive, CarID: "car-1", Page: 1, PageSize: 10,
		}).Return(utils.Paginate([]domain.Contract{}, 1, 10), nil)

		rec := serve(t, router, http.MethodGet, "/api/v1/contracts?status=active&car_id=car-1", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		contracts.AssertExpectations(t)
	})

	t.Run("ListUnknownStatus", func(t *testing.T) {
		router := NewRouter(Services{Contracts: new(MockContractService)}, RouterOptions{})
		rec := serve(t, router, http.MethodGet, "/api/v1/contracts?status=parked", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("CreateReturnsWarnings", func(t *testing.T) {
		contracts := new(MockContractService)
		router := NewRouter(Services{Contracts: contracts}, RouterOptions{})
		contracts.On("CreateContract", mock.Anything, mock.MatchedBy(func(in service.DraftInput) bool {
			return in.CarID != nil && *in.CarID == "car-1" && in.StartDate != nil
		})).Return(&domain.Contract{ID: "c-1", ContractNumber: "CTR-20260301-AB12"}, []string{"availability unknown"}, nil)

		rec := serve(t, router, http.MethodPost, "/api/v1/contracts",
			`{"car_id":"car-1","customer_id":"cust-1","start_date":"2026-03-01","end_date":"2026-03-03","payment_mode":"cash"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody[createContractResponse](t, rec)
		assert.Equal(t, "c-1", body.Contract.ID)
		assert.Equal(t, []string{"availability unknown"}, body.Warnings)
	})

	t.Run("CreateConflict", func(t *testing.T) {
		contracts := new(MockContractService)
		router := NewRouter(Services{Contracts: contracts}, RouterOptions{})
		contracts.On("CreateContract", mock.Anything, mock.Anything).Return(nil, nil, &service.AvailabilityConflictError{
			CarID:     "car-1",
			Candidate: domain.BookingPeriod{Start: domain.NewDate(2026, 3, 1), End: domain.NewDate(2026, 3, 3)},
			Conflicts: []domain.BookingPeriod{{Start: domain.NewDate(2026, 3, 3), End: domain.NewDate(2026, 3, 5)}},
		})

		rec := serve(t, router, http.MethodPost, "/api/v1/contracts", `{"car_id":"car-1"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "already booked")
	})

	t.Run("Quote", func(t *testing.T) {
		contracts := new(MockContractService)
		router := NewRouter(Services{Contracts: contracts}, RouterOptions{})
		draft := domain.NewContractDraft()
		draft.Days = 3
		draft.Totals.Total = decimal.NewFromInt(150)
		contracts.On("Quote", mock.Anything, mock.Anything).Return(&service.Quote{Draft: draft}, nil)

		rec := serve(t, router, http.MethodPost, "/api/v1/contracts/quote", `{"daily_rate":"50"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[service.Quote](t, rec)
		assert.Equal(t, 3, body.Draft.Days)
		assert.True(t, body.Draft.Totals.Total.Equal(decimal.NewFromInt(150)))
	})

	t.Run("UpdateUsesPathID", func(t *testing.T) {
		contracts := new(MockContractService)
		router := NewRouter(Services{Contracts: contracts}, RouterOptions{})
		contracts.On("UpdateContract", mock.Anything, "c-1", mock.Anything).Return(&domain.Contract{ID: "c-1"}, nil)

		rec := serve(t, router, http.MethodPut, "/api/v1/contracts/c-1", `{"discount":"10"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		contracts.AssertExpectations(t)
	})
}

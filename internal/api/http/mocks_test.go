package http

import (
	"context"
	"time"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/service"
	"rentdesk-backoffice/internal/utils"

	"github.com/stretchr/testify/mock"
)

// MockCarService
type MockCarService struct {
	mock.Mock
}

func (m *MockCarService) ListCars(ctx context.Context, q service.ListQuery) (utils.Page[domain.Car], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(utils.Page[domain.Car]), args.Error(1)
}
func (m *MockCarService) GetCar(ctx context.Context, id string) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarService) CreateCar(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarService) UpdateCar(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarService) DeleteCar(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContractService
type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) Quote(ctx context.Context, in service.DraftInput) (*service.Quote, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Quote), args.Error(1)
}
func (m *MockContractService) BookedRanges(ctx context.Context, carID string) ([]domain.BookingPeriod, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingPeriod), args.Error(1)
}
func (m *MockContractService) CreateContract(ctx context.Context, in service.DraftInput) (*domain.Contract, []string, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	warnings, _ := args.Get(1).([]string)
	return args.Get(0).(*domain.Contract), warnings, args.Error(2)
}
func (m *MockContractService) UpdateContract(ctx context.Context, id string, in service.DraftInput) (*domain.Contract, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) SubmitDraft(ctx context.Context, draft domain.ContractDraft) (*domain.Contract, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) GetContract(ctx context.Context, id string) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) ListContracts(ctx context.Context, q service.ContractListQuery) (utils.Page[domain.Contract], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(utils.Page[domain.Contract]), args.Error(1)
}
func (m *MockContractService) ListContractsByCar(ctx context.Context, carID string) ([]domain.Contract, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractService) ListContractsByCustomer(ctx context.Context, customerID string) ([]domain.Contract, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractService) DeleteContract(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReportService
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Summary(ctx context.Context, periodDays int, now time.Time) (*service.SummaryReport, error) {
	args := m.Called(ctx, periodDays, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SummaryReport), args.Error(1)
}
func (m *MockReportService) Revenue(ctx context.Context, periodDays int, now time.Time) (*service.RevenueReport, error) {
	args := m.Called(ctx, periodDays, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RevenueReport), args.Error(1)
}
func (m *MockReportService) Cars(ctx context.Context) ([]service.CarReportRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.CarReportRow), args.Error(1)
}
func (m *MockReportService) Customers(ctx context.Context) ([]service.CustomerReportRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.CustomerReportRow), args.Error(1)
}

// MockPlannerService
type MockPlannerService struct {
	mock.Mock
}

func (m *MockPlannerService) Events(ctx context.Context, q service.PlannerQuery) ([]service.PlannerEvent, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.PlannerEvent), args.Error(1)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

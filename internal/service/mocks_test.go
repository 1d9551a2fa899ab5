package service

import (
	"context"

	"rentdesk-backoffice/internal/domain"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/mock"
)

// MockCarRepo
type MockCarRepo struct {
	mock.Mock
}

func (m *MockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) List(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarRepo) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCarRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContractRepo
type MockContractRepo struct {
	mock.Mock
}

func (m *MockContractRepo) Create(ctx context.Context, c *domain.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockContractRepo) GetByID(ctx context.Context, id string) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractRepo) List(ctx context.Context) ([]domain.Contract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractRepo) ListByCar(ctx context.Context, carID string) ([]domain.Contract, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Contract, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractRepo) Update(ctx context.Context, c *domain.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockContractRepo) UpdateStatus(ctx context.Context, id string, status domain.ContractStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockContractRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockContractRepo) ListBookedRanges(ctx context.Context, carID string) ([]domain.BookingPeriod, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingPeriod), args.Error(1)
}

// MockRegistrationRepo
type MockRegistrationRepo struct {
	mock.Mock
}

func (m *MockRegistrationRepo) Create(ctx context.Context, r *domain.VehicleRegistration) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRegistrationRepo) GetByID(ctx context.Context, id string) (*domain.VehicleRegistration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleRegistration), args.Error(1)
}
func (m *MockRegistrationRepo) List(ctx context.Context) ([]domain.VehicleRegistration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleRegistration), args.Error(1)
}
func (m *MockRegistrationRepo) Update(ctx context.Context, r *domain.VehicleRegistration) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRegistrationRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockImageRepo
type MockImageRepo struct {
	mock.Mock
}

func (m *MockImageRepo) Create(ctx context.Context, img *domain.ContractImage) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}
func (m *MockImageRepo) GetByID(ctx context.Context, id string) (*domain.ContractImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractImage), args.Error(1)
}
func (m *MockImageRepo) ListByContract(ctx context.Context, contractID string) ([]domain.ContractImage, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContractImage), args.Error(1)
}
func (m *MockImageRepo) Update(ctx context.Context, img *domain.ContractImage) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}
func (m *MockImageRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMailClient
type MockMailClient struct {
	mock.Mock
}

func (m *MockMailClient) Send(email *mail.SGMailV3) (*rest.Response, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rest.Response), args.Error(1)
}

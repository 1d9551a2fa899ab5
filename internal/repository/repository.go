package repository

import (
	"context"
	"errors"

	"rentdesk-backoffice/internal/domain"
)

// ErrNotFound is returned when the requested row does not exist
var ErrNotFound = errors.New("not found")

// List methods return every row, newest first. Searching and paging happen in the service layer.

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	List(ctx context.Context) ([]domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
}

type ContractRepository interface {
	Create(ctx context.Context, contract *domain.Contract) error
	GetByID(ctx context.Context, id string) (*domain.Contract, error)
	List(ctx context.Context) ([]domain.Contract, error)
	ListByCar(ctx context.Context, carID string) ([]domain.Contract, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Contract, error)
	Update(ctx context.Context, contract *domain.Contract) error
	UpdateStatus(ctx context.Context, id string, status domain.ContractStatus) error
	Delete(ctx context.Context, id string) error

	// ListBookedRanges returns the periods of every contract on the car regardless of status
	ListBookedRanges(ctx context.Context, carID string) ([]domain.BookingPeriod, error)
}

type ContractImageRepository interface {
	Create(ctx context.Context, image *domain.ContractImage) error
	GetByID(ctx context.Context, id string) (*domain.ContractImage, error)
	ListByContract(ctx context.Context, contractID string) ([]domain.ContractImage, error)
	Update(ctx context.Context, image *domain.ContractImage) error
	Delete(ctx context.Context, id string) error
}

type ExternalCarRepository interface {
	Create(ctx context.Context, car *domain.ExternalCar) error
	GetByID(ctx context.Context, id string) (*domain.ExternalCar, error)
	List(ctx context.Context) ([]domain.ExternalCar, error)
	Update(ctx context.Context, car *domain.ExternalCar) error
	Delete(ctx context.Context, id string) error
}

type VehicleRegistrationRepository interface {
	Create(ctx context.Context, reg *domain.VehicleRegistration) error
	GetByID(ctx context.Context, id string) (*domain.VehicleRegistration, error)
	List(ctx context.Context) ([]domain.VehicleRegistration, error)
	Update(ctx context.Context, reg *domain.VehicleRegistration) error
	Delete(ctx context.Context, id string) error
}

type CompanyRepository interface {
	// Get returns the single company row, or ErrNotFound before it is first saved
	Get(ctx context.Context) (*domain.CompanyDetails, error)
	Upsert(ctx context.Context, company *domain.CompanyDetails) error
}

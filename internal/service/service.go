package service

import (
	"context"
	"time"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/utils"
)

// ListQuery is the search box and pager of a list screen
type ListQuery struct {
	Query    string
	Page     int
	PageSize int
}

type ContractListQuery struct {
	Status     domain.ContractStatus
	CarID      string
	CustomerID string
	Query      string
	Page       int
	PageSize   int
}

type CarService interface {
	ListCars(ctx context.Context, q ListQuery) (utils.Page[domain.Car], error)
	GetCar(ctx context.Context, id string) (*domain.Car, error)
	CreateCar(ctx context.Context, car *domain.Car) error
	UpdateCar(ctx context.Context, car *domain.Car) error
	DeleteCar(ctx context.Context, id string) error
}

type CustomerService interface {
	ListCustomers(ctx context.Context, q ListQuery) (utils.Page[domain.Customer], error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
}

type ExternalCarService interface {
	ListExternalCars(ctx context.Context, q ListQuery) (utils.Page[domain.ExternalCar], error)
	GetExternalCar(ctx context.Context, id string) (*domain.ExternalCar, error)
	CreateExternalCar(ctx context.Context, car *domain.ExternalCar) error
	UpdateExternalCar(ctx context.Context, car *domain.ExternalCar) error
	DeleteExternalCar(ctx context.Context, id string) error
}

type VehicleRegistrationService interface {
	ListRegistrations(ctx context.Context, q ListQuery) (utils.Page[domain.VehicleRegistration], error)
	GetRegistration(ctx context.Context, id string) (*domain.VehicleRegistration, error)
	CreateRegistration(ctx context.Context, reg *domain.VehicleRegistration) error
	UpdateRegistration(ctx context.Context, reg *domain.VehicleRegistration) error
	DeleteRegistration(ctx context.Context, id string) error
	// ListExpiring returns documents expiring within windowDays of today, soonest first
	ListExpiring(ctx context.Context, today domain.Date, windowDays int) ([]domain.ExpiryItem, error)
}

type CompanyService interface {
	GetCompany(ctx context.Context) (*domain.CompanyDetails, error)
	SaveCompany(ctx context.Context, company *domain.CompanyDetails) error
}

type ContractImageService interface {
	ListImages(ctx context.Context, contractID string) ([]domain.ContractImage, error)
	AddImage(ctx context.Context, image *domain.ContractImage) error
	UpdateImage(ctx context.Context, image *domain.ContractImage) error
	DeleteImage(ctx context.Context, id string) error
}

// Quote is a priced draft plus any bookings its period collides with
type Quote struct {
	Draft     domain.ContractDraft   `json:"draft"`
	Conflicts []domain.BookingPeriod `json:"conflicts"`
}

type ContractService interface {
	Quote(ctx context.Context, in DraftInput) (*Quote, error)
	BookedRanges(ctx context.Context, carID string) ([]domain.BookingPeriod, error)
	// CreateContract returns fail-open warnings alongside the saved contract
	CreateContract(ctx context.Context, in DraftInput) (*domain.Contract, []string, error)
	UpdateContract(ctx context.Context, id string, in DraftInput) (*domain.Contract, error)
	// SubmitDraft validates, checks availability (create mode) and persists an assembled draft
	SubmitDraft(ctx context.Context, draft domain.ContractDraft) (*domain.Contract, error)
	GetContract(ctx context.Context, id string) (*domain.Contract, error)
	ListContracts(ctx context.Context, q ContractListQuery) (utils.Page[domain.Contract], error)
	ListContractsByCar(ctx context.Context, carID string) ([]domain.Contract, error)
	ListContractsByCustomer(ctx context.Context, customerID string) ([]domain.Contract, error)
	DeleteContract(ctx context.Context, id string) error
}

type PlannerService interface {
	Events(ctx context.Context, q PlannerQuery) ([]PlannerEvent, error)
}

type ReportService interface {
	Summary(ctx context.Context, periodDays int, now time.Time) (*SummaryReport, error)
	Revenue(ctx context.Context, periodDays int, now time.Time) (*RevenueReport, error)
	Cars(ctx context.Context) ([]CarReportRow, error)
	Customers(ctx context.Context) ([]CustomerReportRow, error)
}

type EmailService interface {
	SendOverdueNotice(ctx context.Context, to string, contracts []OverdueContract) error
	SendRegistrationExpiryReminder(ctx context.Context, to string, items []domain.ExpiryItem) error
}

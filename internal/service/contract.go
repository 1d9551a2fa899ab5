package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/logger"
	"rentdesk-backoffice/internal/repository"
	"rentdesk-backoffice/internal/utils"
)

type contractService struct {
	contractRepo repository.ContractRepository
	carRepo      repository.CarRepository
	numberPrefix string
	now          func() time.Time
}

func NewContractService(contractRepo repository.ContractRepository, carRepo repository.CarRepository, numberPrefix string) ContractService {
	if numberPrefix == "" {
		numberPrefix = utils.DefaultContractPrefix
	}
	return &contractService{
		contractRepo: contractRepo,
		carRepo:      carRepo,
		numberPrefix: numberPrefix,
		now:          time.Now,
	}
}

func (s *contractService) BookedRanges(ctx context.Context, carID string) ([]domain.BookingPeriod, error) {
	return s.contractRepo.ListBookedRanges(ctx, carID)
}

// newDraft prices in as a create-mode draft, selecting its car and loading the car's bookings
func (s *contractService) newDraft(ctx context.Context, in DraftInput) (domain.ContractDraft, error) {
	d := Reduce(domain.NewContractDraft(), in.Changes()...)
	if in.CarID == nil || *in.CarID == "" {
		return d, nil
	}
	car, err := s.lookupCar(ctx, *in.CarID)
	if err != nil {
		return d, err
	}
	d = Reduce(d, WithCar(car))
	return s.withBookings(ctx, d), nil
}

func (s *contractService) lookupCar(ctx context.Context, carID string) (*domain.Car, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &ValidationError{Fields: []FieldError{{Field: "car_id", Message: "unknown car"}}}
	}
	return car, err
}

// withBookings fetches the draft car's bookings. A failed fetch leaves them unknown with a warning.
func (s *contractService) withBookings(ctx context.Context, d domain.ContractDraft) domain.ContractDraft {
	ranges, err := s.contractRepo.ListBookedRanges(ctx, d.CarID)
	if err != nil {
		logger.WarnContext(ctx, "Failed to load booked ranges, availability unknown", "car_id", d.CarID, "error", err)
		return Reduce(d, WithBookingsUnknown(bookingsUnknownWarning))
	}
	return Reduce(d, WithBookedRanges(ranges))
}

const bookingsUnknownWarning = "existing bookings for this car could not be loaded; availability was not checked"

func (s *contractService) Quote(ctx context.Context, in DraftInput) (*Quote, error) {
	d, err := s.newDraft(ctx, in)
	if err != nil {
		return nil, err
	}
	q := &Quote{Draft: d, Conflicts: []domain.BookingPeriod{}}
	if d.BookingsKnown && !d.StartDate.IsZero() && !d.EndDate.IsZero() {
		q.Conflicts = append(q.Conflicts, utils.FindConflicts(d.BookedRanges, d.Period())...)
	}
	return q, nil
}

func (s *contractService) CreateContract(ctx context.Context, in DraftInput) (*domain.Contract, []string, error) {
	logger.EnterMethod("contractService.CreateContract")
	d, err := s.newDraft(ctx, in)
	if err != nil {
		logger.ExitMethodWithError("contractService.CreateContract", err)
		return nil, nil, err
	}
	c, err := s.SubmitDraft(ctx, d)
	if err != nil {
		logger.ExitMethodWithError("contractService.CreateContract", err)
		return nil, d.Warnings, err
	}
	logger.ExitMethod("contractService.CreateContract", "contract_id", c.ID, "contract_number", c.ContractNumber)
	return c, d.Warnings, nil
}

func (s *contractService) UpdateContract(ctx context.Context, id string, in DraftInput) (*domain.Contract, error) {
	existing, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	changes := in.Changes()
	if in.CarID != nil && *in.CarID != existing.CarID {
		car, err := s.lookupCar(ctx, *in.CarID)
		if err != nil {
			return nil, err
		}
		changes = append(changes, WithCar(car))
	}
	d := Reduce(domain.DraftFromContract(existing), changes...)
	return s.SubmitDraft(ctx, d)
}

func (s *contractService) SubmitDraft(ctx context.Context, d domain.ContractDraft) (*domain.Contract, error) {
	d = Recalculate(d)
	if err := ValidateDraft(d); err != nil {
		return nil, err
	}
	if err := CheckAvailability(d); err != nil {
		logger.InfoContext(ctx, "Contract rejected, car already booked", "car_id", d.CarID, "period", d.Period().String())
		return nil, err
	}

	c := d.Contract()
	if d.Mode == domain.DraftModeEdit {
		if err := s.contractRepo.Update(ctx, c); err != nil {
			logger.ErrorContext(ctx, "Failed to update contract", "contract_id", c.ID, "error", err)
			return nil, fmt.Errorf("failed to update contract: %w", err)
		}
		return c, nil
	}

	c.ID = ""
	c.ContractNumber = utils.GenerateContractNumber(s.numberPrefix, s.now())
	if err := s.contractRepo.Create(ctx, c); err != nil {
		logger.ErrorContext(ctx, "Failed to create contract", "car_id", c.CarID, "error", err)
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}
	return c, nil
}

func (s *contractService) GetContract(ctx context.Context, id string) (*domain.Contract, error) {
	return s.contractRepo.GetByID(ctx, id)
}

func (s *contractService) ListContracts(ctx context.Context, q ContractListQuery) (utils.Page[domain.Contract], error) {
	var (
		contracts []domain.Contract
		err       error
	)
	switch {
	case q.CarID != "":
		contracts, err = s.contractRepo.ListByCar(ctx, q.CarID)
	case q.CustomerID != "":
		contracts, err = s.contractRepo.ListByCustomer(ctx, q.CustomerID)
	default:
		contracts, err = s.contractRepo.List(ctx)
	}
	if err != nil {
		return utils.Page[domain.Contract]{}, err
	}
	matched := utils.Filter(contracts, func(c domain.Contract) bool {
		if q.Status != "" && c.Status != q.Status {
			return false
		}
		if q.CustomerID != "" && c.CustomerID != q.CustomerID {
			return false
		}
		return utils.MatchesQuery(q.Query, c.ContractNumber)
	})
	return utils.Paginate(matched, q.Page, q.PageSize), nil
}

func (s *contractService) ListContractsByCar(ctx context.Context, carID string) ([]domain.Contract, error) {
	return s.contractRepo.ListByCar(ctx, carID)
}

func (s *contractService) ListContractsByCustomer(ctx context.Context, customerID string) ([]domain.Contract, error) {
	return s.contractRepo.ListByCustomer(ctx, customerID)
}

func (s *contractService) DeleteContract(ctx context.Context, id string) error {
	return s.contractRepo.Delete(ctx, id)
}

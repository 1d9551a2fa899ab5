package service

import (
	"context"
	"sort"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/repository"
	"rentdesk-backoffice/internal/utils"
)

type vehicleRegistrationService struct {
	repo repository.VehicleRegistrationRepository
}

func NewVehicleRegistrationService(repo repository.VehicleRegistrationRepository) VehicleRegistrationService {
	return &vehicleRegistrationService{repo: repo}
}

func (s *vehicleRegistrationService) ListRegistrations(ctx context.Context, q ListQuery) (utils.Page[domain.VehicleRegistration], error) {
	regs, err := s.repo.List(ctx)
	if err != nil {
		return utils.Page[domain.VehicleRegistration]{}, err
	}
	matched := utils.Filter(regs, func(r domain.VehicleRegistration) bool {
		return utils.MatchesQuery(q.Query, r.PlateNo, r.VehicleName, r.Model, r.InsurancePolicyNo)
	})
	return utils.Paginate(matched, q.Page, q.PageSize), nil
}

func (s *vehicleRegistrationService) GetRegistration(ctx context.Context, id string) (*domain.VehicleRegistration, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *vehicleRegistrationService) CreateRegistration(ctx context.Context, reg *domain.VehicleRegistration) error {
	if err := validateRegistration(reg); err != nil {
		return err
	}
	return s.repo.Create(ctx, reg)
}

func (s *vehicleRegistrationService) UpdateRegistration(ctx context.Context, reg *domain.VehicleRegistration) error {
	if err := validateRegistration(reg); err != nil {
		return err
	}
	return s.repo.Update(ctx, reg)
}

func (s *vehicleRegistrationService) DeleteRegistration(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *vehicleRegistrationService) ListExpiring(ctx context.Context, today domain.Date, windowDays int) ([]domain.ExpiryItem, error) {
	regs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var items []domain.ExpiryItem
	for i := range regs {
		items = append(items, regs[i].ExpiringWithin(today, windowDays)...)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ExpiresOn.Before(items[j].ExpiresOn)
	})
	return items, nil
}

func validateRegistration(r *domain.VehicleRegistration) error {
	v := &ValidationError{}
	if r.PlateNo == "" {
		v.add("plate_no", "is required")
	}
	if r.InsuranceStartDate != nil && r.InsuranceEndDate != nil &&
		!r.InsuranceStartDate.IsZero() && !r.InsuranceEndDate.IsZero() &&
		r.InsuranceEndDate.Before(*r.InsuranceStartDate) {
		v.add("insurance_end_date", "must not be before insurance_start_date")
	}
	return v.orNil()
}

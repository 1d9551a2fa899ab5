package service

import (
	"context"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/repository"
	"rentdesk-backoffice/internal/utils"
)

type externalCarService struct {
	repo repository.ExternalCarRepository
}

func NewExternalCarService(repo repository.ExternalCarRepository) ExternalCarService {
	return &externalCarService{repo: repo}
}

func (s *externalCarService) ListExternalCars(ctx context.Context, q ListQuery) (utils.Page[domain.ExternalCar], error) {
	cars, err := s.repo.List(ctx)
	if err != nil {
		return utils.Page[domain.ExternalCar]{}, err
	}
	matched := utils.Filter(cars, func(c domain.ExternalCar) bool {
		return utils.MatchesQuery(q.Query, c.Name, c.Brand, c.Model, c.PlateNumber)
	})
	return utils.Paginate(matched, q.Page, q.PageSize), nil
}

func (s *externalCarService) GetExternalCar(ctx context.Context, id string) (*domain.ExternalCar, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *externalCarService) CreateExternalCar(ctx context.Context, car *domain.ExternalCar) error {
	if err := validateExternalCar(car); err != nil {
		return err
	}
	return s.repo.Create(ctx, car)
}

func (s *externalCarService) UpdateExternalCar(ctx context.Context, car *domain.ExternalCar) error {
	if err := validateExternalCar(car); err != nil {
		return err
	}
	return s.repo.Update(ctx, car)
}

func (s *externalCarService) DeleteExternalCar(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateExternalCar(car *domain.ExternalCar) error {
	v := &ValidationError{}
	if car.Name == "" {
		v.add("name", "is required")
	}
	if car.PricePerDay.IsNegative() {
		v.add("price_per_day", "must not be negative")
	}
	return v.orNil()
}

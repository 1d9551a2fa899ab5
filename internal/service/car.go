package service

import (
	"context"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/logger"
	"rentdesk-backoffice/internal/repository"
	"rentdesk-backoffice/internal/utils"
)

type carService struct {
	carRepo repository.CarRepository
}

func NewCarService(carRepo repository.CarRepository) CarService {
	return &carService{carRepo: carRepo}
}

func (s *carService) ListCars(ctx context.Context, q ListQuery) (utils.Page[domain.Car], error) {
	cars, err := s.carRepo.List(ctx)
	if err != nil {
		return utils.Page[domain.Car]{}, err
	}
	matched := utils.Filter(cars, func(c domain.Car) bool {
		return utils.MatchesQuery(q.Query, c.Name, c.Brand, c.Model, c.PlateNumber)
	})
	return utils.Paginate(matched, q.Page, q.PageSize), nil
}

func (s *carService) GetCar(ctx context.Context, id string) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *carService) CreateCar(ctx context.Context, car *domain.Car) error {
	logger.EnterMethod("carService.CreateCar", "plate", car.PlateNumber)
	if car.Status == "" {
		car.Status = domain.CarStatusAvailable
	}
	if err := validateCar(car); err != nil {
		logger.ExitMethodWithError("carService.CreateCar", err)
		return err
	}
	if err := s.carRepo.Create(ctx, car); err != nil {
		logger.ExitMethodWithError("carService.CreateCar", err)
		return err
	}
	logger.ExitMethod("carService.CreateCar", "car_id", car.ID)
	return nil
}

func (s *carService) UpdateCar(ctx context.Context, car *domain.Car) error {
	if err := validateCar(car); err != nil {
		return err
	}
	return s.carRepo.Update(ctx, car)
}

func (s *carService) DeleteCar(ctx context.Context, id string) error {
	return s.carRepo.Delete(ctx, id)
}

func validateCar(car *domain.Car) error {
	v := &ValidationError{}
	if car.Name == "" {
		v.add("name", "is required")
	}
	if car.PlateNumber == "" {
		v.add("plate_number", "is required")
	}
	if car.PricePerDay.IsNegative() {
		v.add("price_per_day", "must not be negative")
	}
	if !car.Status.Valid() {
		v.add("status", "must be available, maintenance or unavailable")
	}
	if car.Year < 0 {
		v.add("year", "must not be negative")
	}
	if car.Km < 0 {
		v.add("km", "must not be negative")
	}
	return v.orNil()
}

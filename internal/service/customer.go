package service

import (
	"context"
	"net/mail"
	"strings"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/repository"
	"rentdesk-backoffice/internal/utils"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) ListCustomers(ctx context.Context, q ListQuery) (utils.Page[domain.Customer], error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return utils.Page[domain.Customer]{}, err
	}
	matched := utils.Filter(customers, func(c domain.Customer) bool {
		return utils.MatchesQuery(q.Query, c.FirstName, c.LastName, c.Email, c.Phone, c.NICOrPassport)
	})
	return utils.Paginate(matched, q.Page, q.PageSize), nil
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}
	return s.customerRepo.Update(ctx, customer)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	return s.customerRepo.Delete(ctx, id)
}

func validateCustomer(c *domain.Customer) error {
	c.Email = strings.TrimSpace(c.Email)
	v := &ValidationError{}
	if c.FirstName == "" {
		v.add("first_name", "is required")
	}
	if c.LastName == "" {
		v.add("last_name", "is required")
	}
	if c.Email == "" {
		v.add("email", "is required")
	} else if _, err := mail.ParseAddress(c.Email); err != nil {
		v.add("email", "is not a valid address")
	}
	return v.orNil()
}

package service

import (
	"context"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/repository"
)

type companyService struct {
	repo repository.CompanyRepository
}

func NewCompanyService(repo repository.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

func (s *companyService) GetCompany(ctx context.Context) (*domain.CompanyDetails, error) {
	return s.repo.Get(ctx)
}

func (s *companyService) SaveCompany(ctx context.Context, company *domain.CompanyDetails) error {
	v := &ValidationError{}
	if company.Name == "" {
		v.add("name", "is required")
	}
	if company.Email == "" {
		v.add("email", "is required")
	}
	if err := v.orNil(); err != nil {
		return err
	}
	return s.repo.Upsert(ctx, company)
}

package service

import (
	"context"
	"errors"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/repository"
)

type contractImageService struct {
	imageRepo    repository.ContractImageRepository
	contractRepo repository.ContractRepository
}

func NewContractImageService(imageRepo repository.ContractImageRepository, contractRepo repository.ContractRepository) ContractImageService {
	return &contractImageService{
		imageRepo:    imageRepo,
		contractRepo: contractRepo,
	}
}

func (s *contractImageService) ListImages(ctx context.Context, contractID string) ([]domain.ContractImage, error) {
	return s.imageRepo.ListByContract(ctx, contractID)
}

func (s *contractImageService) AddImage(ctx context.Context, image *domain.ContractImage) error {
	v := &ValidationError{}
	if image.ContractID == "" {
		v.add("contract_id", "is required")
	}
	if image.ImageBase64 == "" {
		v.add("image_base64", "is required")
	}
	if err := v.orNil(); err != nil {
		return err
	}
	if _, err := s.contractRepo.GetByID(ctx, image.ContractID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ValidationError{Fields: []FieldError{{Field: "contract_id", Message: "unknown contract"}}}
		}
		return err
	}
	return s.imageRepo.Create(ctx, image)
}

// UpdateImage replaces the caption, and the image payload when one is supplied
func (s *contractImageService) UpdateImage(ctx context.Context, image *domain.ContractImage) error {
	existing, err := s.imageRepo.GetByID(ctx, image.ID)
	if err != nil {
		return err
	}
	existing.Caption = image.Caption
	if image.ImageBase64 != "" {
		existing.ImageBase64 = image.ImageBase64
	}
	if err := s.imageRepo.Update(ctx, existing); err != nil {
		return err
	}
	*image = *existing
	return nil
}

func (s *contractImageService) DeleteImage(ctx context.Context, id string) error {
	return s.imageRepo.Delete(ctx, id)
}

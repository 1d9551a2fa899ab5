package postgres

import (
	"context"
	"database/sql"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/logger"
	"rentdesk-backoffice/internal/repository"

	"github.com/google/uuid"
)

type contractImageRepository struct {
	db *sql.DB
}

func NewContractImageRepository(db *sql.DB) repository.ContractImageRepository {
	return &contractImageRepository{db: db}
}

func (r *contractImageRepository) Create(ctx context.Context, img *domain.ContractImage) error {
	if img.ID == "" {
		img.ID = uuid.NewString()
	}
	query := `INSERT INTO contract_images (id, contract_id, image_base64, caption, created_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, img.ID, img.ContractID, img.ImageBase64, img.Caption).Scan(&img.CreatedAt)
	logger.DatabaseResult("INSERT", 1, err, "table", "contract_images")
	return err
}

func (r *contractImageRepository) GetByID(ctx context.Context, id string) (*domain.ContractImage, error) {
	img := &domain.ContractImage{}
	query := `SELECT id, contract_id, image_base64, COALESCE(caption, ''), created_at FROM contract_images WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&img.ID, &img.ContractID, &img.ImageBase64, &img.Caption, &img.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return img, nil
}

func (r *contractImageRepository) ListByContract(ctx context.Context, contractID string) ([]domain.ContractImage, error) {
	query := `SELECT id, contract_id, image_base64, COALESCE(caption, ''), created_at FROM contract_images WHERE contract_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []domain.ContractImage
	for rows.Next() {
		var img domain.ContractImage
		if err := rows.Scan(&img.ID, &img.ContractID, &img.ImageBase64, &img.Caption, &img.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *contractImageRepository) Update(ctx context.Context, img *domain.ContractImage) error {
	n, err := execOne(ctx, r.db, `UPDATE contract_images SET image_base64=$1, caption=$2 WHERE id=$3`, img.ImageBase64, img.Caption, img.ID)
	logger.DatabaseResult("UPDATE", n, err, "table", "contract_images")
	return err
}

func (r *contractImageRepository) Delete(ctx context.Context, id string) error {
	n, err := execOne(ctx, r.db, `DELETE FROM contract_images WHERE id = $1`, id)
	logger.DatabaseResult("DELETE", n, err, "table", "contract_images")
	return err
}

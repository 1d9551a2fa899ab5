package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/logger"
	"rentdesk-backoffice/internal/repository"

	"github.com/google/uuid"
)

type companyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Get(ctx context.Context) (*domain.CompanyDetails, error) {
	c := &domain.CompanyDetails{}
	query := `SELECT id, name, email, brn, COALESCE(whatsapp_num, ''), COALESCE(tel, ''), COALESCE(terms, ''), COALESCE(logo, ''), created_at, updated_at
	          FROM company_details ORDER BY created_at LIMIT 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&c.ID, &c.Name, &c.Email, &c.BRN, &c.WhatsappNum, &c.Tel, &c.Terms, &c.Logo, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

// Upsert inserts the company row on first save and updates it afterwards
func (r *companyRepository) Upsert(ctx context.Context, c *domain.CompanyDetails) error {
	if c.ID == "" {
		existing, err := r.Get(ctx)
		switch {
		case err == nil:
			c.ID = existing.ID
		case errors.Is(err, repository.ErrNotFound):
			c.ID = uuid.NewString()
		default:
			return err
		}
	}
	logger.DatabaseCall("UPSERT", "company_details", "company_id", c.ID)
	query := `INSERT INTO company_details (id, name, email, brn, whatsapp_num, tel, terms, logo, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	          ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, email=EXCLUDED.email, brn=EXCLUDED.brn, whatsapp_num=EXCLUDED.whatsapp_num,
	          tel=EXCLUDED.tel, terms=EXCLUDED.terms, logo=EXCLUDED.logo, updated_at=NOW()
	          RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, c.ID, c.Name, c.Email, c.BRN, c.WhatsappNum, c.Tel, c.Terms, c.Logo).Scan(&c.CreatedAt, &c.UpdatedAt)
	logger.DatabaseResult("UPSERT", 1, err, "table", "company_details")
	return err
}

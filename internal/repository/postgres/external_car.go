package postgres

import (
	"context"
	"database/sql"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/logger"
	"rentdesk-backoffice/internal/repository"

	"github.com/google/uuid"
)

const externalCarColumns = `id, name, COALESCE(brand, ''), COALESCE(model, ''), COALESCE(year, 0), COALESCE(plate_number, ''), price_per_day, created_at, updated_at`

type externalCarRepository struct {
	db *sql.DB
}

func NewExternalCarRepository(db *sql.DB) repository.ExternalCarRepository {
	return &externalCarRepository{db: db}
}

func scanExternalCar(row rowScanner) (*domain.ExternalCar, error) {
	c := &domain.ExternalCar{}
	if err := row.Scan(&c.ID, &c.Name, &c.Brand, &c.Model, &c.Year, &c.PlateNumber, &c.PricePerDay, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *externalCarRepository) Create(ctx context.Context, c *domain.ExternalCar) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query := `INSERT INTO external_cars (id, name, brand, model, year, plate_number, price_per_day, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW()) RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, c.ID, c.Name, c.Brand, c.Model, c.Year, c.PlateNumber, c.PricePerDay).Scan(&c.CreatedAt, &c.UpdatedAt)
	logger.DatabaseResult("INSERT", 1, err, "table", "external_cars")
	return err
}

func (r *externalCarRepository) GetByID(ctx context.Context, id string) (*domain.ExternalCar, error) {
	c, err := scanExternalCar(r.db.QueryRowContext(ctx, `SELECT `+externalCarColumns+` FROM external_cars WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (r *externalCarRepository) List(ctx context.Context) ([]domain.ExternalCar, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+externalCarColumns+` FROM external_cars ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.ExternalCar
	for rows.Next() {
		c, err := scanExternalCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, *c)
	}
	return cars, rows.Err()
}

func (r *externalCarRepository) Update(ctx context.Context, c *domain.ExternalCar) error {
	query := `UPDATE external_cars SET name=$1, brand=$2, model=$3, year=$4, plate_number=$5, price_per_day=$6, updated_at=NOW() WHERE id=$7`
	n, err := execOne(ctx, r.db, query, c.Name, c.Brand, c.Model, c.Year, c.PlateNumber, c.PricePerDay, c.ID)
	logger.DatabaseResult("UPDATE", n, err, "table", "external_cars")
	return err
}

func (r *externalCarRepository) Delete(ctx context.Context, id string) error {
	n, err := execOne(ctx, r.db, `DELETE FROM external_cars WHERE id = $1`, id)
	logger.DatabaseResult("DELETE", n, err, "table", "external_cars")
	return err
}

package postgres

import (
	"context"
	"database/sql"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/logger"
	"rentdesk-backoffice/internal/repository"

	"github.com/google/uuid"
)

const carColumns = `id, name, brand, model, year, plate_number, price_per_day, status, km, servicing, nta, psv, COALESCE(notes, ''), COALESCE(image_base64, ''), created_at, updated_at`

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func scanCar(row rowScanner) (*domain.Car, error) {
	c := &domain.Car{}
	err := row.Scan(&c.ID, &c.Name, &c.Brand, &c.Model, &c.Year, &c.PlateNumber, &c.PricePerDay, &c.Status, &c.Km,
		&c.Servicing, &c.NTA, &c.PSV, &c.Notes, &c.ImageBase64, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) Create(ctx context.Context, c *domain.Car) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	logger.DatabaseCall("INSERT", "cars", "car_id", c.ID)
	query := `INSERT INTO cars (id, name, brand, model, year, plate_number, price_per_day, status, km, servicing, nta, psv, notes, image_base64, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW()) RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, c.ID, c.Name, c.Brand, c.Model, c.Year, c.PlateNumber, c.PricePerDay, c.Status, c.Km,
		c.Servicing, c.NTA, c.PSV, c.Notes, c.ImageBase64).Scan(&c.CreatedAt, &c.UpdatedAt)
	logger.DatabaseResult("INSERT", 1, err, "table", "cars")
	return err
}

func (r *carRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	c, err := scanCar(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	logger.DatabaseCall("SELECT", "cars")
	query := `SELECT ` + carColumns + ` FROM cars ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, *c)
	}
	return cars, rows.Err()
}

func (r *carRepository) Update(ctx context.Context, c *domain.Car) error {
	logger.DatabaseCall("UPDATE", "cars", "car_id", c.ID)
	query := `UPDATE cars SET name=$1, brand=$2, model=$3, year=$4, plate_number=$5, price_per_day=$6, status=$7, km=$8,
	          servicing=$9, nta=$10, psv=$11, notes=$12, image_base64=$13, updated_at=NOW() WHERE id=$14`
	n, err := execOne(ctx, r.db, query, c.Name, c.Brand, c.Model, c.Year, c.PlateNumber, c.PricePerDay, c.Status, c.Km,
		c.Servicing, c.NTA, c.PSV, c.Notes, c.ImageBase64, c.ID)
	logger.DatabaseResult("UPDATE", n, err, "table", "cars")
	return err
}

func (r *carRepository) Delete(ctx context.Context, id string) error {
	n, err := execOne(ctx, r.db, `DELETE FROM cars WHERE id = $1`, id)
	logger.DatabaseResult("DELETE", n, err, "table", "cars")
	return err
}

func (r *carRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM cars`).Scan(&n)
	return n, err
}

package postgres

import (
	"context"
	"database/sql"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/logger"
	"rentdesk-backoffice/internal/repository"

	"github.com/google/uuid"
)

const customerColumns = `id, first_name, last_name, email, phone, nic_or_passport, COALESCE(address, ''), COALESCE(photo_base64, ''), created_at, updated_at`

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.NICOrPassport, &c.Address, &c.PhotoBase64, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	logger.DatabaseCall("INSERT", "customers", "customer_id", c.ID)
	query := `INSERT INTO customers (id, first_name, last_name, email, phone, nic_or_passport, address, photo_base64, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()) RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.NICOrPassport, c.Address, c.PhotoBase64).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	logger.DatabaseResult("INSERT", 1, err, "table", "customers")
	return err
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	logger.DatabaseCall("SELECT", "customers")
	rows, err := r.db.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET first_name=$1, last_name=$2, email=$3, phone=$4, nic_or_passport=$5, address=$6, photo_base64=$7, updated_at=NOW() WHERE id=$8`
	n, err := execOne(ctx, r.db, query, c.FirstName, c.LastName, c.Email, c.Phone, c.NICOrPassport, c.Address, c.PhotoBase64, c.ID)
	logger.DatabaseResult("UPDATE", n, err, "table", "customers")
	return err
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	n, err := execOne(ctx, r.db, `DELETE FROM customers WHERE id = $1`, id)
	logger.DatabaseResult("DELETE", n, err, "table", "customers")
	return err
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rentdesk-backoffice/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CarRepository
	repository.CustomerRepository
	repository.ContractRepository
	repository.ContractImageRepository
	repository.ExternalCarRepository
	repository.VehicleRegistrationRepository
	repository.CompanyRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                            db,
		CarRepository:                 NewCarRepository(db),
		CustomerRepository:            NewCustomerRepository(db),
		ContractRepository:            NewContractRepository(db),
		ContractImageRepository:       NewContractImageRepository(db),
		ExternalCarRepository:         NewExternalCarRepository(db),
		VehicleRegistrationRepository: NewVehicleRegistrationRepository(db),
		CompanyRepository:             NewCompanyRepository(db),
	}
}

// Ping reports whether the database answers
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}

// execOne runs a single-row write and reports ErrNotFound when nothing matched
func execOne(ctx context.Context, db *sql.DB, query string, args ...any) (int64, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, repository.ErrNotFound
	}
	return n, nil
}

package postgres

import (
	"context"
	"database/sql"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/logger"
	"rentdesk-backoffice/internal/repository"

	"github.com/google/uuid"
)

const contractColumns = `id, contract_number, customer_id, car_id, start_date, end_date, daily_rate, days, discount, tax_rate,
	sim_amount, delivery_amount, child_seat_amount, booster_seat_amount, card_payment_percent,
	subtotal, card_payment_amount, total, status, payment_mode,
	COALESCE(license_number, ''), COALESCE(client_signature, ''), COALESCE(owner_signature, ''), fuel_amount, COALESCE(pre_authorization, ''),
	pickup_date, COALESCE(pickup_time, ''), delivery_date, COALESCE(delivery_time, ''),
	COALESCE(second_driver_name, ''), COALESCE(second_driver_license, ''), COALESCE(notes, ''), created_at, updated_at`

type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

func scanContract(row rowScanner) (*domain.Contract, error) {
	c := &domain.Contract{}
	err := row.Scan(&c.ID, &c.ContractNumber, &c.CustomerID, &c.CarID, &c.StartDate, &c.EndDate, &c.DailyRate, &c.Days, &c.Discount, &c.TaxRate,
		&c.SimAmount, &c.DeliveryAmount, &c.ChildSeatAmount, &c.BoosterSeatAmount, &c.CardPaymentPercent,
		&c.Subtotal, &c.CardPaymentAmount, &c.Total, &c.Status, &c.PaymentMode,
		&c.LicenseNumber, &c.ClientSignatureBase64, &c.OwnerSignatureBase64, &c.FuelAmount, &c.PreAuthorization,
		&c.PickupDate, &c.PickupTime, &c.DeliveryDate, &c.DeliveryTime,
		&c.SecondDriverName, &c.SecondDriverLicense, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *contractRepository) Create(ctx context.Context, c *domain.Contract) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	logger.DatabaseCall("INSERT", "contracts", "contract_id", c.ID, "car_id", c.CarID)
	query := `INSERT INTO contracts (id, contract_number, customer_id, car_id, start_date, end_date, daily_rate, days, discount, tax_rate,
	          sim_amount, delivery_amount, child_seat_amount, booster_seat_amount, card_payment_percent,
	          subtotal, card_payment_amount, total, status, payment_mode,
	          license_number, client_signature, owner_signature, fuel_amount, pre_authorization,
	          pickup_date, pickup_time, delivery_date, delivery_time, second_driver_name, second_driver_license, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
	          $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, NOW(), NOW()) RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, c.ID, c.ContractNumber, c.CustomerID, c.CarID, c.StartDate, c.EndDate, c.DailyRate, c.Days, c.Discount, c.TaxRate,
		c.SimAmount, c.DeliveryAmount, c.ChildSeatAmount, c.BoosterSeatAmount, c.CardPaymentPercent,
		c.Subtotal, c.CardPaymentAmount, c.Total, c.Status, c.PaymentMode,
		c.LicenseNumber, c.ClientSignatureBase64, c.OwnerSignatureBase64, c.FuelAmount, c.PreAuthorization,
		c.PickupDate, c.PickupTime, c.DeliveryDate, c.DeliveryTime, c.SecondDriverName, c.SecondDriverLicense, c.Notes).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	logger.DatabaseResult("INSERT", 1, err, "table", "contracts")
	return err
}

func (r *contractRepository) GetByID(ctx context.Context, id string) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	c, err := scanContract(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (r *contractRepository) List(ctx context.Context) ([]domain.Contract, error) {
	return r.list(ctx, `SELECT `+contractColumns+` FROM contracts ORDER BY created_at DESC`)
}

func (r *contractRepository) ListByCar(ctx context.Context, carID string) ([]domain.Contract, error) {
	return r.list(ctx, `SELECT `+contractColumns+` FROM contracts WHERE car_id = $1 ORDER BY created_at DESC`, carID)
}

func (r *contractRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Contract, error) {
	return r.list(ctx, `SELECT `+contractColumns+` FROM contracts WHERE customer_id = $1 ORDER BY created_at DESC`, customerID)
}

func (r *contractRepository) list(ctx context.Context, query string, args ...any) ([]domain.Contract, error) {
	logger.DatabaseCall("SELECT", "contracts", "args", len(args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, *c)
	}
	return contracts, rows.Err()
}

func (r *contractRepository) Update(ctx context.Context, c *domain.Contract) error {
	logger.DatabaseCall("UPDATE", "contracts", "contract_id", c.ID)
	query := `UPDATE contracts SET customer_id=$1, car_id=$2, start_date=$3, end_date=$4, daily_rate=$5, days=$6, discount=$7, tax_rate=$8,
	          sim_amount=$9, delivery_amount=$10, child_seat_amount=$11, booster_seat_amount=$12, card_payment_percent=$13,
	          subtotal=$14, card_payment_amount=$15, total=$16, status=$17, payment_mode=$18,
	          license_number=$19, client_signature=$20, owner_signature=$21, fuel_amount=$22, pre_authorization=$23,
	          pickup_date=$24, pickup_time=$25, delivery_date=$26, delivery_time=$27,
	          second_driver_name=$28, second_driver_license=$29, notes=$30, updated_at=NOW()
	          WHERE id=$31`
	n, err := execOne(ctx, r.db, query, c.CustomerID, c.CarID, c.StartDate, c.EndDate, c.DailyRate, c.Days, c.Discount, c.TaxRate,
		c.SimAmount, c.DeliveryAmount, c.ChildSeatAmount, c.BoosterSeatAmount, c.CardPaymentPercent,
		c.Subtotal, c.CardPaymentAmount, c.Total, c.Status, c.PaymentMode,
		c.LicenseNumber, c.ClientSignatureBase64, c.OwnerSignatureBase64, c.FuelAmount, c.PreAuthorization,
		c.PickupDate, c.PickupTime, c.DeliveryDate, c.DeliveryTime,
		c.SecondDriverName, c.SecondDriverLicense, c.Notes, c.ID)
	logger.DatabaseResult("UPDATE", n, err, "table", "contracts")
	return err
}

func (r *contractRepository) UpdateStatus(ctx context.Context, id string, status domain.ContractStatus) error {
	n, err := execOne(ctx, r.db, `UPDATE contracts SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	logger.DatabaseResult("UPDATE", n, err, "table", "contracts", "status", status)
	return err
}

func (r *contractRepository) Delete(ctx context.Context, id string) error {
	n, err := execOne(ctx, r.db, `DELETE FROM contracts WHERE id = $1`, id)
	logger.DatabaseResult("DELETE", n, err, "table", "contracts")
	return err
}

func (r *contractRepository) ListBookedRanges(ctx context.Context, carID string) ([]domain.BookingPeriod, error) {
	logger.DatabaseCall("SELECT", "contracts", "car_id", carID, "purpose", "booked_ranges")
	rows, err := r.db.QueryContext(ctx, `SELECT start_date, end_date FROM contracts WHERE car_id = $1`, carID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranges []domain.BookingPeriod
	for rows.Next() {
		var p domain.BookingPeriod
		if err := rows.Scan(&p.Start, &p.End); err != nil {
			return nil, err
		}
		ranges = append(ranges, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	logger.DatabaseResult("SELECT", int64(len(ranges)), nil, "table", "contracts")
	return ranges, nil
}

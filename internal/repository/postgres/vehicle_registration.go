package postgres

import (
	"context"
	"database/sql"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/logger"
	"rentdesk-backoffice/internal/repository"

	"github.com/google/uuid"
)

const registrationColumns = `id, plate_no, COALESCE(vehicle_name, ''), COALESCE(model, ''), COALESCE(color, ''), COALESCE(psv_license_no, ''), psv_expiry,
	fitness_expiry, COALESCE(disc_no, ''), mvl_expiry, COALESCE(insurance_policy_no, ''), insurance_start_date, insurance_end_date, created_at, updated_at`

type vehicleRegistrationRepository struct {
	db *sql.DB
}

func NewVehicleRegistrationRepository(db *sql.DB) repository.VehicleRegistrationRepository {
	return &vehicleRegistrationRepository{db: db}
}

func scanRegistration(row rowScanner) (*domain.VehicleRegistration, error) {
	v := &domain.VehicleRegistration{}
	err := row.Scan(&v.ID, &v.PlateNo, &v.VehicleName, &v.Model, &v.Color, &v.PSVLicenseNo, &v.PSVExpiry,
		&v.FitnessExpiry, &v.DiscNo, &v.MVLExpiry, &v.InsurancePolicyNo, &v.InsuranceStartDate, &v.InsuranceEndDate, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRegistrationRepository) Create(ctx context.Context, v *domain.VehicleRegistration) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	query := `INSERT INTO vehicle_registrations (id, plate_no, vehicle_name, model, color, psv_license_no, psv_expiry, fitness_expiry, disc_no,
	          mvl_expiry, insurance_policy_no, insurance_start_date, insurance_end_date, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW()) RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, v.ID, v.PlateNo, v.VehicleName, v.Model, v.Color, v.PSVLicenseNo, v.PSVExpiry, v.FitnessExpiry, v.DiscNo,
		v.MVLExpiry, v.InsurancePolicyNo, v.InsuranceStartDate, v.InsuranceEndDate).Scan(&v.CreatedAt, &v.UpdatedAt)
	logger.DatabaseResult("INSERT", 1, err, "table", "vehicle_registrations")
	return err
}

func (r *vehicleRegistrationRepository) GetByID(ctx context.Context, id string) (*domain.VehicleRegistration, error) {
	v, err := scanRegistration(r.db.QueryRowContext(ctx, `SELECT `+registrationColumns+` FROM vehicle_registrations WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return v, nil
}

func (r *vehicleRegistrationRepository) List(ctx context.Context) ([]domain.VehicleRegistration, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+registrationColumns+` FROM vehicle_registrations ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []domain.VehicleRegistration
	for rows.Next() {
		v, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, *v)
	}
	return regs, rows.Err()
}

func (r *vehicleRegistrationRepository) Update(ctx context.Context, v *domain.VehicleRegistration) error {
	query := `UPDATE vehicle_registrations SET plate_no=$1, vehicle_name=$2, model=$3, color=$4, psv_license_no=$5, psv_expiry=$6,
	          fitness_expiry=$7, disc_no=$8, mvl_expiry=$9, insurance_policy_no=$10, insurance_start_date=$11, insurance_end_date=$12,
	          updated_at=NOW() WHERE id=$13`
	n, err := execOne(ctx, r.db, query, v.PlateNo, v.VehicleName, v.Model, v.Color, v.PSVLicenseNo, v.PSVExpiry,
		v.FitnessExpiry, v.DiscNo, v.MVLExpiry, v.InsurancePolicyNo, v.InsuranceStartDate, v.InsuranceEndDate, v.ID)
	logger.DatabaseResult("UPDATE", n, err, "table", "vehicle_registrations")
	return err
}

func (r *vehicleRegistrationRepository) Delete(ctx context.Context, id string) error {
	n, err := execOne(ctx, r.db, `DELETE FROM vehicle_registrations WHERE id = $1`, id)
	logger.DatabaseResult("DELETE", n, err, "table", "vehicle_registrations")
	return err
}

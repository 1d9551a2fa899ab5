package postgres

import (
	"context"
	"testing"
	"time"

	"rentdesk-backoffice/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleRegistrationRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewVehicleRegistrationRepository(db)

	cols := []string{"id", "plate_no", "vehicle_name", "model", "color", "psv_license_no", "psv_expiry", "fitness_expiry", "disc_no",
		"mvl_expiry", "insurance_policy_no", "insurance_start_date", "insurance_end_date", "created_at", "updated_at"}
	rows := sqlmock.NewRows(cols).
		AddRow("reg-1", "1234 AB 22", "Swift", "GL", "Red", "PSV-9", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), nil, "D-1",
			nil, "POL-1", nil, "2025-12-31", time.Now(), time.Now())
	mock.ExpectQuery("SELECT (.+) FROM vehicle_registrations ORDER BY created_at DESC").WillReturnRows(rows)

	regs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, regs, 1)
	require.NotNil(t, regs[0].PSVExpiry)
	assert.Equal(t, "2025-06-01", regs[0].PSVExpiry.String())
	assert.Nil(t, regs[0].FitnessExpiry)
	require.NotNil(t, regs[0].InsuranceEndDate)
	assert.Equal(t, "2025-12-31", regs[0].InsuranceEndDate.String())
}

func TestVehicleRegistrationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewVehicleRegistrationRepository(db)
	expiry := domain.MustParseDate("2025-06-01")

	mock.ExpectQuery("INSERT INTO vehicle_registrations").
		WithArgs(sqlmock.AnyArg(), "1234 AB 22", "", "", "", "", "2025-06-01", nil, "", nil, "", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))

	reg := &domain.VehicleRegistration{PlateNo: "1234 AB 22", PSVExpiry: &expiry}
	require.NoError(t, repo.Create(context.Background(), reg))
	assert.NotEmpty(t, reg.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var carRowColumns = []string{"id", "name", "brand", "model", "year", "plate_number", "price_per_day", "status", "km",
	"servicing", "nta", "psv", "notes", "image_base64", "created_at", "updated_at"}

func TestCarRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCarRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		car := &domain.Car{
			Name:        "Swift",
			Brand:       "Suzuki",
			Model:       "Swift GL",
			Year:        2022,
			PlateNumber: "1234 AB 22",
			PricePerDay: decimal.NewFromInt(1200),
			Status:      domain.CarStatusAvailable,
		}

		mock.ExpectQuery("INSERT INTO cars").
			WithArgs(sqlmock.AnyArg(), "Swift", "Suzuki", "Swift GL", 2022, "1234 AB 22", sqlmock.AnyArg(), domain.CarStatusAvailable, 0,
				nil, nil, nil, "", "").
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		err := repo.Create(ctx, car)
		assert.NoError(t, err)
		assert.NotEmpty(t, car.ID)
		assert.Equal(t, now, car.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCarRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCarRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		psv := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(carRowColumns).
			AddRow("car-1", "Swift", "Suzuki", "Swift GL", 2022, "1234 AB 22", "1200.00", "available", 48000,
				nil, nil, psv, "", "", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM cars WHERE id = \\$1").
			WithArgs("car-1").
			WillReturnRows(rows)

		car, err := repo.GetByID(ctx, "car-1")
		require.NoError(t, err)
		assert.Equal(t, "Swift", car.Name)
		assert.True(t, car.PricePerDay.Equal(decimal.NewFromInt(1200)))
		assert.Nil(t, car.Servicing)
		require.NotNil(t, car.PSV)
		assert.Equal(t, "2026-03-01", car.PSV.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM cars WHERE id = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(carRowColumns))

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestCarRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCarRepository(db)

	rows := sqlmock.NewRows(carRowColumns).
		AddRow("car-2", "Vitz", "Toyota", "Vitz", 2020, "22 ZZ 20", "900", "available", 1, nil, nil, nil, "", "", time.Now(), time.Now()).
		AddRow("car-1", "Swift", "Suzuki", "Swift", 2022, "11 AA 22", "1200", "maintenance", 2, nil, nil, nil, "", "", time.Now(), time.Now())
	mock.ExpectQuery("SELECT (.+) FROM cars ORDER BY created_at DESC").WillReturnRows(rows)

	cars, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cars, 2)
	assert.Equal(t, "car-2", cars[0].ID)
	assert.Equal(t, domain.CarStatusMaintenance, cars[1].Status)
}

func TestCarRepository_UpdateDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCarRepository(db)
	ctx := context.Background()

	t.Run("UpdateMissingRow", func(t *testing.T) {
		mock.ExpectExec("UPDATE cars SET").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, &domain.Car{ID: "missing", PricePerDay: decimal.Zero})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("DeleteSuccess", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cars WHERE id = \\$1").
			WithArgs("car-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "car-1"))
	})

	t.Run("DeleteDatabaseError", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cars").WillReturnError(errors.New("connection reset"))

		err := repo.Delete(ctx, "car-1")
		assert.EqualError(t, err, "connection reset")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

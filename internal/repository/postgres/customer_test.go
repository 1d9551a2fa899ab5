package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var customerRowColumns = []string{"id", "first_name", "last_name", "email", "phone", "nic_or_passport", "address", "photo_base64", "created_at", "updated_at"}

func TestCustomerRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		now := time.Now()
		c := &domain.Customer{FirstName: "Ana", LastName: "Lopez", Email: "ana@example.test", Phone: "555-0101", NICOrPassport: "P123"}
		mock.ExpectQuery("INSERT INTO customers").
			WithArgs(sqlmock.AnyArg(), "Ana", "Lopez", "ana@example.test", "555-0101", "P123", "", "").
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		require.NoError(t, repo.Create(ctx, c))
		assert.NotEmpty(t, c.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM customers WHERE id = \\$1").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows(customerRowColumns).
			AddRow("cust-2", "Ben", "Ng", "ben@example.test", "", "", "", "", now, now).
			AddRow("cust-1", "Ana", "Lopez", "ana@example.test", "", "", "", "", now, now)
		mock.ExpectQuery("SELECT (.+) FROM customers ORDER BY created_at DESC").WillReturnRows(rows)

		customers, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, "Ben Ng", customers[0].FullName())
	})

	t.Run("UpdateMissingRow", func(t *testing.T) {
		mock.ExpectExec("UPDATE customers").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, &domain.Customer{ID: "missing"})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

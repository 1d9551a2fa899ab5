package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rentdesk-backoffice/internal/domain"
)

func TestInclusiveDays(t *testing.T) {
	d := domain.MustParseDate

	assert.Equal(t, 1, InclusiveDays(d("2025-01-15"), d("2025-01-15")))
	assert.Equal(t, 3, InclusiveDays(d("2025-01-10"), d("2025-01-12")))
	assert.Equal(t, 8, InclusiveDays(d("2025-01-25"), d("2025-02-01")))
	assert.Equal(t, 2, InclusiveDays(d("2024-02-28"), d("2024-02-29"))) // leap day
	assert.Equal(t, 3, InclusiveDays(d("2023-12-31"), d("2024-01-02")))
	assert.Equal(t, 366, InclusiveDays(d("2024-01-01"), d("2024-12-31")))

	t.Run("End before start", func(t *testing.T) {
		assert.Equal(t, 0, InclusiveDays(d("2025-01-12"), d("2025-01-10")))
	})

	t.Run("Unset dates", func(t *testing.T) {
		assert.Equal(t, 0, InclusiveDays(domain.Date{}, d("2025-01-10")))
		assert.Equal(t, 0, InclusiveDays(d("2025-01-10"), domain.Date{}))
	})
}

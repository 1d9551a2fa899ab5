package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	t.Run("First page", func(t *testing.T) {
		p := Paginate(items, 1, 5)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, p.Items)
		assert.Equal(t, 12, p.Total)
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("Last partial page", func(t *testing.T) {
		p := Paginate(items, 3, 5)
		assert.Equal(t, []int{11, 12}, p.Items)
		assert.Equal(t, 3, p.Page)
	})

	t.Run("Page past the end clamps to last", func(t *testing.T) {
		p := Paginate(items, 9, 5)
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, []int{11, 12}, p.Items)
	})

	t.Run("Page below one clamps to first", func(t *testing.T) {
		p := Paginate(items, 0, 5)
		assert.Equal(t, 1, p.Page)
	})

	t.Run("Default page size", func(t *testing.T) {
		p := Paginate(items, 1, 0)
		assert.Equal(t, DefaultPageSize, p.PageSize)
		assert.Len(t, p.Items, 10)
	})

	t.Run("Empty list has one page", func(t *testing.T) {
		p := Paginate([]string{}, 4, 10)
		assert.Equal(t, 1, p.TotalPages)
		assert.Equal(t, 1, p.Page)
		assert.Empty(t, p.Items)
	})

	t.Run("Result does not alias input", func(t *testing.T) {
		p := Paginate(items, 1, 2)
		p.Items[0] = 100
		assert.Equal(t, 1, items[0])
	})
}

func TestFilterAndMatchesQuery(t *testing.T) {
	names := []string{"Toyota Yaris", "Suzuki Swift", "toyota Aqua"}
	out := Filter(names, func(n string) bool { return MatchesQuery("TOYOTA", n) })
	assert.Equal(t, []string{"Toyota Yaris", "toyota Aqua"}, out)

	assert.True(t, MatchesQuery("  ", "anything"))
	assert.True(t, MatchesQuery("abc", "zzz", "xxabcxx"))
	assert.False(t, MatchesQuery("abc", "zzz"))
}

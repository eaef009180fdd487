package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQuery(t *testing.T) {
	t.Run("значения по умолчанию", func(t *testing.T) {
		filter := ParseFilterFromQuery(url.Values{})
		assert.Equal(t, DefaultLimit, filter.Limit)
		assert.Equal(t, 1, filter.Page)
		assert.Equal(t, 0, filter.Offset)
		assert.True(t, filter.WithPagination)
		assert.Empty(t, filter.Filter)
	})

	t.Run("limit ограничен максимумом", func(t *testing.T) {
		filter := ParseFilterFromQuery(url.Values{"limit": {"9999"}})
		assert.Equal(t, MaxLimit, filter.Limit)
	})

	t.Run("offset вычисляется из страницы", func(t *testing.T) {
		filter := ParseFilterFromQuery(url.Values{"limit": {"10"}, "page": {"3"}})
		assert.Equal(t, 20, filter.Offset)
	})

	t.Run("sort и filter из скобочной нотации", func(t *testing.T) {
		filter := ParseFilterFromQuery(url.Values{
			"sort[created_at]": {"desc"},
			"filter[status]":   {"pending"},
		})
		assert.Equal(t, "desc", filter.Sort["created_at"])
		assert.Equal(t, "pending", filter.Filter["status"])
	})

	t.Run("некорректное направление сортировки игнорируется", func(t *testing.T) {
		filter := ParseFilterFromQuery(url.Values{"sort[id]": {"sideways"}})
		assert.Empty(t, filter.Sort)
	})

	t.Run("плоские параметры считаются фильтрами", func(t *testing.T) {
		filter := ParseFilterFromQuery(url.Values{
			"status":      {"released"},
			"employee_id": {"7"},
			"search":      {"dell"},
		})
		assert.Equal(t, "released", filter.Filter["status"])
		assert.Equal(t, "7", filter.Filter["employee_id"])
		assert.Equal(t, "dell", filter.Search)
		_, hasSearch := filter.Filter["search"]
		assert.False(t, hasSearch)
	})
}

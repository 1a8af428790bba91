package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"navio/internal/models"
)

func TestFilter_Build(t *testing.T) {
	t.Run("empty values are skipped", func(t *testing.T) {
		query, args := NewFilter().
			Eq("t.category", "").
			Eq("t.status", "published").
			OrderBy("t.created_at DESC").
			Paginate(models.Page{Limit: 10, Offset: 20}).
			Build("SELECT * FROM tips t")

		assert.Equal(t, "SELECT * FROM tips t WHERE t.status = ? ORDER BY t.created_at DESC LIMIT ? OFFSET ?", query)
		assert.Equal(t, []any{"published", 10, 20}, args)
	})

	t.Run("no predicates", func(t *testing.T) {
		query, args := NewFilter().Build("SELECT 1")
		assert.Equal(t, "SELECT 1", query)
		assert.Empty(t, args)
	})

	t.Run("values never reach the statement", func(t *testing.T) {
		query, args := NewFilter().
			Eq("user_id", "x' OR '1'='1").
			Where("is_active = TRUE").
			Build("SELECT * FROM panic_info")

		assert.Equal(t, "SELECT * FROM panic_info WHERE user_id = ? AND is_active = TRUE", query)
		assert.Equal(t, []any{"x' OR '1'='1"}, args)
	})
}

func TestWithSQLitePragmas(t *testing.T) {
	assert.Equal(t, "navio.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", withSQLitePragmas("navio.db"))
	assert.Equal(t, "file:navio.db?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", withSQLitePragmas("file:navio.db?mode=rwc"))
	assert.Equal(t, "x.db?_pragma=foreign_keys(0)", withSQLitePragmas("x.db?_pragma=foreign_keys(0)"))
}

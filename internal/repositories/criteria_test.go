package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fsnd-trivia/trivia-service/internal/models"
	"gorm.io/gorm"
)

// renderSQL builds the criteria into SQL without executing it.
func renderSQL(t *testing.T, db *gorm.DB, criteria Criteria) string {
	t.Helper()

	query := db.Session(&gorm.Session{DryRun: true}).Model(&models.Question{})
	query = criteria(query)
	return query.Find(&[]*models.Question{}).Statement.SQL.String()
}

func TestCriteriaSQL(t *testing.T) {
	db, _ := setupScopeTestDB(t)

	t.Run("by id", func(t *testing.T) {
		sql := renderSQL(t, db, ByID(7))
		assert.Contains(t, sql, `id = $1`)
	})

	t.Run("id not in", func(t *testing.T) {
		sql := renderSQL(t, db, IDNotIn([]uint{1, 2}))
		assert.Contains(t, sql, `id NOT IN`)
	})

	t.Run("empty exclusion excludes nothing", func(t *testing.T) {
		sql := renderSQL(t, db, IDNotIn(nil))
		assert.NotContains(t, sql, "NOT IN")
	})

	t.Run("category filter targets the foreign key column", func(t *testing.T) {
		sql := renderSQL(t, db, ByCategoryID(3))
		assert.Contains(t, sql, `category = $1`)
	})

	t.Run("text search is case-insensitive", func(t *testing.T) {
		sql := renderSQL(t, db, TextContains("soccer"))
		assert.Contains(t, sql, `question ILIKE $1`)
	})

	t.Run("and combines filters and skips nils", func(t *testing.T) {
		sql := renderSQL(t, db, And(nil, ByCategoryID(3), IDNotIn([]uint{9})))
		assert.Contains(t, sql, `category = $1`)
		assert.Contains(t, sql, `id NOT IN`)
	})
}

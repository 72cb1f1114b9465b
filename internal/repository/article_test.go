package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"inkwell/internal/models"
)

type capturedStmt struct {
	SQL  string
	Vars []interface{}
}

// dryRunDB opens a gorm handle that builds SQL without executing it,
// with callbacks recording every generated statement. The connection
// is lazy so no database is needed.
func dryRunDB(t *testing.T) (*gorm.DB, *[]capturedStmt) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=inkwell dbname=inkwell",
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	var captured []capturedStmt
	capture := func(d *gorm.DB) {
		captured = append(captured, capturedStmt{
			SQL:  d.Statement.SQL.String(),
			Vars: d.Statement.Vars,
		})
	}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test_capture_query", capture))
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test_capture_create", capture))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test_capture_update", capture))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test_capture_delete", capture))

	return db, &captured
}

func allSQL(stmts []capturedStmt) string {
	parts := make([]string, 0, len(stmts))
	for _, s := range stmts {
		parts = append(parts, s.SQL)
	}
	return strings.Join(parts, "\n")
}

func TestPublishedFiltersAndOrders(t *testing.T) {
	db, captured := dryRunDB(t)
	repo := NewArticleRepo(db)

	_, _, err := repo.Published(2)
	require.NoError(t, err)

	var listStmt *capturedStmt
	for i := range *captured {
		if strings.Contains((*captured)[i].SQL, "ORDER BY created_at DESC") {
			listStmt = &(*captured)[i]
		}
	}
	require.NotNil(t, listStmt, "the listing query must order by recency")

	assert.Contains(t, listStmt.SQL, "is_published", "unpublished articles must be filtered out")
	assert.Contains(t, listStmt.Vars, true)
	assert.Contains(t, listStmt.SQL, "LIMIT")
	assert.Contains(t, listStmt.SQL, "OFFSET")
	assert.Contains(t, listStmt.Vars, ArticlesPerPage, "page size")
	assert.Contains(t, listStmt.Vars, ArticlesPerPage*(2-1), "page 2 offset")

	// the total count query applies the same filter
	countSQL := allSQL(*captured)
	assert.Contains(t, countSQL, "count(")
}

func TestByCategoryOnlyPublished(t *testing.T) {
	db, captured := dryRunDB(t)
	repo := NewArticleRepo(db)

	_, _, err := repo.ByCategory(3, 1)
	require.NoError(t, err)

	sql := allSQL(*captured)
	assert.Contains(t, sql, "category_id")
	assert.Contains(t, sql, "is_published")
}

func TestSaveReplacesTagSetOnUpdate(t *testing.T) {
	db, captured := dryRunDB(t)
	repo := NewArticleRepo(db)

	article := &models.Article{
		ID:         5,
		Title:      "Profiling Go Services",
		Body:       "Use pprof.",
		CategoryID: 1,
		AuthorID:   2,
		Tags:       []*models.Tag{{ID: 2, Name: "go", Code: "go"}},
	}

	require.NoError(t, repo.Save(article))

	sql := allSQL(*captured)
	assert.Contains(t, sql, `UPDATE "articles"`)
	// stale join rows must be deleted, not merely left behind by an upsert
	assert.Contains(t, sql, `DELETE FROM "articles_tags"`)
}

func TestSaveCreatesNewArticle(t *testing.T) {
	db, captured := dryRunDB(t)
	repo := NewArticleRepo(db)

	article := &models.Article{
		Title:      "Hello World",
		Body:       "First post.",
		CategoryID: 1,
		AuthorID:   1,
	}

	require.NoError(t, repo.Save(article))
	assert.Contains(t, allSQL(*captured), `INSERT INTO "articles"`)
}

package corpus

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designkit/designsearch-mcp/pkg/types"
)

// setupCatalog creates a catalog database with a populated products table.
func setupCatalog(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := sql.Open(DriverName, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = db.Exec(`CREATE TABLE products (product TEXT, keywords TEXT, anti_patterns TEXT)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO products VALUES
		('SaaS Dashboard', 'analytics charts', 'carousel hero;modal overload'),
		('Portfolio', 'minimal personal', NULL)`)
	require.NoError(t, err)

	return path
}

func TestSQLiteLoad(t *testing.T) {
	loader, err := NewSQLiteLoader(setupCatalog(t))
	require.NoError(t, err)
	defer func() { _ = loader.Close() }()

	records, err := loader.Load(context.Background(), types.CategoryProduct)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"product", "keywords", "anti_patterns"}, records[0].Keys())
	assert.Equal(t, "SaaS Dashboard", records[0].Get("product"))

	// NULL columns read as absent fields, not empty strings.
	assert.False(t, records[1].Has("anti_patterns"))
	assert.Equal(t, "", records[1].Get("anti_patterns"))
}

func TestSQLiteLoadMissingTable(t *testing.T) {
	loader, err := NewSQLiteLoader(setupCatalog(t))
	require.NoError(t, err)
	defer func() { _ = loader.Close() }()

	records, err := loader.Load(context.Background(), types.CategoryUX)
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQLiteLoadEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := sql.Open(DriverName, path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE charts (chart TEXT, use_case TEXT)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	loader, err := NewSQLiteLoader(path)
	require.NoError(t, err)
	defer func() { _ = loader.Close() }()

	records, err := loader.Load(context.Background(), types.CategoryChart)
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQLiteTableNamesCoverAllCategories(t *testing.T) {
	for _, cat := range types.Categories() {
		assert.NotEmpty(t, sqliteTableNames[cat], "category %s has no table name", cat)
	}
}

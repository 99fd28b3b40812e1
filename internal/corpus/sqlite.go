package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/designkit/designsearch-mcp/pkg/types"
)

// sqliteTableNames maps each category to its table in the catalog database.
var sqliteTableNames = map[types.Category]string{
	types.CategoryProduct:    "products",
	types.CategoryStyle:      "styles",
	types.CategoryColor:      "colors",
	types.CategoryTypography: "typography",
	types.CategoryLanding:    "landing_pages",
	types.CategoryChart:      "charts",
	types.CategoryUX:         "ux_guidelines",
}

// SQLiteLoader reads category record collections from a SQLite catalog
// database, one table per category. Column order defines field order and
// NULL values read as absent fields.
type SQLiteLoader struct {
	db *sql.DB
}

// NewSQLiteLoader opens the catalog database at path. The driver is chosen
// at build time (see driver_cgo.go / driver_purego.go).
func NewSQLiteLoader(path string) (*SQLiteLoader, error) {
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: pinging catalog %s: %v", ErrSourceUnavailable, path, err)
	}
	return &SQLiteLoader{db: db}, nil
}

// Close releases the database handle.
func (l *SQLiteLoader) Close() error {
	return l.db.Close()
}

// Load reads every row of the category's table in rowid order. A missing
// table yields an empty collection; any other query failure yields
// ErrSourceUnavailable.
func (l *SQLiteLoader) Load(ctx context.Context, category types.Category) ([]types.Record, error) {
	table := sqliteTableNames[category]

	rows, err := l.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", table)) //nolint:gosec // table names come from a fixed map
	if err != nil {
		if strings.Contains(err.Error(), "no such table") {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: querying %s: %v", ErrSourceUnavailable, table, err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: reading columns of %s: %v", ErrSourceUnavailable, table, err)
	}

	var records []types.Record
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: scanning %s: %v", ErrSourceUnavailable, table, err)
		}

		rec := types.NewRecord()
		for i, name := range columns {
			if values[i].Valid {
				rec.Set(name, values[i].String)
			}
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating %s: %v", ErrSourceUnavailable, table, err)
	}

	return records, nil
}

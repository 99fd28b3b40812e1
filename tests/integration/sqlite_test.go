package integration

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/designkit/designsearch-mcp/internal/corpus"
	"github.com/designkit/designsearch-mcp/internal/index"
	"github.com/designkit/designsearch-mcp/internal/registry"
	"github.com/designkit/designsearch-mcp/internal/searcher"
	"github.com/designkit/designsearch-mcp/pkg/types"
)

// csvToTable maps fixture CSV files to their catalog tables.
var csvToTable = map[string]string{
	"products.csv":      "products",
	"styles.csv":        "styles",
	"colors.csv":        "colors",
	"typography.csv":    "typography",
	"landing-pages.csv": "landing_pages",
	"charts.csv":        "charts",
	"ux-guidelines.csv": "ux_guidelines",
}

// SQLiteParityTestSuite verifies the SQLite loader ranks identically to the
// CSV loader over the same corpus.
type SQLiteParityTestSuite struct {
	suite.Suite
	csvSearcher    *searcher.Searcher
	sqliteSearcher *searcher.Searcher
	sqliteLoader   *corpus.SQLiteLoader
	fixturesDir    string
	ctx            context.Context
}

// SetupSuite builds a SQLite catalog from the CSV fixtures
func (s *SQLiteParityTestSuite) SetupSuite() {
	s.ctx = context.Background()

	wd, err := os.Getwd()
	s.Require().NoError(err)
	s.fixturesDir = filepath.Join(filepath.Dir(wd), "testdata", "fixtures")

	catalogPath := filepath.Join(s.T().TempDir(), "catalog.db")
	s.buildCatalog(catalogPath)

	csvReg := registry.New(corpus.NewCSVLoader(s.fixturesDir), index.DefaultParams())
	s.csvSearcher = searcher.NewSearcher(csvReg, 0)

	loader, err := corpus.NewSQLiteLoader(catalogPath)
	s.Require().NoError(err)
	s.sqliteLoader = loader

	sqliteReg := registry.New(loader, index.DefaultParams())
	s.sqliteSearcher = searcher.NewSearcher(sqliteReg, 0)
}

// TearDownSuite closes the catalog handle
func (s *SQLiteParityTestSuite) TearDownSuite() {
	if s.sqliteLoader != nil {
		_ = s.sqliteLoader.Close()
	}
}

// buildCatalog loads every fixture CSV into a table of the catalog database
func (s *SQLiteParityTestSuite) buildCatalog(path string) {
	db, err := sql.Open(corpus.DriverName, path)
	s.Require().NoError(err)
	defer func() { _ = db.Close() }()

	for file, table := range csvToTable {
		f, err := os.Open(filepath.Join(s.fixturesDir, file))
		s.Require().NoError(err)

		rows, err := csv.NewReader(f).ReadAll()
		_ = f.Close()
		s.Require().NoError(err)
		s.Require().NotEmpty(rows, "fixture %s must have a header", file)

		header := rows[0]
		cols := make([]string, len(header))
		for i, name := range header {
			cols[i] = fmt.Sprintf("%q TEXT", name)
		}
		_, err = db.Exec(fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(cols, ", ")))
		s.Require().NoError(err)

		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(header)), ", ")
		insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", table, placeholders)
		for _, row := range rows[1:] {
			args := make([]any, len(row))
			for i, v := range row {
				args[i] = v
			}
			_, err = db.Exec(insert, args...)
			s.Require().NoError(err)
		}
	}
}

// TestParityAcrossCategories compares rankings between the two loaders
func (s *SQLiteParityTestSuite) TestParityAcrossCategories() {
	for _, query := range []string{"dashboard", "minimalist", "marketing conversion"} {
		fromCSV, err := s.csvSearcher.Search(s.ctx, searcher.SearchRequest{Query: query, Limit: 50})
		s.Require().NoError(err)

		fromSQLite, err := s.sqliteSearcher.Search(s.ctx, searcher.SearchRequest{Query: query, Limit: 50})
		s.Require().NoError(err)

		s.Require().Equal(len(fromCSV.Results), len(fromSQLite.Results), "query %q", query)
		for i := range fromCSV.Results {
			s.Equal(fromCSV.Results[i].Category, fromSQLite.Results[i].Category)
			s.Equal(fromCSV.Results[i].Rank, fromSQLite.Results[i].Rank)
			s.InDelta(fromCSV.Results[i].Score, fromSQLite.Results[i].Score, 1e-9)
			s.Equal(fromCSV.Results[i].Record.Map(), fromSQLite.Results[i].Record.Map())
		}
	}
}

// TestParitySingleCategory compares a filtered search
func (s *SQLiteParityTestSuite) TestParitySingleCategory() {
	fromCSV, err := s.csvSearcher.Search(s.ctx, searcher.SearchRequest{
		Query:    "dashboard",
		Category: types.CategoryChart,
	})
	s.Require().NoError(err)

	fromSQLite, err := s.sqliteSearcher.Search(s.ctx, searcher.SearchRequest{
		Query:    "dashboard",
		Category: types.CategoryChart,
	})
	s.Require().NoError(err)

	s.Require().Equal(len(fromCSV.Results), len(fromSQLite.Results))
	for i := range fromCSV.Results {
		s.Equal(fromCSV.Results[i].Record.Get("chart"), fromSQLite.Results[i].Record.Get("chart"))
	}
}

// TestSQLiteParityTestSuite runs the suite
func TestSQLiteParityTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteParityTestSuite))
}

package corpus

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/designkit/designsearch-mcp/pkg/types"
)

// csvFileNames maps each category to its database file within the data
// directory. The names follow the upstream design database layout.
var csvFileNames = map[types.Category]string{
	types.CategoryProduct:    "products.csv",
	types.CategoryStyle:      "styles.csv",
	types.CategoryColor:      "colors.csv",
	types.CategoryTypography: "typography.csv",
	types.CategoryLanding:    "landing-pages.csv",
	types.CategoryChart:      "charts.csv",
	types.CategoryUX:         "ux-guidelines.csv",
}

// CSVLoader reads category record collections from CSV files in a data
// directory. The header row defines the field set and field order.
type CSVLoader struct {
	dataDir string
}

// NewCSVLoader creates a loader rooted at the given data directory.
func NewCSVLoader(dataDir string) *CSVLoader {
	return &CSVLoader{dataDir: dataDir}
}

// Load reads the category's CSV file. A missing file yields an empty
// collection; an unreadable or malformed file yields ErrSourceUnavailable.
func (l *CSVLoader) Load(ctx context.Context, category types.Category) ([]types.Record, error) {
	path := filepath.Join(l.dataDir, csvFileNames[category])

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrSourceUnavailable, path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, like a dict reader

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header of %s: %v", ErrSourceUnavailable, path, err)
	}

	var records []types.Record
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrSourceUnavailable, path, err)
		}

		rec := types.NewRecord()
		for i, name := range header {
			if i < len(row) {
				rec.Set(name, row[i])
			} else {
				rec.Set(name, "")
			}
		}
		records = append(records, rec)
	}

	return records, nil
}
